package zip

import (
	"archive/zip"
	"bytes"
	"mime"
	"strings"
)

// Asset is one image to be placed in an export archive.
type Asset struct {
	Filename string
	MIME     string
	Data     []byte
}

// ArchiveAssets packs the assets into a single in-memory zip. Filenames get
// an extension derived from the MIME type when they lack one.
func ArchiveAssets(assets []Asset) []byte {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	for _, asset := range assets {
		w, err := zw.Create(withExtension(asset.Filename, asset.MIME))
		if err != nil {
			continue
		}
		if _, err := w.Write(asset.Data); err != nil {
			return nil
		}
	}
	_ = zw.Close()
	return buf.Bytes()
}

func withExtension(name, mimeType string) string {
	if strings.Contains(name, ".") || mimeType == "" {
		return name
	}
	exts, err := mime.ExtensionsByType(mimeType)
	if err != nil || len(exts) == 0 {
		return name
	}
	return name + exts[0]
}
