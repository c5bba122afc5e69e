package handlers

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/toygarage/server/internal/domain"
	"github.com/toygarage/server/pkg/zip"
)

// ExportGallery streams the completed renders as one zip archive, for
// operators pulling the gallery out of the in-memory store before a restart
// loses it. Input photos and failed records are skipped.
func (a *App) ExportGallery(w http.ResponseWriter, r *http.Request) {
	items := a.Store.Gallery(0)
	var assets []zip.Asset
	for _, gen := range items {
		if gen.Status != domain.StatusCompleted || !gen.Safe {
			continue
		}
		data, mimeType, ok := a.outputBytes(r, gen.OutputURL)
		if !ok {
			continue
		}
		assets = append(assets, zip.Asset{
			Filename: gen.CreatedAt.UTC().Format("20060102-150405") + "-" + gen.ID,
			MIME:     mimeType,
			Data:     data,
		})
	}

	archive := zip.ArchiveAssets(assets)
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=gallery-%d.zip", len(assets)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}

// outputBytes resolves an output location to raw bytes: inline data URIs are
// decoded, blob URLs are read back from the store, anything else is skipped.
func (a *App) outputBytes(r *http.Request, outputURL string) ([]byte, string, bool) {
	if strings.HasPrefix(outputURL, "data:") {
		rest := strings.TrimPrefix(outputURL, "data:")
		comma := strings.IndexByte(rest, ',')
		if comma < 0 || !strings.HasSuffix(rest[:comma], ";base64") {
			return nil, "", false
		}
		data, err := base64.StdEncoding.DecodeString(rest[comma+1:])
		if err != nil {
			return nil, "", false
		}
		return data, strings.TrimSuffix(rest[:comma], ";base64"), true
	}
	data, err := a.Blobs.Read(r.Context(), outputURL)
	if err != nil {
		return nil, "", false
	}
	return data, mimeFromExtension(outputURL), true
}

func mimeFromExtension(url string) string {
	switch {
	case strings.HasSuffix(url, ".png"):
		return "image/png"
	case strings.HasSuffix(url, ".webp"):
		return "image/webp"
	case strings.HasSuffix(url, ".svg"):
		return "image/svg+xml"
	default:
		return "image/jpeg"
	}
}
