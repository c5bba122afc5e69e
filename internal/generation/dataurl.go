package generation

import (
	"encoding/base64"
	"strings"
)

// parseDataURI splits a "data:<mime>;base64,<payload>" string into its MIME
// type and decoded bytes. ok is false for anything else (including plain
// URLs, which are passed through untouched by the caller).
func parseDataURI(s string) (mime string, data []byte, ok bool) {
	if !strings.HasPrefix(s, "data:") {
		return "", nil, false
	}
	rest := strings.TrimPrefix(s, "data:")
	comma := strings.IndexByte(rest, ',')
	if comma < 0 {
		return "", nil, false
	}
	meta, payload := rest[:comma], rest[comma+1:]
	if !strings.HasSuffix(meta, ";base64") {
		return "", nil, false
	}
	mime = strings.TrimSuffix(meta, ";base64")
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, false
	}
	if mime == "" {
		mime = "application/octet-stream"
	}
	return mime, decoded, true
}

// extForMIME picks a storage key extension for a handful of image types.
func extForMIME(mime string) string {
	switch mime {
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	case "image/svg+xml":
		return "svg"
	default:
		return "jpg"
	}
}
