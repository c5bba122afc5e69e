package handlers

import (
	"archive/zip"
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExportGalleryBundlesCompletedRenders(t *testing.T) {
	app, gen := newTestApp(t)
	router := newTestRouter(app)

	if rec := postJSON(t, router, "/api/generate", `{"image":"`+testDataURI+`"}`, &http.Cookie{Name: "toy_uid", Value: "toy-a"}); rec.Code != http.StatusCreated {
		t.Fatalf("generate: status = %d", rec.Code)
	}
	// A failed render must not appear in the archive.
	gen.err = errTest
	if rec := postJSON(t, router, "/api/generate", `{"image":"`+testDataURI+`"}`, &http.Cookie{Name: "toy_uid", Value: "toy-b"}); rec.Code != http.StatusCreated {
		t.Fatalf("generate: status = %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/gallery/export", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/zip" {
		t.Fatalf("Content-Type = %q", ct)
	}

	zr, err := zip.NewReader(bytes.NewReader(rec.Body.Bytes()), int64(rec.Body.Len()))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	if len(zr.File) != 1 {
		t.Fatalf("archive has %d entries, want only the completed render", len(zr.File))
	}
	f, err := zr.File[0].Open()
	if err != nil {
		t.Fatalf("open entry: %v", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("read entry: %v", err)
	}
	if string(data) != "stylized" {
		t.Fatalf("entry bytes = %q", data)
	}
}
