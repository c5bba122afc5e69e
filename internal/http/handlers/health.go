package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/toygarage/server/internal/middleware"
)

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}

// StorageHealth writes and removes a small probe object so operators can
// confirm the blob store is usable without uploading a real photo.
func (a *App) StorageHealth(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromContext(r.Context())
	key := fmt.Sprintf("healthz/probe-%d.txt", time.Now().UnixNano())

	url, err := a.Blobs.Upload(r.Context(), key, []byte("ok"), "text/plain")
	if err != nil {
		a.Logger.Error().Err(err).Msg("storage probe write failed")
		a.error(w, http.StatusInternalServerError, msgInternal(locale))
		return
	}
	if err := a.Blobs.Delete(r.Context(), url); err != nil {
		a.Logger.Error().Err(err).Msg("storage probe delete failed")
		a.error(w, http.StatusInternalServerError, msgInternal(locale))
		return
	}
	a.json(w, http.StatusOK, map[string]any{"status": "ok", "url": url})
}
