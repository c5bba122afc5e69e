package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/toygarage/server/internal/domain"
	"github.com/toygarage/server/internal/middleware"
)

const galleryPageSize = 60

// Gallery returns up to 60 records, newest first. Records still in flight or
// failed stay in the payload; clients treat anything not completed as not
// displayable.
func (a *App) Gallery(w http.ResponseWriter, r *http.Request) {
	limit := galleryPageSize
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n < galleryPageSize {
			limit = n
		}
	}
	a.json(w, http.StatusOK, map[string]any{"items": a.Store.Gallery(limit)})
}

// ToggleLike flips the caller's like on a generation.
func (a *App) ToggleLike(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromContext(r.Context())
	userID := middleware.IdentityFromContext(r.Context())
	id := chi.URLParam(r, "id")

	gen, err := a.Store.ToggleLike(id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, msgNotFound(locale))
			return
		}
		a.error(w, http.StatusInternalServerError, msgInternal(locale))
		return
	}
	a.json(w, http.StatusOK, map[string]any{"generation": gen})
}
