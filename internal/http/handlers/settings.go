package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/toygarage/server/internal/domain"
	"github.com/toygarage/server/internal/middleware"
)

// GetSettings returns the settings singleton.
func (a *App) GetSettings(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"settings": a.Store.Settings()})
}

// UpdateSettings merges a partial update into the singleton. Quota fields
// are clamped to 1, never rejected. The route is deliberately
// unauthenticated: an admin gate in front of it is an external collaborator.
func (a *App) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromContext(r.Context())

	var patch domain.SettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		a.error(w, http.StatusBadRequest, msgEmptyBody(locale))
		return
	}
	updated := a.Store.UpdateSettings(patch)
	a.json(w, http.StatusOK, map[string]any{"settings": updated})
}
