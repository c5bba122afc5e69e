package handlers

import (
	"net/http"
	"time"
)

// StatsSummary aggregates gallery counters for the admin dashboard.
func (a *App) StatsSummary(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, a.Store.Stats(time.Now()))
}
