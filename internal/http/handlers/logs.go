package handlers

import "net/http"

const logsPageSize = 100

// Logs returns the audit trail, newest first, capped at 100 entries.
func (a *App) Logs(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"items": a.Store.Logs(logsPageSize)})
}
