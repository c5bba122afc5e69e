package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/toygarage/server/internal/generation"
	"github.com/toygarage/server/internal/infra"
	"github.com/toygarage/server/internal/storage"
	"github.com/toygarage/server/internal/store"
)

// App bundles the shared state every handler needs. One instance is built in
// main and injected into the router; handlers hold no package-level state.
type App struct {
	Store     *store.Store
	Registrar *generation.Registrar
	Blobs     *storage.FileStore
	Config    *infra.Config
	Logger    infra.Logger
}

func NewApp(s *store.Store, reg *generation.Registrar, blobs *storage.FileStore, cfg *infra.Config, logger infra.Logger) *App {
	return &App{Store: s, Registrar: reg, Blobs: blobs, Config: cfg, Logger: logger}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, map[string]string{"error": msg})
}
