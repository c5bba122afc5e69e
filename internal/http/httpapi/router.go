package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/toygarage/server/internal/http/handlers"
	"github.com/toygarage/server/internal/infra"
	"github.com/toygarage/server/internal/middleware"
)

// NewRouter wires the API surface. Every route runs behind request-id,
// access-log, locale and identity middleware; the generate endpoint
// additionally sits behind the per-IP burst limiter.
func NewRouter(app *handlers.App, cfg *infra.Config, logger infra.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(
		chimw.RealIP,
		middleware.RequestID,
		middleware.Logger(logger),
		chimw.Recoverer,
		middleware.CORS(cfg.CORSOrigins),
		middleware.Locale(cfg.DefaultLocale),
		middleware.Identity,
	)

	r.Get("/healthz", app.Health)
	r.Get("/healthz/storage", app.StorageHealth)

	r.Route("/api", func(r chi.Router) {
		r.With(middleware.RateLimit(cfg.RateLimitPerMin, time.Minute)).
			Post("/generate", app.Generate)
		r.Get("/gallery", app.Gallery)
		r.Get("/gallery/export", app.ExportGallery)
		r.Post("/gallery/{id}/like", app.ToggleLike)
		r.Get("/settings", app.GetSettings)
		r.Post("/settings", app.UpdateSettings)
		r.Get("/logs", app.Logs)
		r.Get("/stats", app.StatsSummary)
	})

	// Uploaded and generated images are served straight from the blob
	// store directory.
	fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StoragePath)))
	r.Get("/static/*", func(w http.ResponseWriter, req *http.Request) {
		fileServer.ServeHTTP(w, req)
	})

	return r
}
