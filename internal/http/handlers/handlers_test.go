package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/toygarage/server/internal/generation"
	"github.com/toygarage/server/internal/infra"
	"github.com/toygarage/server/internal/middleware"
	"github.com/toygarage/server/internal/providers/image"
	"github.com/toygarage/server/internal/storage"
	"github.com/toygarage/server/internal/store"
)

const testDataURI = "data:image/jpeg;base64,aGVsbG8="

var errTest = errors.New("gemini status 503: overloaded")

func timeNow() time.Time { return time.Now().UTC() }

type stubGenerator struct {
	calls int
	err   error
}

func (g *stubGenerator) Generate(ctx context.Context, req image.GenerateRequest) (*image.Result, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return &image.Result{Data: []byte("stylized"), Format: "image/png"}, nil
}

func newTestApp(t *testing.T) (*App, *stubGenerator) {
	t.Helper()
	logger := zerolog.New(io.Discard)

	blobs, err := storage.NewFileStore(t.TempDir(), "http://localhost:8080/static")
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	st := store.New()
	gen := &stubGenerator{}
	registrar := generation.NewRegistrar(st, gen, blobs, time.Second, logger)
	cfg := &infra.Config{
		AppEnv:         "test",
		StorageBaseURL: "http://localhost:8080/static",
		DefaultLocale:  "ja",
	}
	return NewApp(st, registrar, blobs, cfg, logger), gen
}

// newTestRouter mounts the routes under the same middleware the real router
// uses, minus the burst limiter.
func newTestRouter(app *App) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Locale(app.Config.DefaultLocale), middleware.Identity)
	r.Post("/api/generate", app.Generate)
	r.Get("/api/gallery", app.Gallery)
	r.Get("/api/gallery/export", app.ExportGallery)
	r.Post("/api/gallery/{id}/like", app.ToggleLike)
	r.Get("/api/settings", app.GetSettings)
	r.Post("/api/settings", app.UpdateSettings)
	r.Get("/api/logs", app.Logs)
	r.Get("/api/stats", app.StatsSummary)
	r.Get("/healthz", app.Health)
	r.Get("/healthz/storage", app.StorageHealth)
	return r
}
