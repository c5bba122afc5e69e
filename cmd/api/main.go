package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/toygarage/server/internal/generation"
	"github.com/toygarage/server/internal/http/handlers"
	"github.com/toygarage/server/internal/http/httpapi"
	"github.com/toygarage/server/internal/infra"
	"github.com/toygarage/server/internal/providers/genai"
	"github.com/toygarage/server/internal/providers/image"
	"github.com/toygarage/server/internal/storage"
	"github.com/toygarage/server/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	blobs, err := storage.NewFileStore(cfg.StoragePath, cfg.StorageBaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize blob storage")
	}

	st := store.New()
	if cfg.SeedGallery {
		st.SeedDemo(time.Now().UTC())
	}

	client := genai.NewClient(genai.Options{
		APIKey:  cfg.GeminiAPIKey,
		BaseURL: cfg.GeminiBaseURL,
		Model:   cfg.GeminiModel,
		Logger:  &logger,
	})
	if cfg.GeminiAPIKey == "" {
		logger.Warn().Msg("GEMINI_API_KEY is empty; generations will fall back to placeholders")
	}
	provider := image.NewGeminiGenerator(client)

	registrar := generation.NewRegistrar(st, provider, blobs, cfg.GenerateTimeout, logger)
	app := handlers.NewApp(st, registrar, blobs, cfg, logger)
	router := httpapi.NewRouter(app, cfg, logger)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
