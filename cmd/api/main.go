package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"dog-breeds-dashboard/internal/adapters/dogapi"
	"dog-breeds-dashboard/internal/platform/config"
	"dog-breeds-dashboard/internal/platform/logger"
	"dog-breeds-dashboard/internal/router"
)

// @title Dog Breeds Dashboard API
// @version 1.0
// @description Listado, filtro, estadísticas y gráficos sobre las razas de The Dog API.
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config.LoadDotEnv()
	log := logger.NewFromEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", map[string]any{"error": err})
		os.Exit(1)
	}

	src, err := dogapi.NewClient(dogapi.Config{
		BaseURL:      cfg.DogAPIBaseURL,
		APIKey:       cfg.DogAPIKey,
		APIKeyHeader: cfg.DogAPIKeyHeader,
		Timeout:      cfg.DogAPITimeout,
		Logger:       log,
	})
	if err != nil {
		log.Error("dog api client init failed", map[string]any{"error": err})
		os.Exit(1)
	}
	if !cfg.HasAPIKey() {
		log.Warn("DOG_API_KEY not set; requests go out without api key", nil)
	}

	r := router.NewRouter(router.Options{
		Source:        src,
		Logger:        log,
		EnableSwagger: cfg.EnableSwagger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"error": err})
			stop()
		}
	}()
	log.Info("server listening", map[string]any{"addr": srv.Addr, "dog_api": cfg.DogAPIBaseURL})

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", map[string]any{"error": err})
	}
	log.Info("server exited", nil)
}
