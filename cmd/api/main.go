package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/data-wizards/aqi-service/internal/adapter/harmony"
	"github.com/data-wizards/aqi-service/internal/adapter/httpapi"
	"github.com/data-wizards/aqi-service/internal/adapter/mockdata"
	"github.com/data-wizards/aqi-service/internal/config"
	"github.com/data-wizards/aqi-service/internal/domain"
	"github.com/data-wizards/aqi-service/internal/observability"
	"github.com/data-wizards/aqi-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// Initialize the satellite provider (feature-flagged via HARMONY_ENABLED / HARMONY_TOKEN).
	var primary domain.Provider
	if cfg.HarmonyEnabled {
		client := harmony.NewClient(cfg.HarmonyToken, cfg.HarmonyTimeout, cfg.HarmonyPollInterval, logger)
		primary = harmony.NewCachedProvider(client, cfg.HarmonyCacheSize, metrics)
		metrics.HarmonyEnabled.Set(1)
		logger.Info("harmony satellite data enabled", "cache_size", cfg.HarmonyCacheSize, "timeout", cfg.HarmonyTimeout)
	} else {
		logger.Info("harmony satellite data disabled, serving mock data")
	}

	mock := mockdata.New(cfg.MockSeed)
	svc := service.New(primary, mock, logger, metrics)

	srv := httpapi.NewServer(cfg.HTTPAddr, svc, svc, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
