package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/Brownie44l1/aidetect-api/internal/config"
	"github.com/Brownie44l1/aidetect-api/internal/detect"
	"github.com/Brownie44l1/aidetect-api/internal/handlers"
	"github.com/Brownie44l1/aidetect-api/internal/logging"
	"github.com/Brownie44l1/aidetect-api/internal/routes"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc, err := detect.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatalw("failed to load models", "error", err)
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.Warnw("failed to release models", "error", err)
		}
	}()

	handler := handlers.NewHandler(svc, handlers.Options{
		MinTextLength:    cfg.MinTextLength,
		MaxUploadBytes:   cfg.MaxUploadBytes,
		InferenceTimeout: cfg.InferenceTimeout,
	}, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: routes.SetupRoutes(handler, cfg.CORSAllowOrigins, logger),
	}

	logger.Infow("server starting", "addr", srv.Addr, "models", svc.Status(), "cors_origins", cfg.CORSAllowOrigins)
	logger.Info("endpoints: GET /health, GET /docs/index.html, POST /detect/predict/{text,image,video}")

	errc := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			logger.Errorw("server failed", "error", err)
			return
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("server forced to shutdown", "error", err)
	}
	logger.Info("server exited")
}
