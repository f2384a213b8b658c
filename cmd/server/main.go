package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marketfront/catalog-service/config"
	"github.com/marketfront/catalog-service/internal/pkg/logging"
	"github.com/marketfront/catalog-service/internal/services"
)

func main() {
	if err := run(); err != nil {
		logging.L().Fatal("failed to run server", zap.Error(err))
	}
}

func run() error {
	ctx := context.Background()

	cfg := config.Load()

	if err := logging.Init(cfg.Server.Env); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logging.Sync()
	logger := logging.L()

	logger.Info("starting marketplace catalog service",
		zap.String("spanner_database", cfg.Spanner.Database),
		zap.String("http_port", cfg.Server.Port))

	opts, err := services.NewOptions(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer opts.Close()

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	opts.CatalogHandler.SetupRoutes(router)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	return nil
}
