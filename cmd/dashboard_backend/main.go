package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/price_dashboard/internal/adapters/source"
	portsrepo "github.com/SscSPs/price_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/price_dashboard/internal/core/services"
	"github.com/SscSPs/price_dashboard/internal/handlers"
	"github.com/SscSPs/price_dashboard/internal/middleware"
	"github.com/SscSPs/price_dashboard/internal/observability"
	"github.com/SscSPs/price_dashboard/internal/platform/config"
	"github.com/SscSPs/price_dashboard/internal/utils"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// @title Price Dashboard API
// @version 1.0
// @description Monthly consumer prices with interpolated FX conversion.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	metrics := observability.NewMetrics()

	var dataSource portsrepo.DataSource
	if cfg.DataSource != "" {
		dataSource = source.New(cfg.DataSource, cfg.SourceTimeout)
	} else {
		logger.Warn("No data source configured, serving the embedded sample dataset")
	}

	svcContainer, err := services.NewServiceContainer(cfg, dataSource, source.FallbackCSV, metrics)
	if err != nil {
		logger.Error("Failed to initialize services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The initial load falls back to the embedded sample, so it only fails when interrupted
	ds, err := svcContainer.Dataset.Load(ctx)
	if err != nil {
		logger.Error("Failed to load dataset", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Dataset ready",
		slog.String("dataset_id", ds.ID),
		slog.String("source", ds.Source),
		slog.Bool("fallback", ds.Fallback),
		slog.Int("records", ds.Len()))

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors, metrics, analytics)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		metrics.GinMiddleware(),
		middleware.PosthogMiddleware(posthogClient),
	)

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, svcContainer, metrics); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
