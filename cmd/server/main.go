package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/fr0stylo/contentconnector/internal/adapters/sqlite"
	appservices "github.com/fr0stylo/contentconnector/internal/app/services"
	"github.com/fr0stylo/contentconnector/internal/config"
	"github.com/fr0stylo/contentconnector/internal/db"
	"github.com/fr0stylo/contentconnector/internal/observability"
	"github.com/fr0stylo/contentconnector/internal/server"
	"github.com/fr0stylo/contentconnector/internal/server/routes"
	"github.com/fr0stylo/contentconnector/internal/webhooks/connector"
)

func Run() error {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := observability.NewLogger(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(log)
	if !cfg.AdminEnabled() {
		slog.Warn("CONNECTOR_ADMIN_TOKEN not set, admin API disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.SetupOpenTelemetry(ctx, log, observability.OpenTelemetryConfig{
		Enabled:           cfg.Observability.Enabled,
		OTLPEndpoint:      cfg.Observability.OTLPEndpoint,
		OTLPTraceHeaders:  cfg.Observability.OTLPTraceHeaders,
		OTLPMetricHeaders: cfg.Observability.OTLPMetricHeaders,
		ServiceName:       cfg.Observability.ServiceName,
		ServiceVer:        cfg.Observability.ServiceVer,
		SamplingRatio:     cfg.Observability.SamplingRatio,
		MetricsConsole:    cfg.Observability.MetricsConsole,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			slog.Error("Failed to shutdown OpenTelemetry", "error", err)
		}
	}()

	database, err := db.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}()

	store := sqlite.NewStore(database)
	postQuery := appservices.NewPostQueryService(store)
	if err := postQuery.VerifyAuthor(ctx, cfg.Ingestion.DefaultAuthorID); err != nil {
		return fmt.Errorf("invalid CONNECTOR_DEFAULT_AUTHOR_ID: %w", err)
	}
	settings := appservices.NewSettingsService(store)
	seeded, err := settings.EnsureDefaults(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed default settings: %w", err)
	}
	if seeded {
		slog.Info("Seeded default connector settings")
	}

	if cfg.Database.LogTiming {
		go logDBLatencyStats(ctx, log, database)
	}

	ingest := appservices.NewIngestService(store, store, appservices.WithAuthorID(cfg.Ingestion.DefaultAuthorID))

	srv := server.New(log, cfg.Observability.ServiceName)
	srv.RegisterRouter(routes.NewConnectorRoutes(cfg.Server.RoutePrefix, connector.NewHandler(settings, ingest, log)))
	srv.RegisterRouter(routes.NewAdminRoutes(cfg.Admin.Token, settings, postQuery))

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("Starting server", "port", cfg.Server.Port, "prefix", cfg.Server.RoutePrefix)
		errCh <- srv.Start(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return <-errCh
}

func main() {
	if err := Run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func logDBLatencyStats(ctx context.Context, log *slog.Logger, database *db.Database) {
	ticker := time.NewTicker(60 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		stats := database.QueryStats()
		limit := min(5, len(stats))
		for _, entry := range stats[:limit] {
			log.Info("db_query_latency",
				"query", entry.Name,
				"count", entry.Count,
				"errors", entry.Errors,
				"p50_ms", entry.P50.Milliseconds(),
				"p95_ms", entry.P95.Milliseconds(),
				"max_ms", entry.Max.Milliseconds(),
			)
		}
	}
}
