// Command service runs the articles HTTP API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/articles-service/internal/adapters/http"
	"github.com/jsamuelsen/articles-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/articles-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/articles-service/internal/adapters/storage"
	"github.com/jsamuelsen/articles-service/internal/app"
	"github.com/jsamuelsen/articles-service/internal/platform/config"
	"github.com/jsamuelsen/articles-service/internal/platform/logging"
	"github.com/jsamuelsen/articles-service/internal/platform/telemetry"
	"github.com/jsamuelsen/articles-service/internal/ports"
)

// Stamped at build time:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "articles-service: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	logging.SetDefault(logger)

	logger.Info("starting articles service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("database_driver", cfg.Database.Driver),
	)

	if !cfg.Auth.TokensEnabled() {
		logger.Warn("no jwt secret configured, trusting identity header",
			slog.String("header", cfg.Auth.SubjectHeader))
	}

	tel, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		Insecure:     cfg.Telemetry.Insecure,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		DBSystem:     dbSystem(cfg.Database.Driver),
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer closeWith(logger, "telemetry shutdown", func() error { return tel.Shutdown(context.Background()) })

	db, err := storage.Open(ctx, storage.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		AutoMigrate:     cfg.Database.AutoMigrate,
		LogLevel:        cfg.Database.LogLevel,
		SlowThreshold:   cfg.Database.SlowThreshold,
		Logger:          logger,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer closeWith(logger, "database close", db.Close)

	server, err := newServer(ctx, cfg, db, logger)
	if err != nil {
		return err
	}

	return serve(ctx, logger, server, cfg.Server.ShutdownTimeout)
}

// loadConfig reads the profile named by APP_ENVIRONMENT, "local" when unset,
// and refuses to start on an invalid result.
func loadConfig() (*config.Config, error) {
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	f := cfg.Log.File

	return logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    f.Enabled,
			Path:       f.Path,
			MaxSizeMB:  f.MaxSizeMB,
			MaxBackups: f.MaxBackups,
			MaxAgeDays: f.MaxAgeDays,
			Compress:   f.Compress,
		},
	})
}

// newServer wires services, handlers and middleware over db.
func newServer(ctx context.Context, cfg *config.Config, db *storage.DB, logger *slog.Logger) (*http.Server, error) {
	metrics, err := telemetry.NewDomainMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		return nil, fmt.Errorf("registering metrics: %w", err)
	}

	health := ports.NewHealthRegistry(cfg.Health.CheckTimeout)
	if err := health.Register(db); err != nil {
		return nil, fmt.Errorf("registering database health check: %w", err)
	}

	articles := app.NewArticleService(app.ArticleServiceConfig{
		Articles: db.Articles(),
		Recorder: metrics,
		Logger:   logger,
	})
	comments := app.NewCommentService(app.CommentServiceConfig{
		Comments: db.Comments(),
		Recorder: metrics,
		Logger:   logger,
	})

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		go limiter.Run(ctx)
	}

	if cfg.App.Environment != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	server := http.New(&cfg.Server, logger)
	http.SetupRouter(server.Engine(), http.RouterConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Auth:        &cfg.Auth,
		Server:      &cfg.Server,
		HealthHandler: handlers.NewHealthHandler(handlers.HealthHandlerConfig{
			Registry: health,
			Build:    handlers.NewBuildInfo(cfg.App.Name, Version, Commit, BuildTime),
			Gatherer: prometheus.DefaultGatherer,
		}),
		ArticleHandler:    handlers.NewArticleHandler(articles),
		CommentHandler:    handlers.NewCommentHandler(comments),
		CatalogHandler:    handlers.NewCatalogHandler(app.NewCatalogService(db.Catalog())),
		RateLimiter:       limiter,
		RateLimitObserver: metrics,
	})

	return server, nil
}

// dbSystem maps a storage driver onto the OpenTelemetry db.system value.
func dbSystem(driver string) string {
	if driver == storage.DriverPostgres {
		return "postgresql"
	}

	return driver
}

// serve runs server until ctx is cancelled by a signal or the listener
// fails, then drains in-flight requests within timeout.
func serve(ctx context.Context, logger *slog.Logger, server *http.Server, timeout time.Duration) error {
	select {
	case err := <-server.Start():
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", timeout))

	drainCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(drainCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}

func closeWith(logger *slog.Logger, what string, fn func() error) {
	if err := fn(); err != nil {
		logger.Error(what+" failed", slog.Any("error", err))
	}
}
