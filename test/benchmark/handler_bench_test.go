package benchmark

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	apihttp "github.com/jsamuelsen/articles-service/internal/adapters/http"
	"github.com/jsamuelsen/articles-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/articles-service/internal/adapters/storage"
	"github.com/jsamuelsen/articles-service/internal/app"
	"github.com/jsamuelsen/articles-service/internal/platform/config"
	"github.com/jsamuelsen/articles-service/internal/platform/telemetry"
	"github.com/jsamuelsen/articles-service/internal/ports"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func init() {
	// Set Gin to release mode for accurate benchmarks
	gin.SetMode(gin.ReleaseMode)
	slog.SetDefault(discard)
}

// createGinContext creates a Gin context for handler testing.
func createGinContext(w http.ResponseWriter, r *http.Request) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = r
	return c
}

// setupHealthHandler creates a HealthHandler over registry for benchmarking.
func setupHealthHandler(registry ports.HealthRegistry) *handlers.HealthHandler {
	return handlers.NewHealthHandler(handlers.HealthHandlerConfig{
		Registry: registry,
		Build:    handlers.NewBuildInfo("articles-service", "1.0.0", "abc123", "2024-01-01T00:00:00Z"),
		Gatherer: prometheus.NewRegistry(),
	})
}

// BenchmarkLivenessHandler measures the performance of the liveness endpoint.
// This is a critical path for Kubernetes probes and should be extremely fast.
func BenchmarkLivenessHandler(b *testing.B) {
	handler := setupHealthHandler(ports.NewHealthRegistry(time.Second))
	req := httptest.NewRequest(http.MethodGet, "/-/live", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c := createGinContext(w, req)
		handler.Liveness(c)
	}
}

// BenchmarkReadinessHandler_WithChecks measures readiness with registered health checks.
func BenchmarkReadinessHandler_WithChecks(b *testing.B) {
	registry := ports.NewHealthRegistry(time.Second)
	_ = registry.Register(&simpleHealthChecker{name: "database"})

	handler := setupHealthHandler(registry)
	req := httptest.NewRequest(http.MethodGet, "/-/ready", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c := createGinContext(w, req)
		handler.Readiness(c)
	}
}

// BenchmarkBuildHandler measures the build info endpoint.
func BenchmarkBuildHandler(b *testing.B) {
	handler := setupHealthHandler(ports.NewHealthRegistry(time.Second))
	req := httptest.NewRequest(http.MethodGet, "/-/build", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c := createGinContext(w, req)
		handler.Build(c)
	}
}

// setupSeededAPI builds the full router over a SQLite store holding
// articles sample rows.
func setupSeededAPI(b *testing.B, articles int) *gin.Engine {
	b.Helper()

	db, err := storage.Open(context.Background(), storage.Config{
		Driver:      storage.DriverSQLite,
		DSN:         filepath.Join(b.TempDir(), "bench.db"),
		AutoMigrate: true,
		LogLevel:    "silent",
		Logger:      discard,
	})
	if err != nil {
		b.Fatalf("opening store: %v", err)
	}
	b.Cleanup(func() { _ = db.Close() })

	seed := app.NewSeedService(db.Seeder(), nil, discard)
	if _, err := seed.SeedArticles(context.Background(), articles, "bench"); err != nil {
		b.Fatalf("seeding: %v", err)
	}

	reg := prometheus.NewRegistry()
	metrics, err := telemetry.NewDomainMetrics(reg)
	if err != nil {
		b.Fatalf("metrics: %v", err)
	}

	engine := gin.New()
	apihttp.SetupRouter(engine, apihttp.RouterConfig{
		ServiceName: "articles-service",
		Auth:        &config.AuthConfig{SubjectHeader: "X-User-ID"},
		ArticleHandler: handlers.NewArticleHandler(app.NewArticleService(app.ArticleServiceConfig{
			Articles: db.Articles(),
			Recorder: metrics,
			Logger:   discard,
		})),
		CatalogHandler: handlers.NewCatalogHandler(app.NewCatalogService(db.Catalog())),
	})

	return engine
}

func benchmarkRoute(b *testing.B, engine *gin.Engine, path string) {
	b.Helper()

	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			b.Fatalf("GET %s: status %d: %s", path, w.Code, w.Body.String())
		}
	}
}

// BenchmarkArticleList measures one default page through the full
// middleware chain, including link preloading.
func BenchmarkArticleList(b *testing.B) {
	benchmarkRoute(b, setupSeededAPI(b, 200), "/api/v1/articles/")
}

// BenchmarkArticleList_Filtered measures a search plus year filter.
func BenchmarkArticleList_Filtered(b *testing.B) {
	year := time.Now().UTC().Year()
	benchmarkRoute(b, setupSeededAPI(b, 200), "/api/v1/articles/?search=Sample&year="+strconv.Itoa(year))
}

// BenchmarkArticleExport measures a CSV export of every article.
func BenchmarkArticleExport(b *testing.B) {
	benchmarkRoute(b, setupSeededAPI(b, 500), "/api/v1/articles/export/")
}

// BenchmarkAuthorList measures the catalog listing.
func BenchmarkAuthorList(b *testing.B) {
	benchmarkRoute(b, setupSeededAPI(b, 50), "/api/v1/authors/")
}

// simpleHealthChecker is a minimal health checker for benchmarking.
type simpleHealthChecker struct {
	name string
}

func (s *simpleHealthChecker) Name() string {
	return s.name
}

func (s *simpleHealthChecker) Check(_ context.Context) error {
	return nil
}
