package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/articles-service/internal/mocks"
	"github.com/jsamuelsen/articles-service/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewBuildInfo(t *testing.T) {
	bi := NewBuildInfo("articles-service", "1.0.0", "abc123", "2024-01-15T10:00:00Z")

	assert.Equal(t, "articles-service", bi.Service)
	assert.Equal(t, "1.0.0", bi.Version)
	assert.Equal(t, "abc123", bi.Commit)
	assert.Equal(t, "2024-01-15T10:00:00Z", bi.BuildTime)
	assert.Equal(t, runtime.Version(), bi.GoVersion)
}

func TestHealthHandler_Liveness(t *testing.T) {
	handler := NewHealthHandler(HealthHandlerConfig{Registry: mocks.NewMockHealthRegistry(t)})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/-/live", nil)

	handler.Liveness(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp livenessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.Uptime)
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name       string
		result     *ports.HealthResult
		wantStatus int
		wantBody   []string
	}{
		{
			name: "database reachable",
			result: &ports.HealthResult{
				Status: ports.HealthStatusHealthy,
				Checks: map[string]*ports.CheckResult{
					"database": {Status: ports.HealthStatusHealthy, Duration: time.Millisecond},
				},
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"status":"healthy"`, `"database"`},
		},
		{
			name: "database unreachable",
			result: &ports.HealthResult{
				Status: ports.HealthStatusUnhealthy,
				Checks: map[string]*ports.CheckResult{
					"database": {Status: ports.HealthStatusUnhealthy, Message: "connection refused"},
				},
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   []string{`"status":"unhealthy"`, "connection refused"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.result)

			handler := NewHealthHandler(HealthHandlerConfig{Registry: registry})

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/-/ready", nil)

			handler.Readiness(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
			for _, fragment := range tt.wantBody {
				assert.Contains(t, w.Body.String(), fragment)
			}
		})
	}
}

func TestHealthHandler_Build(t *testing.T) {
	build := NewBuildInfo("articles-service", "1.2.3", "def456", "2024-02-01T12:00:00Z")
	handler := NewHealthHandler(HealthHandlerConfig{Registry: mocks.NewMockHealthRegistry(t), Build: build})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/-/build", nil)

	handler.Build(c)

	require.Equal(t, http.StatusOK, w.Code)

	var got BuildInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, build, got)
}

func TestMetricsHandler(t *testing.T) {
	t.Run("custom gatherer", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "articles_test_total", Help: "test"})
		reg.MustRegister(counter)
		counter.Inc()

		w := httptest.NewRecorder()
		MetricsHandler(reg).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/metrics", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
		assert.Contains(t, w.Body.String(), "articles_test_total 1")
	})

	t.Run("default registry", func(t *testing.T) {
		w := httptest.NewRecorder()
		MetricsHandler(nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/metrics", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "go_goroutines")
	})
}

func TestHealthHandler_Register(t *testing.T) {
	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.Anything).Return(&ports.HealthResult{
		Status: ports.HealthStatusHealthy,
		Checks: map[string]*ports.CheckResult{},
	}).Maybe()

	handler := NewHealthHandler(HealthHandlerConfig{Registry: registry, Gatherer: prometheus.NewRegistry()})

	router := gin.New()
	handler.Register(router)

	routes := make(map[string]bool)
	for _, r := range router.Routes() {
		routes[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"GET /-/live", "HEAD /-/live",
		"GET /-/ready", "HEAD /-/ready",
		"GET /-/build", "GET /-/metrics",
	} {
		assert.True(t, routes[want], "missing route: %s", want)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodHead, "/-/ready", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
