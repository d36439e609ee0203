// Package handlers holds the gin handlers of the articles API and the
// operational /-/ endpoints.
package handlers

import (
	"log/slog"
	"net/http"
	"runtime"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jsamuelsen/articles-service/internal/platform/logging"
	"github.com/jsamuelsen/articles-service/internal/ports"
)

// BuildInfo is the body of GET /-/build. The version fields are stamped in
// by the linker.
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
}

func NewBuildInfo(service, version, commit, buildTime string) BuildInfo {
	return BuildInfo{
		Service:   service,
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

type HealthHandlerConfig struct {
	Registry ports.HealthRegistry
	Build    BuildInfo

	// Gatherer backs /-/metrics; nil means the global default registry.
	Gatherer prometheus.Gatherer
}

// HealthHandler serves probes, build info and Prometheus metrics.
type HealthHandler struct {
	registry ports.HealthRegistry
	build    BuildInfo
	metrics  http.Handler
	started  time.Time
}

func NewHealthHandler(cfg HealthHandlerConfig) *HealthHandler {
	return &HealthHandler{
		registry: cfg.Registry,
		build:    cfg.Build,
		metrics:  MetricsHandler(cfg.Gatherer),
		started:  time.Now(),
	}
}

type livenessResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

// Liveness answers as long as the process serves HTTP. The database is not
// consulted, so an outage never gets the pod restarted.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, livenessResponse{
		Status: "ok",
		Uptime: time.Since(h.started).Truncate(time.Second).String(),
	})
}

// Readiness is 200 while every registered check passes and 503 otherwise.
// Failing checks are logged by name.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx := c.Request.Context()
	result := h.registry.CheckAll(ctx)

	c.Header("Cache-Control", "no-store")

	if result.Status != ports.HealthStatusUnhealthy {
		c.JSON(http.StatusOK, result)
		return
	}

	var failing []string
	for name, check := range result.Checks {
		if check.Status == ports.HealthStatusUnhealthy {
			failing = append(failing, name)
		}
	}
	sort.Strings(failing)

	logging.FromContext(ctx).WarnContext(ctx, "not ready", slog.Any("failing_checks", failing))
	c.JSON(http.StatusServiceUnavailable, result)
}

// Build serves the linker-stamped build metadata.
func (h *HealthHandler) Build(c *gin.Context) {
	c.JSON(http.StatusOK, h.build)
}

// MetricsHandler exposes gatherer in the Prometheus text format.
func MetricsHandler(gatherer prometheus.Gatherer) http.Handler {
	if gatherer == nil {
		return promhttp.Handler()
	}

	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Register mounts the operational routes under /-/. Probes also answer HEAD.
func (h *HealthHandler) Register(engine *gin.Engine) {
	ops := engine.Group("/-")

	for path, fn := range map[string]gin.HandlerFunc{"/live": h.Liveness, "/ready": h.Readiness} {
		ops.GET(path, fn)
		ops.HEAD(path, fn)
	}

	ops.GET("/build", h.Build)
	ops.GET("/metrics", gin.WrapH(h.metrics))
}
