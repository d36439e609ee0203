package telemetry

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "github.com/jsamuelsen/articles-service/telemetry"

	opsPrefix      = "/-/"
	unmatchedRoute = "unmatched"
	traceHeader    = "X-Trace-ID"
)

// httpInstruments are the OTLP-side request instruments. The Prometheus
// domain counters live in DomainMetrics.
type httpInstruments struct {
	duration metric.Float64Histogram
	requests metric.Int64Counter
	inflight metric.Int64UpDownCounter
}

func newHTTPInstruments(meter metric.Meter) (*httpInstruments, error) {
	var (
		in  httpInstruments
		err error
	)

	if in.duration, err = meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of article API requests"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	if in.requests, err = meter.Int64Counter("http.server.request.total",
		metric.WithDescription("Article API requests served"),
	); err != nil {
		return nil, err
	}

	if in.inflight, err = meter.Int64UpDownCounter("http.server.active_requests",
		metric.WithDescription("Article API requests in flight"),
	); err != nil {
		return nil, err
	}

	return &in, nil
}

// routeOf returns the matched route template so ids never become label
// values.
func routeOf(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}

	return unmatchedRoute
}

// Middleware records duration, totals and in-flight requests per route and
// echoes the trace id in X-Trace-ID. TracingMiddleware must run first.
func Middleware() gin.HandlerFunc {
	in, err := newHTTPInstruments(otel.Meter(instrumentationName))
	if err != nil {
		otel.Handle(err)
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		started := time.Now()
		route := attribute.String("http.route", routeOf(c))
		method := attribute.String("http.request.method", c.Request.Method)

		if in != nil {
			in.inflight.Add(ctx, 1, metric.WithAttributes(method, route))
			defer in.inflight.Add(ctx, -1, metric.WithAttributes(method, route))
		}

		c.Next()

		if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
			c.Header(traceHeader, sc.TraceID().String())
		}

		if in == nil {
			return
		}

		done := metric.WithAttributes(method, route,
			attribute.Int("http.response.status_code", c.Writer.Status()))
		in.duration.Record(ctx, time.Since(started).Seconds(), done)
		in.requests.Add(ctx, 1, done)
	}
}

// TracingMiddleware starts one server span per API request. Probes and
// metrics scrapes under /-/ are skipped.
func TracingMiddleware(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName,
		otelgin.WithFilter(func(r *http.Request) bool {
			return !strings.HasPrefix(r.URL.Path, opsPrefix)
		}),
	)
}

// AnnotateUser records the acting username on the request span.
func AnnotateUser(ctx context.Context, username string) {
	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.SetAttributes(attribute.String("enduser.id", username))
	}
}
