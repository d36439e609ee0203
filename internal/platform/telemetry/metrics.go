package telemetry

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/articles-service/internal/domain"
)

const metricsNamespace = "articles"

// Outcome labels for write metrics.
const (
	OutcomeOK           = "ok"
	OutcomeValidation   = "validation"
	OutcomeUnauthorized = "unauthorized"
	OutcomeForbidden    = "forbidden"
	OutcomeNotFound     = "not_found"
	OutcomeError        = "error"
)

// DomainMetrics exposes use-case counters on a Prometheus registry.
// It satisfies app.Recorder.
type DomainMetrics struct {
	writes      *prometheus.CounterVec
	exports     prometheus.Counter
	exportRows  prometheus.Histogram
	rateLimited *prometheus.CounterVec
}

// NewDomainMetrics registers the domain collectors with reg.
func NewDomainMetrics(reg prometheus.Registerer) (*DomainMetrics, error) {
	m := &DomainMetrics{
		writes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "writes_total",
			Help:      "Write operations by entity, operation and outcome.",
		}, []string{"entity", "operation", "outcome"}),
		exports: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "exports_total",
			Help:      "Completed CSV exports.",
		}),
		exportRows: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "export_rows",
			Help:      "Rows written per CSV export.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		rateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the write rate limiter.",
		}, []string{"route"}),
	}

	for _, c := range []prometheus.Collector{m.writes, m.exports, m.exportRows, m.rateLimited} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering domain metrics: %w", err)
		}
	}

	return m, nil
}

// WriteCompleted counts a finished write by outcome.
func (m *DomainMetrics) WriteCompleted(entity, operation string, err error) {
	m.writes.WithLabelValues(entity, operation, Outcome(err)).Inc()
}

// ExportCompleted counts an export and observes its size.
func (m *DomainMetrics) ExportCompleted(rows int) {
	m.exports.Inc()
	m.exportRows.Observe(float64(rows))
}

// RateLimited counts a rejected request on route.
func (m *DomainMetrics) RateLimited(route string) {
	m.rateLimited.WithLabelValues(route).Inc()
}

// Outcome classifies err into a low-cardinality label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case domain.IsValidation(err):
		return OutcomeValidation
	case domain.IsUnauthorized(err):
		return OutcomeUnauthorized
	case domain.IsForbidden(err):
		return OutcomeForbidden
	case domain.IsNotFound(err):
		return OutcomeNotFound
	default:
		return OutcomeError
	}
}
