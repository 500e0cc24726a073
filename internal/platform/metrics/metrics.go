// Package metrics registers the application's Prometheus metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application. Methods are
// nil-safe so tests can pass a nil *Metrics without registering anything
// against the default registry.
type Metrics struct {
	// Validation outcomes by result and matched format.
	Validations *prometheus.CounterVec

	// HTTP request latency by route and status.
	RequestDuration *prometheus.HistogramVec
}

// New creates and registers all metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		Validations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "nhicheck_validations_total",
			Help: "Total NHI validations by outcome and matched format",
		}, []string{"outcome", "format"}), // outcome: "valid"|"invalid", format: "old"|"new"|"none"

		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "nhicheck_http_request_duration_seconds",
			Help:    "HTTP request duration by route and status",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route", "status"}),
	}
}

// IncrementValidation records one validation outcome.
func (m *Metrics) IncrementValidation(outcome, format string) {
	if m != nil {
		m.Validations.WithLabelValues(outcome, format).Inc()
	}
}

// ObserveRequestDuration records the duration of one HTTP request.
func (m *Metrics) ObserveRequestDuration(route, status string, d time.Duration) {
	if m != nil {
		m.RequestDuration.WithLabelValues(route, status).Observe(d.Seconds())
	}
}
