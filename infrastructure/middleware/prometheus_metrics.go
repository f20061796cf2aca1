// Package middleware provides cross-cutting concerns for the drafting
// engine: metrics collection and tracing decorators that wrap the core
// without touching its determinism.
package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ahrav/go-draft/internal/ports"
)

var _ ports.MetricsCollector = (*PrometheusMetrics)(nil)

// PrometheusMetrics implements the MetricsCollector interface using
// Prometheus. It provides real-time monitoring of stage latencies, run
// outcomes, and balance quality for the drafting engine.
type PrometheusMetrics struct {
	stageLatency  *prometheus.HistogramVec
	runCounter    *prometheus.CounterVec
	balanceGauges *prometheus.GaugeVec
	distributions *prometheus.HistogramVec
}

// NewPrometheusMetrics creates a PrometheusMetrics instance and registers
// all metrics with the given registerer. Pass nil to use the global
// Prometheus registry.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		stageLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "draft_stage_duration_seconds",
				Help:    "Execution time of drafting pipeline stages.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"stage"},
		),
		runCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "draft_runs_total",
				Help: "Total number of drafting runs, labeled by outcome metric.",
			},
			[]string{"metric", "grade"},
		),
		balanceGauges: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "draft_balance_state",
				Help: "Latest balance-related values, such as the balance coefficient.",
			},
			[]string{"metric"},
		),
		distributions: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "draft_run_observations",
				Help:    "Distributions of per-run observations like optimizer iterations.",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
			[]string{"metric"},
		),
	}
}

// RecordLatency implements the MetricsCollector interface by recording
// stage execution time in a Prometheus histogram.
func (pm *PrometheusMetrics) RecordLatency(
	operation string, duration time.Duration, _ map[string]string,
) {
	pm.stageLatency.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordCounter implements the MetricsCollector interface by incrementing
// the run counter, carrying the fairness grade label when present.
func (pm *PrometheusMetrics) RecordCounter(
	metric string, value float64, labels map[string]string,
) {
	grade, ok := labels["grade"]
	if !ok {
		grade = "unknown"
	}
	pm.runCounter.WithLabelValues(metric, grade).Add(value)
}

// RecordGauge implements the MetricsCollector interface.
func (pm *PrometheusMetrics) RecordGauge(
	metric string, value float64, _ map[string]string,
) {
	pm.balanceGauges.WithLabelValues(metric).Set(value)
}

// RecordHistogram implements the MetricsCollector interface.
func (pm *PrometheusMetrics) RecordHistogram(
	metric string, value float64, _ map[string]string,
) {
	pm.distributions.WithLabelValues(metric).Observe(value)
}
