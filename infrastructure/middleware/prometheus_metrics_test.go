package middleware

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics_RecordCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	pm := NewPrometheusMetrics(reg)

	pm.RecordCounter("assignments_total", 1, map[string]string{"grade": "good"})
	pm.RecordCounter("assignments_total", 1, map[string]string{"grade": "good"})
	pm.RecordCounter("assignments_total", 1, nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(
		pm.runCounter.WithLabelValues("assignments_total", "good")))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		pm.runCounter.WithLabelValues("assignments_total", "unknown")))
}

func TestPrometheusMetrics_RecordGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	pm := NewPrometheusMetrics(reg)

	pm.RecordGauge("balance_coefficient", 0.92, nil)
	pm.RecordGauge("balance_coefficient", 0.97, nil)

	assert.Equal(t, 0.97, testutil.ToFloat64(
		pm.balanceGauges.WithLabelValues("balance_coefficient")))
}

func TestPrometheusMetrics_LatencyAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	pm := NewPrometheusMetrics(reg)

	pm.RecordLatency("build_teams", 25*time.Millisecond, nil)
	pm.RecordHistogram("optimizer_iterations", 3, nil)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	assert.True(t, names["draft_stage_duration_seconds"])
	assert.True(t, names["draft_run_observations"])
}
