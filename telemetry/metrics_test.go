package telemetry

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCount(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.Tick()
	m.Tick()
	m.TileCollision("x")
	m.TileCollision("y")
	m.TileCollision("x")
	m.Overlap("outer")
	m.Substeps(3)
	m.MovingEntities(4)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ticks))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.tileCollisions.WithLabelValues("x")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.tileCollisions.WithLabelValues("y")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.overlaps.WithLabelValues("outer")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.entities))
	assert.Equal(t, 1, testutil.CollectAndCount(m.substeps))
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Tick()
		m.Substeps(1)
		m.TileCollision("x")
		m.Overlap("rect")
		m.MovingEntities(1)
	})
}

func TestMetricsDoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)
	assert.Panics(t, func() { NewMetrics(reg) })
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.Tick()

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "gridmotion_ticks_total 1")
}
