package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gridmotion"

// Metrics counts simulation activity
// All methods are safe on a nil receiver so systems can run without a registry
type Metrics struct {
	ticks          prometheus.Counter
	substeps       prometheus.Histogram
	tileCollisions *prometheus.CounterVec
	overlaps       *prometheus.CounterVec
	entities       prometheus.Gauge
}

// NewMetrics creates and registers the collectors on reg
// A nil reg falls back to the default registerer
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Fixed simulation ticks run.",
		}),
		substeps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "substeps",
			Help:      "Movement sub-steps per entity per tick.",
			Buckets:   []float64{1, 2, 3, 4, 6, 8, 16, 32},
		}),
		tileCollisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tile_collisions_total",
			Help:      "Tile collision events by axis.",
		}, []string{"axis"}),
		overlaps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entity_overlaps_total",
			Help:      "Entity pair overlaps by classification.",
		}, []string{"kind"}),
		entities: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "moving_entities",
			Help:      "Entities advanced in the last tick.",
		}),
	}
	reg.MustRegister(m.ticks, m.substeps, m.tileCollisions, m.overlaps, m.entities)
	return m
}

func (m *Metrics) Tick() {
	if m == nil {
		return
	}
	m.ticks.Inc()
}

func (m *Metrics) Substeps(n int) {
	if m == nil {
		return
	}
	m.substeps.Observe(float64(n))
}

func (m *Metrics) TileCollision(axis string) {
	if m == nil {
		return
	}
	m.tileCollisions.WithLabelValues(axis).Inc()
}

func (m *Metrics) Overlap(kind string) {
	if m == nil {
		return
	}
	m.overlaps.WithLabelValues(kind).Inc()
}

func (m *Metrics) MovingEntities(n int) {
	if m == nil {
		return
	}
	m.entities.Set(float64(n))
}

// Handler serves the registry in the Prometheus exposition format
func Handler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
