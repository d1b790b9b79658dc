package system

import (
	"github.com/lixenwraith/gridmotion/collision"
	"github.com/lixenwraith/gridmotion/engine"
	"github.com/lixenwraith/gridmotion/parameter"
	"github.com/lixenwraith/gridmotion/telemetry"
)

// EntityCollisionSystem classifies every pair of collidable entities and records overlaps
// Pairs are visited once; when only one side enables SAT both narrow phases are tried
type EntityCollisionSystem struct {
	world    *engine.World
	metrics  *telemetry.Metrics
	detector *collision.Detector
}

// NewEntityCollisionSystem creates the pair system, metrics may be nil
func NewEntityCollisionSystem(world *engine.World, metrics *telemetry.Metrics) *EntityCollisionSystem {
	return &EntityCollisionSystem{
		world:    world,
		metrics:  metrics,
		detector: collision.NewDetector(),
	}
}

func (s *EntityCollisionSystem) Name() string {
	return "entity_collision"
}

func (s *EntityCollisionSystem) Priority() int {
	return parameter.PriorityEntityCollision
}

func (s *EntityCollisionSystem) Update() {
	w := s.world
	entities := w.Query().With(w.EntityCollisions).With(w.Bodies).Execute()

	for i := 0; i < len(entities); i++ {
		a := entities[i]
		ba, _ := w.Bodies.Get(a)
		ca, _ := w.EntityCollisions.Get(a)

		for j := i + 1; j < len(entities); j++ {
			b := entities[j]
			bb, _ := w.Bodies.Get(b)
			cb, _ := w.EntityCollisions.Get(b)

			o := s.detector.Classify(ba, bb, ca.UseSAT)
			if ca.UseSAT != cb.UseSAT && o.Has(collision.OverlapOuter) && !o.Has(collision.OverlapInner) {
				o |= s.detector.Classify(ba, bb, cb.UseSAT)
			}
			if o == 0 {
				continue
			}

			w.Overlaps.Add(a, b, o)
			s.record(o)
		}
	}
}

func (s *EntityCollisionSystem) record(o collision.Overlap) {
	if o.Has(collision.OverlapOuter) {
		s.metrics.Overlap("outer")
	}
	if o.Has(collision.OverlapInner) {
		s.metrics.Overlap("inner")
	}
	if o.Has(collision.OverlapRect) {
		s.metrics.Overlap("rect")
	}
}
