package system

import (
	"github.com/lixenwraith/gridmotion/component"
	"github.com/lixenwraith/gridmotion/engine"
	"github.com/lixenwraith/gridmotion/parameter"
	"github.com/lixenwraith/gridmotion/physics"
	"github.com/lixenwraith/gridmotion/telemetry"
)

// GridMoveSystem advances every body with a kinetic state by one fixed tick
// Tile collision events are published to the world's event arena
type GridMoveSystem struct {
	world   *engine.World
	metrics *telemetry.Metrics

	// free moves entities without a collider
	free physics.GridMover
}

// NewGridMoveSystem creates the movement system, metrics may be nil
func NewGridMoveSystem(world *engine.World, metrics *telemetry.Metrics) *GridMoveSystem {
	return &GridMoveSystem{
		world:   world,
		metrics: metrics,
	}
}

func (s *GridMoveSystem) Name() string {
	return "grid_move"
}

func (s *GridMoveSystem) Priority() int {
	return parameter.PriorityGridMove
}

func (s *GridMoveSystem) Update() {
	w := s.world
	moving := 0

	for _, e := range w.Query().With(w.Bodies).With(w.Kinetics).Execute() {
		b, ok := w.Bodies.Get(e)
		if !ok {
			continue
		}
		k, ok := w.Kinetics.Get(e)
		if !ok {
			continue
		}

		var g *component.Gravity
		if gc, ok := w.Gravities.Get(e); ok {
			g = gc
		}

		mover := &s.free
		if col, ok := w.Colliders.Get(e); ok && col.Mover != nil {
			mover = col.Mover
		}

		out := mover.Advance(b, k, g)
		if out.Steps > 0 {
			moving++
			s.metrics.Substeps(out.Steps)
		}
		out.Each(func(ev component.CollisionEvent) {
			w.Events.Emit(e, ev)
			s.metrics.TileCollision(ev.Axis.String())
		})
	}

	s.metrics.MovingEntities(moving)
	s.metrics.Tick()
}
