package system

import (
	"github.com/lixenwraith/gridmotion/collision"
	"github.com/lixenwraith/gridmotion/component"
	"github.com/lixenwraith/gridmotion/engine"
	"github.com/lixenwraith/gridmotion/parameter"
)

// RenderBoundsSystem eases render scaling and recomputes the culling rectangle once per frame
type RenderBoundsSystem struct {
	world *engine.World
}

func NewRenderBoundsSystem(world *engine.World) *RenderBoundsSystem {
	return &RenderBoundsSystem{world: world}
}

func (s *RenderBoundsSystem) Name() string {
	return "render_bounds"
}

func (s *RenderBoundsSystem) Priority() int {
	return parameter.PriorityRenderBounds
}

func (s *RenderBoundsSystem) Update() {
	w := s.world
	dt := w.Time.FrameDelta
	w.Bodies.Each(func(e engine.Entity, b *component.Body) {
		b.UpdateScaling(dt)
		if rb, ok := w.RenderBounds.Get(e); ok {
			*rb = collision.BoundsOf(b)
		}
	})
}
