package system

import (
	"github.com/lixenwraith/gridmotion/engine"
	"github.com/lixenwraith/gridmotion/parameter"
)

// CollisionCleanupSystem empties the per-tick collision arenas before anything emits into them
type CollisionCleanupSystem struct {
	world *engine.World
}

func NewCollisionCleanupSystem(world *engine.World) *CollisionCleanupSystem {
	return &CollisionCleanupSystem{world: world}
}

func (s *CollisionCleanupSystem) Name() string {
	return "collision_cleanup"
}

func (s *CollisionCleanupSystem) Priority() int {
	return parameter.PriorityCollisionCleanup
}

func (s *CollisionCleanupSystem) Update() {
	s.world.Events.Clear()
	s.world.Overlaps.Clear()
}
