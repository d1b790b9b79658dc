package system

import (
	"github.com/lixenwraith/gridmotion/engine"
	"github.com/lixenwraith/gridmotion/parameter"
)

// PlatformerGravitySystem disables vertical gravity while an entity stands on ground
type PlatformerGravitySystem struct {
	world *engine.World
}

func NewPlatformerGravitySystem(world *engine.World) *PlatformerGravitySystem {
	return &PlatformerGravitySystem{world: world}
}

func (s *PlatformerGravitySystem) Name() string {
	return "platformer_gravity"
}

func (s *PlatformerGravitySystem) Priority() int {
	return parameter.PriorityPlatformGravity
}

func (s *PlatformerGravitySystem) Update() {
	for _, e := range s.world.Query().With(s.world.Platformers).With(s.world.Gravities).Execute() {
		p, _ := s.world.Platformers.Get(e)
		g, ok := s.world.Gravities.Get(e)
		if !ok {
			continue
		}
		g.EnableY = !p.OnGround
	}
}

// PlatformerGroundSystem refreshes the ground flag after movement using the entity's ground checker
// Entities without a ground checker keep whatever flag they had
type PlatformerGroundSystem struct {
	world *engine.World
}

func NewPlatformerGroundSystem(world *engine.World) *PlatformerGroundSystem {
	return &PlatformerGroundSystem{world: world}
}

func (s *PlatformerGroundSystem) Name() string {
	return "platformer_ground"
}

func (s *PlatformerGroundSystem) Priority() int {
	return parameter.PriorityPlatformGround
}

func (s *PlatformerGroundSystem) Update() {
	w := s.world
	entities := w.Query().
		With(w.Platformers).
		With(w.Bodies).
		With(w.Kinetics).
		With(w.Colliders).
		Execute()

	for _, e := range entities {
		col, ok := w.Colliders.Get(e)
		if !ok || col.Ground == nil {
			continue
		}
		p, _ := w.Platformers.Get(e)
		b, _ := w.Bodies.Get(e)
		k, _ := w.Kinetics.Get(e)
		p.OnGround = col.Ground.IsGrounded(k.VelY, b.CX, b.CY, b.XR, b.YR)
	}
}
