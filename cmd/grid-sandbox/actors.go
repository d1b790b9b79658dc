package main

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/gridmotion/collision"
	"github.com/lixenwraith/gridmotion/engine"
	"github.com/lixenwraith/gridmotion/parameter"
)

const (
	wanderTurnChance = 0.05
	wanderAccelScale = 0.5
	contactPush      = 0.15
	contactBump      = 3.0
)

// wanderSystem steers drones along a random heading that changes now and then
type wanderSystem struct {
	sb       *Sandbox
	rng      *rand.Rand
	headings map[engine.Entity]float64
}

func newWanderSystem(sb *Sandbox, rng *rand.Rand) *wanderSystem {
	return &wanderSystem{
		sb:       sb,
		rng:      rng,
		headings: make(map[engine.Entity]float64),
	}
}

func (s *wanderSystem) Name() string  { return "wander" }
func (s *wanderSystem) Priority() int { return parameter.PriorityPlatformGravity + 5 }

func (s *wanderSystem) Update() {
	accel := s.sb.tuning.Player.Acceleration * wanderAccelScale
	for _, d := range s.sb.drones {
		k, ok := s.sb.world.Kinetics.Get(d)
		if !ok {
			continue
		}
		h, seen := s.headings[d]
		// A drone that stalled against a wall picks a new heading
		if !seen || !k.Moving() || s.rng.Float64() < wanderTurnChance {
			h = s.rng.Float64() * 2 * math.Pi
			s.headings[d] = h
		}
		k.VelX += math.Cos(h) * accel
		k.VelY += math.Sin(h) * accel
	}
}

// contactSystem knocks the player back from drones it overlaps and kicks the camera
type contactSystem struct {
	sb *Sandbox
}

func newContactSystem(sb *Sandbox) *contactSystem {
	return &contactSystem{sb: sb}
}

func (s *contactSystem) Name() string  { return "contact" }
func (s *contactSystem) Priority() int { return parameter.PriorityEntityCollision + 5 }

func (s *contactSystem) Update() {
	w := s.sb.world
	player := s.sb.body(s.sb.player)
	k, ok := w.Kinetics.Get(s.sb.player)
	if player == nil || !ok {
		return
	}
	for _, d := range s.sb.drones {
		if !w.Overlaps.Has(s.sb.player, d, collision.OverlapInner) && !w.Overlaps.Has(s.sb.player, d, collision.OverlapRect) {
			continue
		}
		drone := s.sb.body(d)
		angle := math.Atan2(player.CenterY()-drone.CenterY(), player.CenterX()-drone.CenterX())
		k.VelX += math.Cos(angle) * contactPush
		k.VelY += math.Sin(angle) * contactPush
		player.SetSquashX(0.8)
		s.sb.cam.BumpAngle(angle, contactBump)
	}
}
