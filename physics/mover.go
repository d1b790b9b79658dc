package physics

import (
	"fmt"
	"math"

	"github.com/lixenwraith/gridmotion/collision"
	"github.com/lixenwraith/gridmotion/component"
	"github.com/lixenwraith/gridmotion/parameter"
	"github.com/lixenwraith/gridmotion/vmath"
)

// Outcome reports the tile collisions of one Advance call
// At most one event per axis, a later sub-step overwrites the direction of an earlier one
type Outcome struct {
	Events [component.AxisCount]component.CollisionEvent
	N      int

	// Steps is the number of sub-steps taken
	Steps int
}

func (o *Outcome) add(axis component.Axis, dir int) {
	for i := 0; i < o.N; i++ {
		if o.Events[i].Axis == axis {
			o.Events[i].Dir = dir
			return
		}
	}
	o.Events[o.N] = component.CollisionEvent{Axis: axis, Dir: dir}
	o.N++
}

// Each visits events in emission order
func (o *Outcome) Each(fn func(component.CollisionEvent)) {
	for i := 0; i < o.N; i++ {
		fn(o.Events[i])
	}
}

// Has reports whether an event was emitted on the axis
func (o *Outcome) Has(axis component.Axis) (int, bool) {
	for i := 0; i < o.N; i++ {
		if o.Events[i].Axis == axis {
			return o.Events[i].Dir, true
		}
	}
	return 0, false
}

// GridMover advances bodies in sub-steps against a tile checker and reacts through a resolver
// The zero value moves freely with no tile collisions
type GridMover struct {
	checker  collision.Checker
	resolver collision.Resolver
}

// NewGridMover creates a mover bound to the pair, see Bind
func NewGridMover(checker collision.Checker, resolver collision.Resolver) *GridMover {
	m := &GridMover{}
	m.Bind(checker, resolver)
	return m
}

// Bind sets the checker and resolver
// Panics when a resolver is bound without a checker or to a checker other than the one it reads from
func (m *GridMover) Bind(checker collision.Checker, resolver collision.Resolver) {
	if resolver != nil && checker == nil {
		if _, nop := resolver.(collision.NopResolver); !nop {
			panic(fmt.Sprintf("physics: resolver %T bound without a checker", resolver))
		}
	}
	if p, ok := resolver.(collision.Paired); ok && p.Checker() != checker {
		panic(fmt.Sprintf("physics: resolver %T is paired with a different checker than %T", resolver, checker))
	}
	m.checker = checker
	m.resolver = resolver
}

func (m *GridMover) Checker() collision.Checker   { return m.checker }
func (m *GridMover) Resolver() collision.Resolver { return m.resolver }

// Advance runs one fixed tick of movement for the body
// Order: record last attach, gravity, sub-steps (X then Y, resolve before carry), friction, lift
// Calling it twice for one entity within a tick double-integrates, callers own tick discipline
func (m *GridMover) Advance(b *component.Body, k *component.Kinetic, g *component.Gravity) Outcome {
	var out Outcome

	b.RecordLastAttach()
	ApplyGravity(k, g)

	steps := StepCount(k.VelX, k.VelY, b.MaxGridMovementPercent)
	out.Steps = steps
	if steps > 0 {
		n := float64(steps)
		for i := 0; i < steps; i++ {
			b.XR += k.VelX / n
			if m.checker != nil && k.VelX != 0 {
				p := m.probe(b, k)
				m.checker.PreXCheck(p)
				if dir := m.checker.CheckXCollision(p); dir != 0 {
					out.add(component.AxisX, dir)
					if m.resolver != nil {
						m.resolver.ResolveXCollision(b, k, dir)
					}
				}
			}
			b.NormalizeX()

			b.YR += k.VelY / n
			if m.checker != nil && k.VelY != 0 {
				p := m.probe(b, k)
				m.checker.PreYCheck(p)
				if dir := m.checker.CheckYCollision(p); dir != 0 {
					out.add(component.AxisY, dir)
					if m.resolver != nil {
						m.resolver.ResolveYCollision(b, k, dir)
					}
				}
			}
			b.NormalizeY()
		}
	}

	ApplyFriction(k)

	if AdvanceLift(b, k, g) {
		out.add(component.AxisZ, 0)
	}
	return out
}

func (m *GridMover) probe(b *component.Body, k *component.Kinetic) collision.Probe {
	return collision.Probe{
		CX:       b.CX,
		CY:       b.CY,
		XR:       b.XR,
		YR:       b.YR,
		VelX:     k.VelX,
		VelY:     k.VelY,
		Width:    b.Width,
		Height:   b.Height,
		CellSize: b.CellSize,
	}
}

// StepCount returns ceil(|vx| + |vy|/maxPct)
// Only the Y term is divided; the X term alone still bounds each X sub-step to one cell
func StepCount(velX, velY, maxPct float64) int {
	return int(math.Ceil(math.Abs(velX) + math.Abs(velY)/maxPct))
}

// ApplyGravity adds the enabled planar gravity components to velocity, nil gravity is a no-op
func ApplyGravity(k *component.Kinetic, g *component.Gravity) {
	if g == nil {
		return
	}
	k.VelX += g.DeltaX()
	k.VelY += g.DeltaY()
}

// ApplyFriction decays planar velocity and snaps it to zero below the rest epsilon
func ApplyFriction(k *component.Kinetic) {
	k.VelX = vmath.SnapZero(k.VelX*k.FrictX, parameter.VelocitySnapEpsilon)
	k.VelY = vmath.SnapZero(k.VelY*k.FrictY, parameter.VelocitySnapEpsilon)
}

// AdvanceLift integrates the lift axis and reports a landing
// Landing clamps lift to 0 and bounces with restitution, small bounces are snapped away
func AdvanceLift(b *component.Body, k *component.Kinetic, g *component.Gravity) bool {
	landed := false

	b.ZR += k.VelZ
	if b.ZR > 0 && g != nil {
		k.VelZ -= g.DeltaZ()
	}
	if b.ZR < 0 {
		b.ZR = 0
		k.VelZ = vmath.SnapZero(-k.VelZ*parameter.BounceRestitution, parameter.BounceSnapEpsilon)
		landed = true
	}

	k.VelZ = vmath.SnapZero(k.VelZ*k.FrictZ, parameter.VelocitySnapEpsilon)
	return landed
}
