package collision

import (
	"github.com/lixenwraith/gridmotion/component"
)

// Resolver reacts to a direction reported by a Checker, correcting position and velocity
// Called immediately after detection, before the sub-step normalizes the ratio
type Resolver interface {
	ResolveXCollision(b *component.Body, k *component.Kinetic, dir int)
	ResolveYCollision(b *component.Body, k *component.Kinetic, dir int)
}

// Paired is implemented by resolvers that read configuration from a specific checker
// Binding such a resolver to any other checker is a caller contract violation
type Paired interface {
	Checker() Checker
}

// NopResolver leaves state untouched, events are still reported by the mover
type NopResolver struct{}

func (NopResolver) ResolveXCollision(*component.Body, *component.Kinetic, int) {}
func (NopResolver) ResolveYCollision(*component.Body, *component.Kinetic, int) {}
