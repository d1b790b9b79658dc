package component

import (
	"github.com/lixenwraith/gridmotion/parameter"
)

// Kinetic holds velocity in cells per fixed tick and per-axis multiplicative friction
// Z is the lift axis
type Kinetic struct {
	VelX, VelY, VelZ       float64
	FrictX, FrictY, FrictZ float64
}

// NewKinetic returns a resting state with default friction
func NewKinetic() Kinetic {
	return Kinetic{
		FrictX: parameter.FrictionX,
		FrictY: parameter.FrictionY,
		FrictZ: parameter.FrictionZ,
	}
}

// Moving reports whether any planar velocity remains
func (k *Kinetic) Moving() bool {
	return k.VelX != 0 || k.VelY != 0
}

// Stop zeroes all velocity components
func (k *Kinetic) Stop() {
	k.VelX, k.VelY, k.VelZ = 0, 0, 0
}
