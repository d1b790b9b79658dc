package component

// Gravity is a per-entity acceleration applied once per fixed tick
// Each axis can be disabled independently, Multiplier scales all axes
type Gravity struct {
	X, Y, Z    float64
	Multiplier float64

	EnableX, EnableY, EnableZ bool
}

// NewGravity returns gravity with all axes enabled and unit multiplier
func NewGravity(x, y, z float64) Gravity {
	return Gravity{
		X:          x,
		Y:          y,
		Z:          z,
		Multiplier: 1,
		EnableX:    true,
		EnableY:    true,
		EnableZ:    true,
	}
}

// EnableAll toggles every axis at once
func (g *Gravity) EnableAll(enable bool) {
	g.EnableX = enable
	g.EnableY = enable
	g.EnableZ = enable
}

func (g *Gravity) DeltaX() float64 {
	if !g.EnableX {
		return 0
	}
	return g.Multiplier * g.X
}

func (g *Gravity) DeltaY() float64 {
	if !g.EnableY {
		return 0
	}
	return g.Multiplier * g.Y
}

func (g *Gravity) DeltaZ() float64 {
	if !g.EnableZ {
		return 0
	}
	return g.Multiplier * g.Z
}
