package component

// Axis identifies the axis of a tile collision
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ

	AxisCount
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "unknown"
}

// CollisionEvent is a transient tile collision report, valid for the tick that produced it
// Dir is -1 or 1 on X/Y; landing on the Z axis reports 0
type CollisionEvent struct {
	Axis Axis
	Dir  int
}
