package collision

// TileMap is the read-only level queried for solidity
// Results must be stable for the duration of a fixed tick
type TileMap interface {
	HasCollision(cx, cy int) bool
	Width() int
	Height() int
	GridSize() int
}

// Probe is the candidate position and motion handed to a Checker for one axis sub-step
type Probe struct {
	CX, CY     int
	XR, YR     float64
	VelX, VelY float64

	Width, Height float64
	CellSize      float64
}

// Checker detects tile collisions along one axis and reports a direction code: -1, 0 or 1
// Implementations must not mutate the probed entity, resolution belongs to a Resolver
type Checker interface {
	// PreXCheck and PreYCheck run before the matching Check call of each sub-step
	PreXCheck(p Probe)
	PreYCheck(p Probe)

	CheckXCollision(p Probe) int
	CheckYCollision(p Probe) int

	HasCollision(cx, cy int) bool
}

// NopChecker never reports a collision
type NopChecker struct{}

func (NopChecker) PreXCheck(Probe)              {}
func (NopChecker) PreYCheck(Probe)              {}
func (NopChecker) CheckXCollision(Probe) int    { return 0 }
func (NopChecker) CheckYCollision(Probe) int    { return 0 }
func (NopChecker) HasCollision(cx, cy int) bool { return false }
