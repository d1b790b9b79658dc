package collision

import (
	"fmt"
	"math"

	"github.com/lixenwraith/gridmotion/parameter"
)

// LevelChecker reports a collision once the entity edge, not its center, reaches a solid neighbor
// The ratios describe how far into its own cell the attach point may travel toward each side
type LevelChecker struct {
	Level TileMap

	LeftCollisionRatio   float64
	RightCollisionRatio  float64
	TopCollisionRatio    float64
	BottomCollisionRatio float64

	// UseTopCollisionRatio uses TopCollisionRatio verbatim instead of deriving it from the entity height
	UseTopCollisionRatio bool

	probes uint64
}

// NewLevelChecker creates a checker with default ratios
// Panics on nil level
func NewLevelChecker(level TileMap) *LevelChecker {
	c := &LevelChecker{
		Level:                level,
		LeftCollisionRatio:   parameter.LeftCollisionRatio,
		RightCollisionRatio:  parameter.RightCollisionRatio,
		TopCollisionRatio:    parameter.TopCollisionRatio,
		BottomCollisionRatio: parameter.BottomCollisionRatio,
	}
	c.MustValidate()
	return c
}

// MustValidate panics unless the level is set and every ratio lies in [0, 1)
// A ratio of 1 would resolve contacts onto a normalization boundary
func (c *LevelChecker) MustValidate() {
	if c.Level == nil {
		panic("collision: level checker requires a tile map")
	}
	for _, r := range [...]struct {
		name string
		v    float64
	}{
		{"left", c.LeftCollisionRatio},
		{"right", c.RightCollisionRatio},
		{"top", c.TopCollisionRatio},
		{"bottom", c.BottomCollisionRatio},
	} {
		if r.v < 0 || r.v >= 1 || math.IsNaN(r.v) {
			panic(fmt.Sprintf("collision: %s collision ratio must be in [0, 1), got %v", r.name, r.v))
		}
	}
}

// TopRatio returns the ceiling contact ratio for an entity of the given height
func (c *LevelChecker) TopRatio(height, cellSize float64) float64 {
	if c.UseTopCollisionRatio {
		return c.TopCollisionRatio
	}
	r := math.Floor(height / cellSize)
	if r < 0 {
		return 0
	}
	if r > c.BottomCollisionRatio {
		return c.BottomCollisionRatio
	}
	return r
}

func (c *LevelChecker) PreXCheck(Probe) { c.probes++ }
func (c *LevelChecker) PreYCheck(Probe) { c.probes++ }

// Probes returns the number of pre-check hooks fired since creation
func (c *LevelChecker) Probes() uint64 { return c.probes }

func (c *LevelChecker) CheckXCollision(p Probe) int {
	if c.Level.HasCollision(p.CX+1, p.CY) && p.XR >= c.RightCollisionRatio {
		return 1
	}
	if c.Level.HasCollision(p.CX-1, p.CY) && p.XR <= c.LeftCollisionRatio {
		return -1
	}
	return 0
}

func (c *LevelChecker) CheckYCollision(p Probe) int {
	if c.Level.HasCollision(p.CX, p.CY-1) && p.YR <= c.TopRatio(p.Height, p.CellSize) {
		return -1
	}
	if c.Level.HasCollision(p.CX, p.CY+1) && p.YR >= c.BottomCollisionRatio {
		return 1
	}
	return 0
}

func (c *LevelChecker) HasCollision(cx, cy int) bool {
	return c.Level.HasCollision(cx, cy)
}
