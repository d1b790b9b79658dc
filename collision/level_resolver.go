package collision

import (
	"github.com/lixenwraith/gridmotion/component"
	"github.com/lixenwraith/gridmotion/parameter"
)

// LevelResolver snaps the ratio back to the contact threshold of its LevelChecker
type LevelResolver struct {
	checker *LevelChecker

	// WallDamping multiplies horizontal velocity on a wall hit
	WallDamping float64
}

// NewLevelResolver panics on nil checker
func NewLevelResolver(checker *LevelChecker) *LevelResolver {
	if checker == nil {
		panic("collision: level resolver requires a level checker")
	}
	return &LevelResolver{
		checker:     checker,
		WallDamping: parameter.WallVelocityDamping,
	}
}

func (r *LevelResolver) Checker() Checker { return r.checker }

func (r *LevelResolver) ResolveXCollision(b *component.Body, k *component.Kinetic, dir int) {
	switch dir {
	case -1:
		b.XR = r.checker.LeftCollisionRatio
	case 1:
		b.XR = r.checker.RightCollisionRatio
	default:
		return
	}
	k.VelX *= r.WallDamping
}

func (r *LevelResolver) ResolveYCollision(b *component.Body, k *component.Kinetic, dir int) {
	switch dir {
	case -1:
		b.YR = r.checker.TopRatio(b.Height, b.CellSize)
	case 1:
		b.YR = r.checker.BottomCollisionRatio
	default:
		return
	}
	k.VelY = 0
}
