package collision

import (
	"github.com/lixenwraith/gridmotion/component"
	"github.com/lixenwraith/gridmotion/parameter"
)

// ObliqueResolver resolves like LevelResolver and nudges entities stuck against a corner toward an open diagonal
type ObliqueResolver struct {
	LevelResolver

	WallSlideDelta     float64
	WallSlideTolerance float64

	WallDeltaLeftCollisionRatio   float64
	WallDeltaRightCollisionRatio  float64
	WallDeltaTopCollisionRatio    float64
	WallDeltaBottomCollisionRatio float64
}

// NewObliqueResolver panics on nil checker
func NewObliqueResolver(checker *LevelChecker) *ObliqueResolver {
	return &ObliqueResolver{
		LevelResolver:                 *NewLevelResolver(checker),
		WallSlideDelta:                parameter.WallSlideDelta,
		WallSlideTolerance:            parameter.WallSlideTolerance,
		WallDeltaLeftCollisionRatio:   parameter.WallDeltaLeftCollisionRatio,
		WallDeltaRightCollisionRatio:  parameter.WallDeltaRightCollisionRatio,
		WallDeltaTopCollisionRatio:    parameter.WallDeltaTopCollisionRatio,
		WallDeltaBottomCollisionRatio: parameter.WallDeltaBottomCollisionRatio,
	}
}

func (r *ObliqueResolver) ResolveXCollision(b *component.Body, k *component.Kinetic, dir int) {
	if dir == 0 {
		return
	}
	r.LevelResolver.ResolveXCollision(b, k, dir)

	// Wall on the side: slide vertically toward the open diagonal
	if r.shouldNudge(b.YR, r.WallDeltaTopCollisionRatio, b.CX+dir, b.CY-1, k.VelY, true) {
		k.VelY -= r.WallSlideDelta
	}
	if r.shouldNudge(b.YR, r.WallDeltaBottomCollisionRatio, b.CX+dir, b.CY+1, k.VelY, false) {
		k.VelY += r.WallSlideDelta
	}
}

func (r *ObliqueResolver) ResolveYCollision(b *component.Body, k *component.Kinetic, dir int) {
	if dir == 0 {
		return
	}
	r.LevelResolver.ResolveYCollision(b, k, dir)

	// Ceiling probes the row below, floor probes the row above
	row := b.CY - dir
	if r.shouldNudge(b.XR, r.WallDeltaLeftCollisionRatio, b.CX-1, row, k.VelX, true) {
		k.VelX -= r.WallSlideDelta
	}
	if r.shouldNudge(b.XR, r.WallDeltaRightCollisionRatio, b.CX+1, row, k.VelX, false) {
		k.VelX += r.WallSlideDelta
	}
}

// shouldNudge requires the ratio below the threshold and an open diagonal
// A negative nudge fires while velocity is at most the tolerance, a positive one only once it already reaches it,
// so with both diagonals open and the entity at rest the negative side wins
func (r *ObliqueResolver) shouldNudge(ratio, threshold float64, cx, cy int, vel float64, negative bool) bool {
	if ratio >= threshold || r.checker.HasCollision(cx, cy) {
		return false
	}
	if negative {
		return vel <= r.WallSlideTolerance
	}
	return vel >= r.WallSlideTolerance
}
