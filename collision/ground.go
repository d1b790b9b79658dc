package collision

// GroundChecker decides whether an entity rests on solid ground
type GroundChecker interface {
	IsGrounded(velY float64, cx, cy int, xr, yr float64) bool
}

// LevelGroundChecker is grounded only when resting exactly on the resolved floor contact
// The equality is strict: a ratio off by 1e-6 is airborne, resolution must snap to BottomCollisionRatio
type LevelGroundChecker struct {
	Checker *LevelChecker
}

// NewLevelGroundChecker panics on nil checker
func NewLevelGroundChecker(checker *LevelChecker) *LevelGroundChecker {
	if checker == nil {
		panic("collision: ground checker requires a level checker")
	}
	return &LevelGroundChecker{Checker: checker}
}

func (g *LevelGroundChecker) IsGrounded(velY float64, cx, cy int, xr, yr float64) bool {
	return velY == 0 && g.Checker.HasCollision(cx, cy+1) && yr == g.Checker.BottomCollisionRatio
}
