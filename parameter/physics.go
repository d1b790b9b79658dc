package parameter

// Grid movement defaults
const (
	// DefaultRatio places a freshly spawned entity at the center of its cell
	DefaultRatio = 0.5

	// MaxGridMovementPercent caps a single movement sub-step to about a third of a cell
	MaxGridMovementPercent = 0.33

	// Per-tick multiplicative friction
	FrictionX = 0.82
	FrictionY = 0.82
	FrictionZ = 1.0
)

// Velocity snapping thresholds, guarantee eventual rest
const (
	// VelocitySnapEpsilon zeroes planar and post-friction lift velocity
	VelocitySnapEpsilon = 0.0005

	// BounceSnapEpsilon zeroes lift velocity right after a landing bounce
	BounceSnapEpsilon = 0.06

	// BounceRestitution is the fraction of lift velocity kept on landing
	BounceRestitution = 0.9
)

// Level collision ratios, how far into a cell the attach point may travel before touching the neighbor
const (
	LeftCollisionRatio  = 0.3
	RightCollisionRatio = 0.7
	TopCollisionRatio   = 0.3

	// BottomCollisionRatio is the largest float64 below 1: bodies anchored at their feet rest on the floor tile
	// A ratio of exactly 1 would carry into the floor cell on normalization
	BottomCollisionRatio = 1 - 0x1p-53
)

// Tile collision response
const (
	// WallVelocityDamping is applied to the colliding axis velocity on a wall hit
	WallVelocityDamping = 0.5
)

// Corner nudge (oblique resolver)
const (
	// WallSlideDelta is the push toward an open diagonal when stuck on a corner
	WallSlideDelta = 0.005

	// WallSlideTolerance gates the nudge so it never fights intentional motion
	WallSlideTolerance = 0.015

	WallDeltaLeftCollisionRatio   = 0.5
	WallDeltaRightCollisionRatio  = 0.5
	WallDeltaTopCollisionRatio    = 0.6
	WallDeltaBottomCollisionRatio = 0.6
)

// Render scaling
const (
	// SquashRestoreSpeed is the per-second easing rate of squash back to 1
	SquashRestoreSpeed = 12.0
)
