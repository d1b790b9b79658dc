package parameter

// Fixed tick timing
const (
	// FixedTicksPerSecond is the physics tick rate
	FixedTicksPerSecond = 30

	// TargetFPS is the frame rate at which tmod equals 1
	TargetFPS = 60

	// MaxFixedTicksPerFrame drops accumulated time after a long stall instead of spiralling
	MaxFixedTicksPerFrame = 8
)
