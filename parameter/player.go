package parameter

import (
	"time"
)

// Sandbox player body, top-down maze view with lift jumps
const (
	// Player extent in pixels
	PlayerWidth  = 10
	PlayerHeight = 10

	// PlayerAcceleration is added to velocity per fixed tick while a direction is held
	PlayerAcceleration = 0.06

	// PlayerJumpVelocity is the initial lift velocity of a jump, cells per tick
	PlayerJumpVelocity = 0.35

	// PlayerGravityZ pulls the lift back to the grid plane
	PlayerGravityZ = 0.02

	// PlayerFrictionZ below 1 lets landing bounces settle
	PlayerFrictionZ = 0.9

	// PlayerShakeDuration is the camera shake on demand
	PlayerShakeDuration = 400 * time.Millisecond
	PlayerShakePower    = 1.0
)
