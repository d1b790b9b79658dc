package parameter

// System Execution Priorities (lower runs first)
// Fixed tick: cleanup, gravity toggle, movement, ground, entity overlap
// Frame: render bounds, camera
const (
	PriorityCollisionCleanup = 10
	PriorityPlatformGravity  = 20
	PriorityGridMove         = 30
	PriorityPlatformGround   = 40
	PriorityEntityCollision  = 50

	PriorityRenderBounds = 100
	PriorityCamera       = 110
)
