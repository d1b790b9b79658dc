package engine

import "time"

// System is updated by the world, lower priority runs first
type System interface {
	Name() string
	Priority() int
	Update()
}

// TimeResource is the frame timing shared with systems
// Written by the runner before systems execute
type TimeResource struct {
	// FrameDelta is the real duration of the current frame
	FrameDelta time.Duration
	// Tmod is FrameDelta measured in target frames
	Tmod float64
	// Alpha is the fixed tick interpolation ratio
	Alpha float64
	// Tick is the number of fixed ticks run so far
	Tick uint64
	// FrameNumber counts rendered frames
	FrameNumber int64
}
