package engine

import (
	"fmt"
	"time"
)

// FixedStep accumulates frame time into whole fixed ticks
// Alpha is the leftover fraction of a tick, used for render interpolation
// Tmod scales per-frame coefficients to the target frame rate
type FixedStep struct {
	interval  time.Duration
	targetFPS float64
	maxTicks  int

	accum   time.Duration
	dropped time.Duration
	alpha   float64
	tmod    float64
	ticks   uint64
}

// NewFixedStep creates an accumulator for ticksPerSecond fixed updates
// Panics on a non-positive rate
func NewFixedStep(ticksPerSecond int, targetFPS float64, maxTicksPerFrame int) *FixedStep {
	if ticksPerSecond <= 0 {
		panic(fmt.Sprintf("engine: fixed tick rate must be positive, got %d", ticksPerSecond))
	}
	if targetFPS <= 0 {
		panic(fmt.Sprintf("engine: target fps must be positive, got %v", targetFPS))
	}
	if maxTicksPerFrame <= 0 {
		maxTicksPerFrame = 1
	}
	return &FixedStep{
		interval:  time.Second / time.Duration(ticksPerSecond),
		targetFPS: targetFPS,
		maxTicks:  maxTicksPerFrame,
		tmod:      1,
	}
}

// Advance adds a frame duration and returns the number of fixed ticks to run
// Time beyond maxTicks is dropped rather than carried into the next frame
func (f *FixedStep) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	f.tmod = dt.Seconds() * f.targetFPS
	f.accum += dt

	n := 0
	for f.accum >= f.interval && n < f.maxTicks {
		f.accum -= f.interval
		n++
	}
	f.dropped = 0
	if f.accum >= f.interval {
		f.dropped = f.accum - f.accum%f.interval
		f.accum %= f.interval
	}
	f.ticks += uint64(n)
	f.alpha = float64(f.accum) / float64(f.interval)
	return n
}

// Alpha is the fraction of a tick accumulated but not yet run, in [0, 1)
func (f *FixedStep) Alpha() float64 { return f.alpha }

// Tmod is the last frame duration measured in target frames
func (f *FixedStep) Tmod() float64 { return f.tmod }

func (f *FixedStep) Interval() time.Duration { return f.interval }
func (f *FixedStep) Ticks() uint64           { return f.ticks }

// Dropped is the whole-tick time discarded by the last Advance
func (f *FixedStep) Dropped() time.Duration { return f.dropped }

// Reset drops accumulated time
func (f *FixedStep) Reset() {
	f.accum = 0
	f.dropped = 0
	f.alpha = 0
	f.tmod = 1
}
