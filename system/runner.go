package system

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/gridmotion/camera"
	"github.com/lixenwraith/gridmotion/component"
	"github.com/lixenwraith/gridmotion/engine"
	"github.com/lixenwraith/gridmotion/telemetry"
)

// Register adds the fixed tick pipeline and, when cam is set, the frame systems
func Register(world *engine.World, cam *camera.FollowCamera, metrics *telemetry.Metrics, log logrus.FieldLogger) {
	if log == nil {
		log = discardLogger()
	}
	tick := []engine.System{
		NewCollisionCleanupSystem(world),
		NewPlatformerGravitySystem(world),
		NewGridMoveSystem(world, metrics),
		NewPlatformerGroundSystem(world),
		NewEntityCollisionSystem(world, metrics),
	}
	for _, s := range tick {
		world.AddSystem(s)
		log.WithField("priority", s.Priority()).Debugf("registered tick system %s", s.Name())
	}

	frame := []engine.System{NewRenderBoundsSystem(world)}
	if cam != nil {
		frame = append(frame, NewCameraSystem(world, cam))
	}
	for _, s := range frame {
		world.AddFrameSystem(s)
		log.WithField("priority", s.Priority()).Debugf("registered frame system %s", s.Name())
	}
}

// Runner drives a world from frame durations: whole fixed ticks first, then one frame pass
type Runner struct {
	world *engine.World
	step  *engine.FixedStep
	log   logrus.FieldLogger

	// OnFrame runs after the frame systems, typically the renderer
	OnFrame func()
}

// NewRunner panics on nil world or step, a nil logger discards output
func NewRunner(world *engine.World, step *engine.FixedStep, log logrus.FieldLogger) *Runner {
	if world == nil || step == nil {
		panic("system: runner requires a world and a fixed step")
	}
	if log == nil {
		log = discardLogger()
	}
	return &Runner{
		world: world,
		step:  step,
		log:   log.WithField("component", "runner"),
	}
}

// Frame advances the simulation by dt and returns the number of fixed ticks run
func (r *Runner) Frame(dt time.Duration) int {
	w := r.world
	n := r.step.Advance(dt)
	if d := r.step.Dropped(); d > 0 {
		r.log.WithField("dropped", d).Warn("frame too long, fixed ticks skipped")
	}

	w.Time.FrameDelta = dt
	w.Time.Tmod = r.step.Tmod()
	for i := 0; i < n; i++ {
		w.Tick()
	}

	alpha := r.step.Alpha()
	w.Time.Alpha = alpha
	w.Bodies.Each(func(_ engine.Entity, b *component.Body) {
		b.InterpolationAlpha = alpha
	})

	w.Frame()
	if r.OnFrame != nil {
		r.OnFrame()
	}
	return n
}

// Run calls Frame every interval until ctx is done, measuring real elapsed time
func (r *Runner) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	r.log.WithField("interval", interval).Info("runner started")
	for {
		select {
		case <-ctx.Done():
			r.log.Info("runner stopped")
			return ctx.Err()
		case now := <-ticker.C:
			r.Frame(now.Sub(last))
			last = now
		}
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
