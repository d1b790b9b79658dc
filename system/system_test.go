package system

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gridmotion/camera"
	"github.com/lixenwraith/gridmotion/collision"
	"github.com/lixenwraith/gridmotion/component"
	"github.com/lixenwraith/gridmotion/engine"
	"github.com/lixenwraith/gridmotion/level"
	"github.com/lixenwraith/gridmotion/physics"
	"github.com/lixenwraith/gridmotion/telemetry"
)

// floorWorld has a solid row at cy 10 under an open 32x16 map
func floorWorld(t *testing.T) (*engine.World, *collision.LevelChecker) {
	t.Helper()
	lvl := level.New(32, 16, 16)
	lvl.Fill(0, 10, 31, 10, true)
	return engine.NewWorld(), collision.NewLevelChecker(lvl)
}

func spawnFaller(w *engine.World, c *collision.LevelChecker) engine.Entity {
	e := w.CreateEntity()
	b := component.NewBody(16, 8, 8)
	b.ToGridPosition(5, 6, 0.5, 0.2)
	w.Bodies.Set(e, b)
	w.Kinetics.Set(e, component.NewKinetic())
	w.Gravities.Set(e, component.NewGravity(0, 0.05, 0))
	w.Platformers.Set(e, component.PlatformerComponent{})
	w.Colliders.Set(e, engine.Collider{
		Mover:  physics.NewGridMover(c, collision.NewObliqueResolver(c)),
		Ground: collision.NewLevelGroundChecker(c),
	})
	return e
}

// counterSum adds every series of a counter family
func counterSum(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	sum := 0.0
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			sum += m.GetCounter().GetValue()
		}
	}
	return sum
}

func TestPipelineLandsAndDisablesGravity(t *testing.T) {
	w, c := floorWorld(t)
	reg := prometheus.NewRegistry()
	Register(w, nil, telemetry.NewMetrics(reg), nil)
	e := spawnFaller(w, c)

	p, _ := w.Platformers.Get(e)
	sawLanding := false
	ticks := 0
	for ; ticks < 200 && !p.OnGround; ticks++ {
		w.Tick()
		if dir, ok := w.Events.Get(e, component.AxisY); ok {
			assert.Equal(t, 1, dir)
			sawLanding = true
		}
	}
	require.True(t, p.OnGround)
	assert.True(t, sawLanding)

	b, _ := w.Bodies.Get(e)
	assert.Equal(t, 9, b.CY)
	assert.Equal(t, c.BottomCollisionRatio, b.YR)
	assert.InDelta(t, 10*b.CellSize, b.Bottom(), 1e-9)

	// Next tick: gravity switched off, nothing moves, arena cleared
	w.Tick()
	g, _ := w.Gravities.Get(e)
	assert.False(t, g.EnableY)
	assert.Zero(t, w.Events.Len())
	assert.True(t, p.OnGround)
	assert.Equal(t, 9, b.CY)

	assert.Equal(t, float64(ticks+1), counterSum(t, reg, "gridmotion_ticks_total"))
	assert.GreaterOrEqual(t, counterSum(t, reg, "gridmotion_tile_collisions_total"), 1.0)
}

func TestPlatformerGravityToggle(t *testing.T) {
	w := engine.NewWorld()
	s := NewPlatformerGravitySystem(w)
	e := w.CreateEntity()
	w.Platformers.Set(e, component.PlatformerComponent{OnGround: true})
	g := w.Gravities.Set(e, component.NewGravity(0, 0.05, 0))

	s.Update()
	assert.False(t, g.EnableY)
	assert.True(t, g.EnableX)

	p, _ := w.Platformers.Get(e)
	p.OnGround = false
	s.Update()
	assert.True(t, g.EnableY)
}

func TestGroundSystemSkipsWithoutChecker(t *testing.T) {
	w, c := floorWorld(t)
	e := spawnFaller(w, c)
	col, _ := w.Colliders.Get(e)
	col.Ground = nil
	p, _ := w.Platformers.Get(e)
	p.OnGround = true

	NewPlatformerGroundSystem(w).Update()
	assert.True(t, p.OnGround)
}

func TestGridMoveWithoutCollider(t *testing.T) {
	w := engine.NewWorld()
	e := w.CreateEntity()
	b := w.Bodies.Set(e, component.NewBody(16, 8, 8))
	k := w.Kinetics.Set(e, component.NewKinetic())
	k.VelX = 2.5

	NewGridMoveSystem(w, nil).Update()
	assert.Equal(t, 3, b.CX)
	assert.InDelta(t, 0.0, b.XR, 1e-9)
	assert.Zero(t, w.Events.Len())
	assert.InDelta(t, 2.5*0.82, k.VelX, 1e-12)
}

func TestEntityCollisionPairs(t *testing.T) {
	w := engine.NewWorld()
	place := func(cx int, sat bool) engine.Entity {
		e := w.CreateEntity()
		b := component.NewBody(16, 8, 8)
		b.ToGridPosition(cx, 5, 0.5, 0.5)
		w.Bodies.Set(e, b)
		w.EntityCollisions.Set(e, component.EntityCollisionComponent{UseSAT: sat})
		return e
	}
	a := place(5, false)
	b := place(5, true)
	far := place(20, false)
	ghost := w.CreateEntity()
	w.Bodies.Set(ghost, component.NewBody(16, 8, 8))

	reg := prometheus.NewRegistry()
	NewEntityCollisionSystem(w, telemetry.NewMetrics(reg)).Update()

	assert.True(t, w.Overlaps.Has(a, b, collision.OverlapOuter))
	assert.True(t, w.Overlaps.Has(b, a, collision.OverlapInner))
	assert.False(t, w.Overlaps.Has(a, b, collision.OverlapRect))
	assert.Zero(t, w.Overlaps.With(far))
	assert.Zero(t, w.Overlaps.With(ghost))
	assert.Equal(t, 1, w.Overlaps.Count(collision.OverlapOuter))
	assert.Equal(t, 2.0, counterSum(t, reg, "gridmotion_entity_overlaps_total"))

	NewCollisionCleanupSystem(w).Update()
	assert.Zero(t, w.Overlaps.Count(collision.OverlapOuter))
}

func TestRenderBoundsSystem(t *testing.T) {
	w := engine.NewWorld()
	e := w.CreateEntity()
	b := component.NewBody(16, 8, 12)
	b.ToGridPosition(2, 3, 0.5, 0.25)
	body := w.Bodies.Set(e, b)
	rb := w.RenderBounds.Set(e, component.RenderBoundsComponent{})
	plain := w.CreateEntity()
	w.Bodies.Set(plain, component.NewBody(16, 8, 8))

	w.Time.FrameDelta = 16 * time.Millisecond
	NewRenderBoundsSystem(w).Update()
	assert.Equal(t, collision.BoundsOf(body), *rb)
	assert.Equal(t, 8.0, rb.Width)
	assert.Equal(t, 1.0, body.CurrentScaleX)
	assert.False(t, w.RenderBounds.Has(plain))
}

func TestRegisterOrder(t *testing.T) {
	w := engine.NewWorld()
	Register(w, camera.New(320, 200, nil), nil, nil)

	var names []string
	for _, s := range w.Systems() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"collision_cleanup", "platformer_gravity", "grid_move", "platformer_ground", "entity_collision"}, names)

	names = names[:0]
	for _, s := range w.FrameSystems() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"render_bounds", "camera"}, names)

	w2 := engine.NewWorld()
	Register(w2, nil, nil, nil)
	assert.Len(t, w2.FrameSystems(), 1)
}

func TestRunnerFrame(t *testing.T) {
	w := engine.NewWorld()
	cam := camera.New(320, 200, nil)
	cam.ClampToBounds = false
	Register(w, cam, nil, nil)

	e := w.CreateEntity()
	b := component.NewBody(16, 8, 8)
	b.ToGridPosition(5, 5, 0.5, 0.5)
	body := w.Bodies.Set(e, b)
	cam.Follow(body, true)
	cam.Attach()

	frames := 0
	r := NewRunner(w, engine.NewFixedStep(30, 60, 8), nil)
	r.OnFrame = func() { frames++ }

	assert.Equal(t, 3, r.Frame(100*time.Millisecond))
	assert.Equal(t, uint64(3), w.Time.Tick)
	assert.Equal(t, int64(1), w.Time.FrameNumber)
	assert.Equal(t, 1, frames)
	assert.InDelta(t, 6.0, w.Time.Tmod, 1e-9)
	assert.Equal(t, w.Time.Alpha, body.InterpolationAlpha)
	assert.Less(t, body.InterpolationAlpha, 1.0)

	x, y := cam.Position()
	assert.InDelta(t, body.CenterX(), x, 1)
	assert.InDelta(t, body.CenterY(), y, 1)

	assert.Panics(t, func() { NewRunner(nil, engine.NewFixedStep(30, 60, 8), nil) })
}

func TestRunnerWarnsOnDroppedTicks(t *testing.T) {
	log, hook := test.NewNullLogger()
	r := NewRunner(engine.NewWorld(), engine.NewFixedStep(30, 60, 2), log)

	r.Frame(10 * time.Millisecond)
	assert.Empty(t, hook.Entries)

	assert.Equal(t, 2, r.Frame(time.Second))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "runner", hook.LastEntry().Data["component"])
}

func TestRunnerStopsOnCancel(t *testing.T) {
	r := NewRunner(engine.NewWorld(), engine.NewFixedStep(30, 60, 8), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, r.Run(ctx, time.Hour), context.Canceled)
}
