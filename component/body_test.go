package component

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	p := GridPosition{CX: 3, CY: 3, XR: 2.25, YR: -1.5}
	p.Normalize()
	assert.Equal(t, 5, p.CX)
	assert.Equal(t, 0.25, p.XR)
	assert.Equal(t, 1, p.CY)
	assert.Equal(t, 0.5, p.YR)

	// Exactly 1 carries
	p = GridPosition{CX: 0, XR: 1}
	p.NormalizeX()
	assert.Equal(t, 1, p.CX)
	assert.Equal(t, 0.0, p.XR)

	p = GridPosition{CX: 0, XR: -1e-18}
	p.NormalizeX()
	assert.True(t, p.XR >= 0 && p.XR < 1)
	assert.InDelta(t, 0, p.GridX(), 1e-15)
}

func TestBodyGeometry(t *testing.T) {
	b := NewBody(16, 8, 12)
	b.ToGridPosition(2, 3, 0.5, 0.25)

	assert.Equal(t, 40.0, b.AttachX())
	assert.Equal(t, 52.0, b.AttachY())
	assert.Equal(t, 36.0, b.Left())
	assert.Equal(t, 44.0, b.Right())
	assert.Equal(t, 40.0, b.Top())
	assert.Equal(t, 52.0, b.Bottom())
	assert.Equal(t, 40.0, b.CenterX())
	assert.Equal(t, 46.0, b.CenterY())

	assert.Equal(t, 4.0, b.InnerRadius())
	assert.Equal(t, 6.0, b.OuterRadius())
	assert.Equal(t, (7.0/8.0*12+4)*0.5, b.EncompassingRadius())

	// Lift raises the attach point, screen y grows downward
	b.ZR = 0.5
	assert.Equal(t, 44.0, b.AttachY())
}

func TestBodyVertices(t *testing.T) {
	b := NewBody(16, 10, 10)
	b.SetPixelPos(100, 100)

	v := b.Vertices()
	assert.InDelta(t, 95, v[0].X(), 1e-9)
	assert.InDelta(t, 90, v[0].Y(), 1e-9)
	assert.InDelta(t, 105, v[2].X(), 1e-9)
	assert.InDelta(t, 100, v[2].Y(), 1e-9)

	b.Rotation = math.Pi / 2
	v = b.Vertices()
	// Quarter turn about the center (100, 95) maps the top-left corner to the top-right
	assert.InDelta(t, 105, v[0].X(), 1e-9)
	assert.InDelta(t, 90, v[0].Y(), 1e-9)
}

func TestSetPixelPos(t *testing.T) {
	b := NewBody(16, 8, 8)
	b.SetPixelPos(-4, 33)
	assert.Equal(t, -1, b.CX)
	assert.Equal(t, 0.75, b.XR)
	assert.Equal(t, 2, b.CY)
	assert.Equal(t, 1.0/16, b.YR)
	assert.Equal(t, b.AttachX(), b.LastAttachX)
	assert.Equal(t, b.AttachX(), b.PixelX())
}

func TestSpatialHelpers(t *testing.T) {
	a := NewBody(16, 8, 8)
	a.ToGridPosition(0, 0, 0.5, 0.5)
	b := NewBody(16, 8, 8)
	b.ToGridPosition(3, 4, 0.5, 0.5)

	assert.InDelta(t, 5, a.DistGridTo(3, 4, 0.5, 0.5), 1e-12)
	assert.InDelta(t, 80, a.DistPxTo(&b), 1e-9)
	assert.Equal(t, 1, a.DirTo(&b))
	assert.Equal(t, -1, b.DirTo(&a))

	open := func(x, y int) bool { return true }
	assert.True(t, a.CastRayTo(3, 4, open))
	blocked := func(x, y int) bool { return !(x == 1 && y == 1) }
	assert.False(t, a.CastRayTo(3, 4, blocked))
}

func TestSquashRestore(t *testing.T) {
	b := NewBody(16, 8, 8)
	b.SetSquashX(0.5)
	b.UpdateScaling(0)
	assert.Equal(t, 0.5, b.CurrentScaleX)
	assert.Equal(t, 1.5, b.CurrentScaleY)

	for i := 0; i < 120; i++ {
		b.UpdateScaling(time.Second / 60)
	}
	assert.InDelta(t, 1, b.CurrentScaleX, 1e-3)
	assert.InDelta(t, 1, b.CurrentScaleY, 1e-3)

	b.Dir = -1
	b.UpdateScaling(0)
	assert.InDelta(t, -1, b.CurrentScaleX, 1e-3)
}

func TestNewBodyPanicsOnCellSize(t *testing.T) {
	assert.Panics(t, func() { NewBody(0, 8, 8) })
	assert.Panics(t, func() { NewBody(-16, 8, 8) })
}
