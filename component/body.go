package component

import (
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/gridmotion/parameter"
	"github.com/lixenwraith/gridmotion/vmath"
)

// Body combines the grid position and the rectangular extent of an entity on a grid of CellSize pixels
// All derived geometry uses screen convention: y grows downward
type Body struct {
	GridPosition
	Extent

	CellSize float64

	// MaxGridMovementPercent bounds the distance of a single movement sub-step
	MaxGridMovementPercent float64

	// InterpolationAlpha is the fixed progression ratio set before each frame
	InterpolationAlpha       float64
	InterpolatePixelPosition bool

	// Dir is the facing direction, -1 or 1
	Dir int

	// Squash and restore for render scaling
	squashX, squashY float64
	RestoreSpeed     float64
	CurrentScaleX    float64
	CurrentScaleY    float64
}

// NewBody creates a body centered in cell (0, 0)
// Panics on non-positive cell size: every derived position divides or multiplies by it
func NewBody(cellSize, width, height float64) Body {
	if cellSize <= 0 {
		panic(fmt.Sprintf("component: cell size must be positive, got %v", cellSize))
	}
	return Body{
		GridPosition:             NewGridPosition(0, 0),
		Extent:                   NewExtent(width, height),
		CellSize:                 cellSize,
		MaxGridMovementPercent:   parameter.MaxGridMovementPercent,
		InterpolationAlpha:       1,
		InterpolatePixelPosition: true,
		Dir:                      1,
		squashX:                  1,
		squashY:                  1,
		RestoreSpeed:             parameter.SquashRestoreSpeed,
		CurrentScaleX:            1,
		CurrentScaleY:            1,
	}
}

// --- Derived geometry ---

func (b *Body) AttachX() float64 { return (float64(b.CX) + b.XR) * b.CellSize }
func (b *Body) AttachY() float64 { return (float64(b.CY) + b.YR - b.ZR) * b.CellSize }

func (b *Body) CenterX() float64 { return b.AttachX() + (0.5-b.AnchorX)*b.Width }
func (b *Body) CenterY() float64 { return b.AttachY() + (0.5-b.AnchorY)*b.Height }

func (b *Body) Left() float64   { return b.AttachX() - b.AnchorX*b.Width }
func (b *Body) Right() float64  { return b.AttachX() + (1-b.AnchorX)*b.Width }
func (b *Body) Top() float64    { return b.AttachY() - b.AnchorY*b.Height }
func (b *Body) Bottom() float64 { return b.AttachY() + (1-b.AnchorY)*b.Height }

// InnerRadius is the radius of the largest circle inside the rectangle
func (b *Body) InnerRadius() float64 { return math.Min(b.Width, b.Height) * 0.5 }

// OuterRadius is half the longest side
func (b *Body) OuterRadius() float64 { return math.Max(b.Width, b.Height) * 0.5 }

// EncompassingRadius approximates the circumscribed circle without a square root
func (b *Body) EncompassingRadius() float64 {
	return (7.0/8.0*math.Max(b.Width, b.Height) + math.Min(b.Width, b.Height)*0.5) * 0.5
}

// Vertices returns the rectangle corners rotated about the center
// Order: top-left, bottom-left, bottom-right, top-right
func (b *Body) Vertices() [4]mgl64.Vec2 {
	cx, cy := b.CenterX(), b.CenterY()
	l, r, t, btm := b.Left(), b.Right(), b.Top(), b.Bottom()
	return [4]mgl64.Vec2{
		vmath.RotateAround(l, t, cx, cy, b.Rotation),
		vmath.RotateAround(l, btm, cx, cy, b.Rotation),
		vmath.RotateAround(r, btm, cx, cy, b.Rotation),
		vmath.RotateAround(r, t, cx, cy, b.Rotation),
	}
}

// --- Render interpolation ---

// PixelX returns the attach point interpolated between the last and current fixed tick
func (b *Body) PixelX() float64 {
	if b.InterpolatePixelPosition {
		return vmath.Lerp(b.LastAttachX, b.AttachX(), b.InterpolationAlpha)
	}
	return b.AttachX()
}

// PixelY returns the attach point interpolated between the last and current fixed tick
func (b *Body) PixelY() float64 {
	if b.InterpolatePixelPosition {
		return vmath.Lerp(b.LastAttachY, b.AttachY(), b.InterpolationAlpha)
	}
	return b.AttachY()
}

// RecordLastAttach snapshots the attach point, called at the start of each fixed tick
func (b *Body) RecordLastAttach() {
	b.LastAttachX = b.AttachX()
	b.LastAttachY = b.AttachY()
}

// --- Teleport ---

// SetPixelPos teleports the attach point to pixel coordinates
func (b *Body) SetPixelPos(x, y float64) {
	b.CX = int(math.Floor(x / b.CellSize))
	b.XR = (x - float64(b.CX)*b.CellSize) / b.CellSize
	b.CY = int(math.Floor(y / b.CellSize))
	b.YR = (y - float64(b.CY)*b.CellSize) / b.CellSize
	b.RecordLastAttach()
}

// ToGridPosition teleports to a cell and ratio
func (b *Body) ToGridPosition(cx, cy int, xr, yr float64) {
	b.CX, b.CY = cx, cy
	b.XR, b.YR = xr, yr
	b.Normalize()
	b.RecordLastAttach()
}

// --- Spatial queries ---

// DistGridTo returns the distance in cells to a cell and ratio
func (b *Body) DistGridTo(tcx, tcy int, txr, tyr float64) float64 {
	return vmath.Dist(b.GridX(), b.GridY(), float64(tcx)+txr, float64(tcy)+tyr)
}

// DistPxTo returns the pixel distance between interpolated attach points
func (b *Body) DistPxTo(o *Body) float64 {
	return vmath.Dist(b.PixelX(), b.PixelY(), o.PixelX(), o.PixelY())
}

// AngleTo returns the angle in radians from this attach point to another body's center
func (b *Body) AngleTo(o *Body) float64 {
	return math.Atan2(o.CenterY()-b.PixelY(), o.CenterX()-b.PixelX())
}

// DirTo returns 1 if the target center lies to the right, -1 otherwise
func (b *Body) DirTo(o *Body) int {
	if o.CenterX() > b.CenterX() {
		return 1
	}
	return -1
}

// CastRayTo reports whether every cell between this body and the target cell passes
func (b *Body) CastRayTo(tcx, tcy int, canPass func(x, y int) bool) bool {
	return vmath.CastRay(b.CX, b.CY, tcx, tcy, canPass)
}

// --- Render scaling ---

// SetSquashX squashes horizontally, the vertical factor mirrors it around 1
func (b *Body) SetSquashX(v float64) {
	b.squashX = v
	b.squashY = 2 - v
}

// SetSquashY squashes vertically, the horizontal factor mirrors it around 1
func (b *Body) SetSquashY(v float64) {
	b.squashX = 2 - v
	b.squashY = v
}

// UpdateScaling refreshes the current render scale and eases squash back toward 1
func (b *Body) UpdateScaling(dt time.Duration) {
	b.CurrentScaleX = b.ScaleX * float64(b.Dir) * b.squashX
	b.CurrentScaleY = b.ScaleY * b.squashY
	k := math.Min(1, b.RestoreSpeed*dt.Seconds())
	b.squashX += (1 - b.squashX) * k
	b.squashY += (1 - b.squashY) * k
}
