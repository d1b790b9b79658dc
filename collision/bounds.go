package collision

import (
	"math"

	"github.com/lixenwraith/gridmotion/component"
	"github.com/lixenwraith/gridmotion/vmath"
)

// BoundsOf returns the axis-aligned pixel rectangle enclosing the scaled, rotated extent at its interpolated position
// Scale and rotation pivot on the attach point
func BoundsOf(b *component.Body) component.RenderBoundsComponent {
	x, y := b.PixelX(), b.PixelY()
	w := b.Width * math.Abs(b.ScaleX)
	h := b.Height * math.Abs(b.ScaleY)
	l := x - b.AnchorX*w
	t := y - b.AnchorY*h

	if b.Rotation == 0 {
		return component.RenderBoundsComponent{X: l, Y: t, Width: w, Height: h}
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range [4][2]float64{{l, t}, {l, t + h}, {l + w, t + h}, {l + w, t}} {
		v := vmath.RotateAround(c[0], c[1], x, y, b.Rotation)
		minX = math.Min(minX, v.X())
		minY = math.Min(minY, v.Y())
		maxX = math.Max(maxX, v.X())
		maxY = math.Max(maxY, v.Y())
	}
	return component.RenderBoundsComponent{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
