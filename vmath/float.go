package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates from a to b, t in [0, 1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Sign returns -1, 0 or 1
func Sign(v float64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// SnapZero returns 0 when |v| <= eps
func SnapZero(v, eps float64) float64 {
	if math.Abs(v) <= eps {
		return 0
	}
	return v
}

// DistSq returns squared euclidean distance, avoids sqrt on hot paths
func DistSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Dist returns euclidean distance
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(DistSq(x1, y1, x2, y2))
}

// PowTmod scales a per-frame decay factor by the time modifier
// A factor of 0.9 at tmod 1 becomes 0.81 at tmod 2
func PowTmod(factor, tmod float64) float64 {
	if tmod == 1 {
		return factor
	}
	return math.Pow(factor, tmod)
}

// RotateAround rotates (x, y) around (cx, cy) by angle radians
func RotateAround(x, y, cx, cy, angle float64) mgl64.Vec2 {
	if angle == 0 {
		return mgl64.Vec2{x, y}
	}
	p := mgl64.Rotate2D(angle).Mul2x1(mgl64.Vec2{x - cx, y - cy})
	return p.Add(mgl64.Vec2{cx, cy})
}
