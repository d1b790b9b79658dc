package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/gridmotion/component"
	"github.com/lixenwraith/gridmotion/vmath"
)

// Overlap is the classification bitmask of an entity pair
type Overlap uint8

const (
	// OverlapOuter is the broad phase: outer circles touch
	OverlapOuter Overlap = 1 << iota
	// OverlapInner means inner circles touch, definitely overlapping
	OverlapInner
	// OverlapRect means rectangles overlap (AABB, or SAT when rotated) while inner circles do not
	OverlapRect
)

func (o Overlap) Has(flag Overlap) bool { return o&flag != 0 }

// Detector runs pairwise entity overlap tests
// Scratch buffers make it non-reentrant, use one detector per goroutine
type Detector struct {
	polyA, polyB [4]mgl64.Vec2
	axes         [8]mgl64.Vec2
}

// NewDetector creates a detector
func NewDetector() *Detector {
	return &Detector{}
}

// Overlaps tests rectangle overlap
// With useSAT and at least one rotated rectangle the separating axis test runs after an encompassing circle prefilter
func (d *Detector) Overlaps(a, b *component.Body, useSAT bool) bool {
	if useSAT && (a.Rotated() || b.Rotated()) {
		if !d.OverlapsEncompassingCircle(a, b) {
			return false
		}
		d.polyA = a.Vertices()
		d.polyB = b.Vertices()
		return d.sat()
	}

	// Strict: touching edges do not overlap
	if a.Left() >= b.Right() || b.Left() >= a.Right() {
		return false
	}
	return !(a.Top() >= b.Bottom() || b.Top() >= a.Bottom())
}

func (d *Detector) OverlapsInnerCircle(a, b *component.Body) bool {
	return d.OverlapsRadius(a.InnerRadius(), a, b.InnerRadius(), b)
}

func (d *Detector) OverlapsOuterCircle(a, b *component.Body) bool {
	return d.OverlapsRadius(a.OuterRadius(), a, b.OuterRadius(), b)
}

func (d *Detector) OverlapsEncompassingCircle(a, b *component.Body) bool {
	return d.OverlapsRadius(a.EncompassingRadius(), a, b.EncompassingRadius(), b)
}

// OverlapsRadius compares squared center distance against the squared radius sum
func (d *Detector) OverlapsRadius(ra float64, a *component.Body, rb float64, b *component.Body) bool {
	r := ra + rb
	return vmath.DistSq(a.CenterX(), a.CenterY(), b.CenterX(), b.CenterY()) <= r*r
}

// Classify runs the entity collision cascade: outer circle, then inner circle, else rectangle
func (d *Detector) Classify(a, b *component.Body, useSAT bool) Overlap {
	if !d.OverlapsOuterCircle(a, b) {
		return 0
	}
	o := OverlapOuter
	if d.OverlapsInnerCircle(a, b) {
		o |= OverlapInner
	} else if d.Overlaps(a, b, useSAT) {
		o |= OverlapRect
	}
	return o
}

// sat tests polyA against polyB over the edge normals of both
func (d *Detector) sat() bool {
	for i := 0; i < 4; i++ {
		ea := d.polyA[(i+1)%4].Sub(d.polyA[i])
		eb := d.polyB[(i+1)%4].Sub(d.polyB[i])
		d.axes[i] = mgl64.Vec2{ea.Y(), -ea.X()}
		d.axes[i+4] = mgl64.Vec2{eb.Y(), -eb.X()}
	}

	for _, axis := range d.axes {
		minA, maxA := project(&d.polyA, axis)
		minB, maxB := project(&d.polyB, axis)
		if !(minA <= maxB && minB <= maxA) {
			return false
		}
	}
	return true
}

func project(poly *[4]mgl64.Vec2, axis mgl64.Vec2) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range poly {
		p := v.Dot(axis)
		lo = math.Min(lo, p)
		hi = math.Max(hi, p)
	}
	return lo, hi
}
