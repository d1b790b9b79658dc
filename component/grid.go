package component

import (
	"github.com/lixenwraith/gridmotion/parameter"
)

// GridPosition addresses an entity by cell plus fractional offset within the cell
// After Normalize, 0 <= XR < 1 and 0 <= YR < 1
type GridPosition struct {
	CX, CY int
	XR, YR float64
	// ZR is the lift above the grid plane, independent of CY
	ZR float64

	// Pixel attach point at the start of the previous fixed tick
	LastAttachX, LastAttachY float64
}

// NewGridPosition places the entity at the center of cell (cx, cy)
func NewGridPosition(cx, cy int) GridPosition {
	return GridPosition{
		CX: cx,
		CY: cy,
		XR: parameter.DefaultRatio,
		YR: parameter.DefaultRatio,
	}
}

// NormalizeX carries ratio overflow into the cell coordinate
func (p *GridPosition) NormalizeX() {
	for p.XR >= 1 {
		p.XR--
		p.CX++
	}
	for p.XR < 0 {
		p.XR++
		p.CX--
	}
	// Borrowing from a tiny negative ratio can round up to exactly 1
	if p.XR >= 1 {
		p.XR = 0
		p.CX++
	}
}

// NormalizeY carries ratio overflow into the cell coordinate
func (p *GridPosition) NormalizeY() {
	for p.YR >= 1 {
		p.YR--
		p.CY++
	}
	for p.YR < 0 {
		p.YR++
		p.CY--
	}
	// Borrowing from a tiny negative ratio can round up to exactly 1
	if p.YR >= 1 {
		p.YR = 0
		p.CY++
	}
}

// Normalize carries both axes
func (p *GridPosition) Normalize() {
	p.NormalizeX()
	p.NormalizeY()
}

// GridX returns the continuous position in cell units
func (p *GridPosition) GridX() float64 {
	return float64(p.CX) + p.XR
}

// GridY returns the continuous position in cell units
func (p *GridPosition) GridY() float64 {
	return float64(p.CY) + p.YR
}
