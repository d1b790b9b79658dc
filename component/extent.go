package component

// Extent is the rectangular footprint of an entity in pixels
// Anchor is the fraction of the extent that lies before the attach point
type Extent struct {
	Width, Height    float64
	AnchorX, AnchorY float64

	// Rotation in radians, only the SAT overlap path honors it
	Rotation float64

	ScaleX, ScaleY float64
}

// NewExtent returns an unrotated extent anchored at its bottom center
func NewExtent(width, height float64) Extent {
	return Extent{
		Width:   width,
		Height:  height,
		AnchorX: 0.5,
		AnchorY: 1,
		ScaleX:  1,
		ScaleY:  1,
	}
}

// Rotated reports whether the SAT path has anything to do
func (e *Extent) Rotated() bool {
	return e.Rotation != 0
}
