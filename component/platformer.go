package component

// PlatformerComponent tracks ground contact for side-view entities
type PlatformerComponent struct {
	OnGround bool
}

// EntityCollisionComponent opts an entity into pairwise entity overlap detection
type EntityCollisionComponent struct {
	// UseSAT enables the rotated rectangle narrow phase
	UseSAT bool
}

// RenderBoundsComponent is the axis-aligned pixel rectangle handed to the renderer for culling
type RenderBoundsComponent struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether a pixel point lies inside the bounds
func (r RenderBoundsComponent) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects reports whether two bounds overlap
func (r RenderBoundsComponent) Intersects(o RenderBoundsComponent) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width && r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}
