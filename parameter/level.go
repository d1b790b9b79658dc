package parameter

// Level defaults
const (
	// DefaultGridSize is the pixel size of one tile
	DefaultGridSize = 16

	// SolidTile marks a solid cell in text level rows
	SolidTile = '#'

	// Maze generation
	MazeCellScale = 3   // tiles per maze cell edge, wide enough for an entity to turn
	MazeBraiding  = 0.3 // some loops, not too many dead ends
)
