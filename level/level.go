package level

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/gridmotion/parameter"
)

// Point is a cell address
type Point struct {
	X, Y int
}

// Level is a row-major solid/open tile map
// Cells outside the map are solid so nothing leaves it
type Level struct {
	width, height int
	gridSize      int
	solid         []bool

	// Spawn is the suggested entry cell
	Spawn Point
}

// New creates an open level, panics on non-positive dimensions
func New(width, height, gridSize int) *Level {
	if width <= 0 || height <= 0 || gridSize <= 0 {
		panic(fmt.Sprintf("level: invalid dimensions %dx%d grid %d", width, height, gridSize))
	}
	return &Level{
		width:    width,
		height:   height,
		gridSize: gridSize,
		solid:    make([]bool, width*height),
	}
}

func (l *Level) Width() int    { return l.width }
func (l *Level) Height() int   { return l.height }
func (l *Level) GridSize() int { return l.gridSize }

// PixelWidth and PixelHeight are the level size in pixels
func (l *Level) PixelWidth() int  { return l.width * l.gridSize }
func (l *Level) PixelHeight() int { return l.height * l.gridSize }

func (l *Level) IsValid(cx, cy int) bool {
	return cx >= 0 && cx < l.width && cy >= 0 && cy < l.height
}

// CoordID returns the row-major index of a valid cell
func (l *Level) CoordID(cx, cy int) int {
	return cx + cy*l.width
}

func (l *Level) HasCollision(cx, cy int) bool {
	if !l.IsValid(cx, cy) {
		return true
	}
	return l.solid[l.CoordID(cx, cy)]
}

// SetCollision ignores cells outside the map
func (l *Level) SetCollision(cx, cy int, solid bool) {
	if !l.IsValid(cx, cy) {
		return
	}
	l.solid[l.CoordID(cx, cy)] = solid
}

// Fill sets every cell of the inclusive rectangle
func (l *Level) Fill(x1, y1, x2, y2 int, solid bool) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			l.SetCollision(x, y, solid)
		}
	}
}

// Rows renders the map using the solid tile rune, open cells as '.'
func (l *Level) Rows() []string {
	rows := make([]string, l.height)
	var sb strings.Builder
	for y := 0; y < l.height; y++ {
		sb.Reset()
		for x := 0; x < l.width; x++ {
			if l.solid[l.CoordID(x, y)] {
				sb.WriteRune(parameter.SolidTile)
			} else {
				sb.WriteByte('.')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}
