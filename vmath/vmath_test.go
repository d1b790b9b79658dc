package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampAndSnap(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, Clamp(2, 0, 1))
	assert.Equal(t, 0.25, Clamp(0.25, 0, 1))

	assert.Equal(t, 0.0, SnapZero(0.0004, 0.0005))
	assert.Equal(t, 0.0, SnapZero(-0.0005, 0.0005))
	assert.Equal(t, 0.001, SnapZero(0.001, 0.0005))
}

func TestPowTmod(t *testing.T) {
	assert.Equal(t, 0.9, PowTmod(0.9, 1))
	assert.InDelta(t, 0.81, PowTmod(0.9, 2), 1e-12)
	assert.InDelta(t, math.Sqrt(0.9), PowTmod(0.9, 0.5), 1e-12)
}

func TestRotateAround(t *testing.T) {
	p := RotateAround(2, 1, 1, 1, math.Pi/2)
	assert.InDelta(t, 1.0, p.X(), 1e-9)
	assert.InDelta(t, 2.0, p.Y(), 1e-9)

	same := RotateAround(5, 7, 0, 0, 0)
	assert.Equal(t, 5.0, same.X())
	assert.Equal(t, 7.0, same.Y())
}

func TestGridTraverserVisitsEveryCell(t *testing.T) {
	tr := NewGridTraverser(0.5, 0.5, 3.5, 0.5)
	var cells [][2]int
	for tr.Next() {
		x, y := tr.Pos()
		cells = append(cells, [2]int{x, y})
	}
	require.Len(t, cells, 4)
	assert.Equal(t, [2]int{0, 0}, cells[0])
	assert.Equal(t, [2]int{3, 0}, cells[3])
}

func TestGridTraverserNegativeDirection(t *testing.T) {
	tr := NewGridTraverser(3.5, 2.5, 0.5, 0.2)
	last := [2]int{}
	count := 0
	for tr.Next() {
		x, y := tr.Pos()
		last = [2]int{x, y}
		count++
	}
	assert.Equal(t, [2]int{0, 0}, last)
	assert.GreaterOrEqual(t, count, 4)
}

func TestCastRay(t *testing.T) {
	wall := func(x, y int) bool { return !(x == 2 && y == 0) }

	assert.False(t, CastRay(0, 0, 4, 0, wall))
	assert.True(t, CastRay(0, 1, 4, 1, wall))
	assert.True(t, CastRay(1, 1, 1, 1, wall))
}
