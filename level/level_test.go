package level

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLevelBoundsAreSolid(t *testing.T) {
	l := New(4, 3, 16)
	assert.False(t, l.HasCollision(0, 0))
	assert.True(t, l.HasCollision(-1, 0))
	assert.True(t, l.HasCollision(4, 0))
	assert.True(t, l.HasCollision(0, 3))

	l.SetCollision(2, 1, true)
	assert.True(t, l.HasCollision(2, 1))
	l.SetCollision(99, 99, false)
	assert.True(t, l.HasCollision(99, 99))

	assert.Equal(t, 6, l.CoordID(2, 1))
	assert.Equal(t, 64, l.PixelWidth())
	assert.Equal(t, 48, l.PixelHeight())
	assert.Panics(t, func() { New(0, 3, 16) })
}

const sample = `
grid_size: 8
rows:
  - "#####"
  - "#@..#"
  - "#..##"
  - "#####"
`

func TestParseYAML(t *testing.T) {
	l, err := ParseYAML([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, 5, l.Width())
	assert.Equal(t, 4, l.Height())
	assert.Equal(t, 8, l.GridSize())
	assert.Equal(t, Point{1, 1}, l.Spawn)
	assert.False(t, l.HasCollision(1, 1))
	assert.True(t, l.HasCollision(3, 2))
	assert.False(t, l.HasCollision(2, 2))
	assert.Equal(t, []string{"#####", "#...#", "#..##", "#####"}, l.Rows())
}

func TestParseYAMLErrors(t *testing.T) {
	_, err := ParseYAML([]byte("grid_size: 8\nrows: []\n"))
	assert.True(t, errors.Is(err, ErrEmptyLevel))

	_, err = ParseYAML([]byte("rows: [\"###\", \"##\"]\n"))
	assert.True(t, errors.Is(err, ErrRaggedLevel))
	assert.Contains(t, err.Error(), "row 1")

	_, err = ParseYAML([]byte("grid_size: -4\nrows: [\"#\"]\n"))
	assert.Error(t, err)

	_, err = ParseYAML([]byte("rows: {"))
	assert.Error(t, err)
}

func TestParseYAMLDefaultGridSize(t *testing.T) {
	l, err := ParseYAML([]byte("rows: [\"..\"]\n"))
	require.NoError(t, err)
	assert.Equal(t, 16, l.GridSize())
}

func TestLoadYAMLRoundTrip(t *testing.T) {
	l, err := ParseYAML([]byte(sample))
	require.NoError(t, err)

	out, err := yaml.Marshal(l)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "level.yaml")
	require.NoError(t, os.WriteFile(path, out, 0o644))

	back, err := LoadYAML(path)
	require.NoError(t, err)
	assert.Equal(t, l.Rows(), back.Rows())
	assert.Equal(t, l.Spawn, back.Spawn)
	assert.Equal(t, l.GridSize(), back.GridSize())

	_, err = LoadYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGenerateMaze(t *testing.T) {
	cfg := DefaultMazeConfig()
	cfg.Seed = 11
	m := GenerateMaze(cfg)

	assert.Equal(t, 21*cfg.CellScale, m.Width())
	assert.Equal(t, 15*cfg.CellScale, m.Height())
	assert.False(t, m.HasCollision(m.Spawn.X, m.Spawn.Y))
	assert.False(t, m.HasCollision(m.Exit.X, m.Exit.Y))

	// Border stays solid
	for x := 0; x < m.Width(); x++ {
		require.True(t, m.HasCollision(x, 0))
		require.True(t, m.HasCollision(x, m.Height()-1))
	}

	// Route is connected through open tiles
	require.NotEmpty(t, m.Path)
	assert.Equal(t, m.Spawn, m.Path[0])
	assert.Equal(t, m.Exit, m.Path[len(m.Path)-1])
	for i, p := range m.Path {
		require.False(t, m.HasCollision(p.X, p.Y))
		if i > 0 {
			q := m.Path[i-1]
			assert.Equal(t, cfg.CellScale, abs(p.X-q.X)+abs(p.Y-q.Y))
		}
	}

	// Same seed, same maze
	again := GenerateMaze(cfg)
	assert.Equal(t, m.Rows(), again.Rows())
}

func TestCanOpenRejectsPlaza(t *testing.T) {
	// Opening the center would complete a 2x2 open block with the top-left quadrant
	grid := [][]bool{
		{true, true, true, true},
		{true, false, false, true},
		{true, false, true, true},
		{true, true, true, true},
	}
	assert.False(t, canOpen(grid, 2, 2))
}

func TestEnsureOdd(t *testing.T) {
	assert.Equal(t, 3, ensureOdd(1))
	assert.Equal(t, 7, ensureOdd(8))
	assert.Equal(t, 9, ensureOdd(9))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
