package level

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/gridmotion/parameter"
)

var (
	ErrEmptyLevel  = errors.New("level has no rows")
	ErrRaggedLevel = errors.New("level rows differ in length")
)

// SpawnTile marks the spawn cell in text rows, the cell itself is open
const SpawnTile = '@'

// Document is the YAML layout of a level file
//
//	grid_size: 16
//	rows:
//	  - "#####"
//	  - "#@..#"
//	  - "#####"
type Document struct {
	GridSize int      `yaml:"grid_size"`
	Rows     []string `yaml:"rows"`
}

// ParseYAML decodes a level document
func ParseYAML(data []byte) (*Level, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode level: %w", err)
	}
	return doc.Build()
}

// LoadYAML reads and decodes a level file
func LoadYAML(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}
	l, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Build validates the document and creates the level
// A missing grid size falls back to the default
func (d *Document) Build() (*Level, error) {
	if len(d.Rows) == 0 {
		return nil, ErrEmptyLevel
	}
	width := utf8.RuneCountInString(d.Rows[0])
	if width == 0 {
		return nil, ErrEmptyLevel
	}
	for i, row := range d.Rows {
		if n := utf8.RuneCountInString(row); n != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, n, width, ErrRaggedLevel)
		}
	}

	gridSize := d.GridSize
	if gridSize == 0 {
		gridSize = parameter.DefaultGridSize
	}
	if gridSize < 0 {
		return nil, fmt.Errorf("grid size %d must be positive", gridSize)
	}

	l := New(width, len(d.Rows), gridSize)
	for y, row := range d.Rows {
		x := 0
		for _, r := range row {
			switch r {
			case parameter.SolidTile:
				l.SetCollision(x, y, true)
			case SpawnTile:
				l.Spawn = Point{x, y}
			}
			x++
		}
	}
	return l, nil
}

// MarshalYAML writes the level back in Document form, the spawn marker included
func (l *Level) MarshalYAML() (any, error) {
	rows := l.Rows()
	if l.IsValid(l.Spawn.X, l.Spawn.Y) && !l.HasCollision(l.Spawn.X, l.Spawn.Y) {
		b := []rune(rows[l.Spawn.Y])
		b[l.Spawn.X] = SpawnTile
		rows[l.Spawn.Y] = string(b)
	}
	return Document{GridSize: l.gridSize, Rows: rows}, nil
}
