package level

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/gridmotion/parameter"
)

// MazeConfig controls maze generation
type MazeConfig struct {
	// Width and Height in maze cells, rounded down to odd, minimum 3
	Width, Height int

	// Braiding: 0.0 (perfect maze, a tree) to 1.0 (no dead ends)
	// Loops never create 2x2 open plazas or isolated pillars
	Braiding float64

	// CellScale is the tile count per maze cell edge, so corridors fit an entity with room to turn
	CellScale int

	GridSize int
	Seed     int64 // 0 = time based
}

// DefaultMazeConfig returns a small braided maze
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Width:     21,
		Height:    15,
		Braiding:  parameter.MazeBraiding,
		CellScale: parameter.MazeCellScale,
		GridSize:  parameter.DefaultGridSize,
	}
}

// Maze is a generated level plus its solved route, in tile coordinates
type Maze struct {
	*Level
	Exit Point
	// Path is the tile route from spawn to exit through maze cell centers
	Path []Point
}

// GenerateMaze carves a recursive backtracker maze, braids it, and scales it to tiles
func GenerateMaze(cfg MazeConfig) *Maze {
	rows := ensureOdd(cfg.Height)
	cols := ensureOdd(cfg.Width)
	scale := cfg.CellScale
	if scale < 1 {
		scale = 1
	}
	gridSize := cfg.GridSize
	if gridSize <= 0 {
		gridSize = parameter.DefaultGridSize
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	grid := make([][]bool, rows)
	for y := range grid {
		grid[y] = make([]bool, cols)
		for x := range grid[y] {
			grid[y][x] = true
		}
	}

	start := Point{1, 1}
	end := Point{cols - 2, rows - 2}

	carve(grid, start, rng)
	if cfg.Braiding > 0 {
		braid(grid, cfg.Braiding, rng)
	}
	route := solveBFS(grid, start, end)

	l := New(cols*scale, rows*scale, gridSize)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if grid[y][x] {
				l.Fill(x*scale, y*scale, x*scale+scale-1, y*scale+scale-1, true)
			}
		}
	}

	center := func(p Point) Point {
		return Point{p.X*scale + scale/2, p.Y*scale + scale/2}
	}
	l.Spawn = center(start)

	m := &Maze{Level: l, Exit: center(end)}
	for _, p := range route {
		m.Path = append(m.Path, center(p))
	}
	return m
}

// carve runs the recursive backtracker from start, yielding a uniform spanning tree over odd cells
func carve(grid [][]bool, start Point, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])

	stack := []Point{start}
	grid[start.Y][start.X] = false

	dirs := [4]Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}
	candidates := make([]Point, 0, 4)

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates = candidates[:0]

		for _, d := range dirs {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			// Keep a one cell wall border
			if nx > 0 && nx < cols-1 && ny > 0 && ny < rows-1 && grid[ny][nx] {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		grid[curr.Y+d.Y/2][curr.X+d.X/2] = false
		next := Point{curr.X + d.X, curr.Y + d.Y}
		grid[next.Y][next.X] = false
		stack = append(stack, next)
	}
}

// braid opens a wall at dead ends with the given probability
func braid(grid [][]bool, probability float64, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])
	ortho := [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	candidates := make([]Point, 0, 4)

	for y := 1; y < rows-1; y += 2 {
		for x := 1; x < cols-1; x += 2 {
			if grid[y][x] {
				continue
			}

			exits := 0
			for _, d := range ortho {
				if !grid[y+d.Y][x+d.X] {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			candidates = candidates[:0]
			for _, d := range ortho {
				nx, ny := x+2*d.X, y+2*d.Y
				wx, wy := x+d.X, y+d.Y
				if nx < 0 || nx >= cols || ny < 0 || ny >= rows {
					continue
				}
				if !grid[ny][nx] && grid[wy][wx] && canOpen(grid, wx, wy) {
					candidates = append(candidates, Point{wx, wy})
				}
			}
			if len(candidates) > 0 {
				c := candidates[rng.Intn(len(candidates))]
				grid[c.Y][c.X] = false
			}
		}
	}
}

// canOpen rejects openings that create a 2x2 plaza or leave an adjacent wall isolated
func canOpen(grid [][]bool, x, y int) bool {
	rows, cols := len(grid), len(grid[0])
	open := func(tx, ty int) bool {
		return tx >= 0 && tx < cols && ty >= 0 && ty < rows && !grid[ty][tx]
	}
	wall := func(tx, ty int) bool {
		return tx >= 0 && tx < cols && ty >= 0 && ty < rows && grid[ty][tx]
	}

	// Plazas: any of the four 2x2 quadrants around (x, y) already three-quarters open
	for _, q := range [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
		if open(x+q[0], y) && open(x, y+q[1]) && open(x+q[0], y+q[1]) {
			return false
		}
	}

	// Pillars: an orthogonal wall neighbor must keep another wall neighbor
	ortho := [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	for _, d := range ortho {
		nx, ny := x+d.X, y+d.Y
		if !wall(nx, ny) {
			continue
		}
		links := 0
		for _, d2 := range ortho {
			mx, my := nx+d2.X, ny+d2.Y
			if mx == x && my == y {
				continue
			}
			if wall(mx, my) {
				links++
			}
		}
		if links == 0 {
			return false
		}
	}
	return true
}

func solveBFS(grid [][]bool, start, end Point) []Point {
	rows, cols := len(grid), len(grid[0])
	if grid[start.Y][start.X] || grid[end.Y][end.X] {
		return nil
	}

	queue := []Point{start}
	cameFrom := map[Point]Point{}
	visited := map[Point]bool{start: true}
	ortho := [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == end {
			var path []Point
			for curr != start {
				path = append(path, curr)
				curr = cameFrom[curr]
			}
			path = append(path, start)
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, d := range ortho {
			next := Point{curr.X + d.X, curr.Y + d.Y}
			if next.X < 0 || next.X >= cols || next.Y < 0 || next.Y >= rows {
				continue
			}
			if !grid[next.Y][next.X] && !visited[next] {
				visited[next] = true
				cameFrom[next] = curr
				queue = append(queue, next)
			}
		}
	}
	return nil
}

func ensureOdd(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}
