package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/gridmotion/config"
	"github.com/lixenwraith/gridmotion/level"
)

func main() {
	configPath := flag.String("config", "", "TOML tuning file, the [maze] section seeds the defaults")
	seed := flag.Int64("seed", 0, "maze seed, 0 is time based")
	out := flag.String("out", "", "write the level as YAML to this path")
	interactive := flag.Bool("i", false, "prompt for maze parameters, regenerate until declined")
	flag.Parse()

	log := logrus.New()
	tun, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("load tuning")
	}
	cfg := tun.MazeConfig(*seed)

	if !*interactive {
		m := generate(os.Stdout, cfg)
		if *out != "" {
			if err := save(*out, m.Level); err != nil {
				log.WithError(err).WithField("path", *out).Fatal("save level")
			}
		}
		return
	}

	in := bufio.NewReader(os.Stdin)
	for {
		edit(in, os.Stdout, &cfg)
		m := generate(os.Stdout, cfg)

		if path := ask(in, os.Stdout, "Save as YAML level [path, empty skips]: "); path != "" {
			if err := save(path, m.Level); err != nil {
				log.WithError(err).WithField("path", path).Error("save level")
			} else {
				fmt.Printf("saved %s\n", path)
			}
		}
		if strings.EqualFold(ask(in, os.Stdout, "Another? [Y/n]: "), "n") {
			return
		}
		cfg.Seed = 0
	}
}

// mazeField binds a prompt to one MazeConfig field
type mazeField struct {
	label string
	ptr   any
	valid func(cfg *level.MazeConfig) bool
}

func mazeFields(cfg *level.MazeConfig) []mazeField {
	return []mazeField{
		{"width (maze cells, odd)", &cfg.Width, func(c *level.MazeConfig) bool { return c.Width >= 3 }},
		{"height (maze cells, odd)", &cfg.Height, func(c *level.MazeConfig) bool { return c.Height >= 3 }},
		{"braiding (0..1)", &cfg.Braiding, func(c *level.MazeConfig) bool { return c.Braiding >= 0 && c.Braiding <= 1 }},
		{"tiles per cell", &cfg.CellScale, func(c *level.MazeConfig) bool { return c.CellScale >= 1 }},
		{"seed (0 time based)", &cfg.Seed, nil},
	}
}

// edit prompts for every field, keeping the current value on empty or rejected input
func edit(in *bufio.Reader, w io.Writer, cfg *level.MazeConfig) {
	fmt.Fprintln(w, "\n=== maze level ===")
	for _, f := range mazeFields(cfg) {
		prev := *cfg
		s := ask(in, w, fmt.Sprintf("%s [%v]: ", f.label, deref(f.ptr)))
		if s == "" {
			continue
		}
		if _, err := fmt.Sscan(s, f.ptr); err != nil || (f.valid != nil && !f.valid(cfg)) {
			fmt.Fprintf(w, "  rejected %q\n", s)
			*cfg = prev
		}
	}
}

func deref(ptr any) any {
	switch v := ptr.(type) {
	case *int:
		return *v
	case *int64:
		return *v
	case *float64:
		return *v
	}
	return ptr
}

func ask(in *bufio.Reader, w io.Writer, prompt string) string {
	fmt.Fprint(w, prompt)
	s, _ := in.ReadString('\n')
	return strings.TrimSpace(s)
}

func generate(w io.Writer, cfg level.MazeConfig) *level.Maze {
	start := time.Now()
	m := level.GenerateMaze(cfg)
	fmt.Fprintf(w, "%dx%d tiles in %v, ", m.Width(), m.Height(), time.Since(start))
	if m.Path != nil {
		fmt.Fprintf(w, "solution %d cells\n", len(m.Path))
	} else {
		fmt.Fprintln(w, "unsolvable")
	}
	draw(w, m)
	return m
}

func save(path string, l *level.Level) error {
	data, err := yaml.Marshal(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func draw(w io.Writer, m *level.Maze) {
	onPath := make(map[level.Point]bool, len(m.Path))
	for _, p := range m.Path {
		onPath[p] = true
	}

	var sb strings.Builder
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			p := level.Point{X: x, Y: y}
			switch {
			case p == m.Spawn:
				sb.WriteByte('S')
			case p == m.Exit:
				sb.WriteByte('E')
			case m.HasCollision(x, y):
				sb.WriteString("█")
			case onPath[p]:
				sb.WriteString("•")
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(w, sb.String())
}
