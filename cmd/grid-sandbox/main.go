package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/gridmotion/camera"
	"github.com/lixenwraith/gridmotion/component"
	"github.com/lixenwraith/gridmotion/config"
	"github.com/lixenwraith/gridmotion/engine"
	"github.com/lixenwraith/gridmotion/level"
	"github.com/lixenwraith/gridmotion/parameter"
	"github.com/lixenwraith/gridmotion/physics"
	"github.com/lixenwraith/gridmotion/system"
	"github.com/lixenwraith/gridmotion/telemetry"
)

const (
	frameInterval = time.Second / parameter.TargetFPS
	droneCount    = 4
	// keyImpulseTicks converts one key press into this many ticks of acceleration
	keyImpulseTicks = 4
)

type Sandbox struct {
	screen tcell.Screen
	log    *logrus.Logger

	tuning *config.Tuning
	level  *level.Level
	world  *engine.World
	runner *system.Runner
	cam    *camera.FollowCamera

	player engine.Entity
	drones []engine.Entity

	lastFrame time.Time
}

func main() {
	configPath := flag.String("config", "", "TOML tuning file (default $"+config.EnvConfigPath+")")
	levelPath := flag.String("level", "", "YAML level file (default: generated maze)")
	seed := flag.Int64("seed", 0, "maze seed, 0 is time based")
	logPath := flag.String("log", "", "log file (default: discard)")
	dump := flag.Bool("dump", false, "print the level as YAML and exit")
	metricsAddr := flag.String("metrics", "", "serve Prometheus metrics on this address, e.g. :2112")
	flag.Parse()

	log, closeLog, err := openLog(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	tun, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load tuning: %v\n", err)
		os.Exit(1)
	}

	lvl, err := loadLevel(*levelPath, tun, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load level: %v\n", err)
		os.Exit(1)
	}

	if *dump {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(lvl); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode level: %v\n", err)
			os.Exit(1)
		}
		_ = enc.Close()
		return
	}

	var metrics *telemetry.Metrics
	if *metricsAddr != "" {
		reg := prometheus.NewRegistry()
		metrics = telemetry.NewMetrics(reg)
		go func() {
			log.WithField("addr", *metricsAddr).Info("metrics endpoint listening")
			if err := http.ListenAndServe(*metricsAddr, telemetry.Handler(reg)); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.WithError(err).Error("metrics endpoint stopped")
			}
		}()
	}

	sb, err := NewSandbox(tun, lvl, metrics, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer sb.cleanup()

	sb.run()
}

func openLog(path string) (*logrus.Logger, func(), error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if path == "" {
		log.SetOutput(io.Discard)
		return log, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	log.SetOutput(f)
	log.SetLevel(logrus.DebugLevel)
	return log, func() { _ = f.Close() }, nil
}

func loadLevel(path string, tun *config.Tuning, seed int64) (*level.Level, error) {
	if path != "" {
		return level.LoadYAML(path)
	}
	return level.GenerateMaze(tun.MazeConfig(seed)).Level, nil
}

// NewSandbox builds the world around the level and opens the terminal
func NewSandbox(tun *config.Tuning, lvl *level.Level, metrics *telemetry.Metrics, log *logrus.Logger) (*Sandbox, error) {
	// Bodies must share the level's cell size
	tun.Movement.CellSize = float64(lvl.GridSize())
	if err := tun.Validate(); err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	sb := &Sandbox{
		screen: screen,
		log:    log,
		tuning: tun,
		level:  lvl,
		world:  engine.NewWorld(),
	}

	cols, rows := screen.Size()
	vw, vh := sb.viewport(cols, rows)
	sb.cam = tun.Camera(vw, vh, float64(lvl.PixelWidth()), float64(lvl.PixelHeight()), log)

	system.Register(sb.world, sb.cam, metrics, log)
	sb.world.AddSystem(newWanderSystem(sb, rand.New(rand.NewSource(time.Now().UnixNano()))))
	sb.world.AddSystem(newContactSystem(sb))
	sb.runner = system.NewRunner(sb.world, tun.FixedStep(), log)

	sb.spawn()
	sb.cam.Follow(sb.body(sb.player), true)
	sb.cam.Attach()

	log.WithFields(logrus.Fields{
		"width":  lvl.Width(),
		"height": lvl.Height(),
		"grid":   lvl.GridSize(),
	}).Info("sandbox started")
	return sb, nil
}

// viewport converts terminal cells to world pixels, two columns per tile, last row is the status line
func (sb *Sandbox) viewport(cols, rows int) (float64, float64) {
	gs := float64(sb.level.GridSize())
	return float64(cols) / 2 * gs, float64(max(rows-1, 1)) * gs
}

func (sb *Sandbox) spawn() {
	checker := sb.tuning.LevelChecker(sb.level)
	resolver := sb.tuning.Resolver(checker)

	newEntity := func(cell level.Point, w, h float64, sat bool) engine.Entity {
		e := sb.world.CreateEntity()
		b := sb.tuning.Body(w, h)
		b.ToGridPosition(cell.X, cell.Y, 0.5, 0.5)
		sb.world.Bodies.Set(e, b)
		sb.world.Kinetics.Set(e, sb.tuning.Kinetic())
		sb.world.Colliders.Set(e, engine.Collider{Mover: physics.NewGridMover(checker, resolver)})
		sb.world.EntityCollisions.Set(e, component.EntityCollisionComponent{UseSAT: sat})
		sb.world.RenderBounds.Set(e, component.RenderBoundsComponent{})
		return e
	}

	p := sb.tuning.Player
	sb.player = newEntity(sb.level.Spawn, p.Width, p.Height, false)
	g := sb.tuning.Gravity()
	g.Z = p.GravityZ
	sb.world.Gravities.Set(sb.player, g)
	k, _ := sb.world.Kinetics.Get(sb.player)
	k.FrictZ = p.FrictionZ

	for _, cell := range sb.droneCells() {
		d := newEntity(cell, p.Width*0.8, p.Height*0.8, true)
		b := sb.body(d)
		b.Rotation = math.Pi / 4
		sb.drones = append(sb.drones, d)
	}
}

// droneCells picks open cells spread away from the spawn
func (sb *Sandbox) droneCells() []level.Point {
	var open []level.Point
	for y := 0; y < sb.level.Height(); y++ {
		for x := 0; x < sb.level.Width(); x++ {
			if sb.level.HasCollision(x, y) {
				continue
			}
			dx, dy := x-sb.level.Spawn.X, y-sb.level.Spawn.Y
			if dx*dx+dy*dy > 36 {
				open = append(open, level.Point{X: x, Y: y})
			}
		}
	}
	if len(open) == 0 {
		return nil
	}
	cells := make([]level.Point, 0, droneCount)
	for i := 0; i < droneCount; i++ {
		cells = append(cells, open[(i*len(open))/droneCount])
	}
	return cells
}

func (sb *Sandbox) body(e engine.Entity) *component.Body {
	b, _ := sb.world.Bodies.Get(e)
	return b
}

func (sb *Sandbox) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k, _ := sb.world.Kinetics.Get(sb.player)
		b := sb.body(sb.player)
		impulse := sb.tuning.Player.Acceleration * keyImpulseTicks

		sb.world.RunSafe(func() {
			switch ev.Key() {
			case tcell.KeyLeft:
				k.VelX -= impulse
				b.Dir = -1
			case tcell.KeyRight:
				k.VelX += impulse
				b.Dir = 1
			case tcell.KeyUp:
				k.VelY -= impulse
			case tcell.KeyDown:
				k.VelY += impulse
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'a':
					k.VelX -= impulse
					b.Dir = -1
				case 'd':
					k.VelX += impulse
					b.Dir = 1
				case 'w':
					k.VelY -= impulse
				case 's':
					k.VelY += impulse
				case 'e':
					sb.cam.Shake(parameter.PlayerShakeDuration, parameter.PlayerShakePower)
				case ' ':
					if b.ZR == 0 {
						k.VelZ = sb.tuning.Player.JumpVelocity
						b.SetSquashY(0.7)
					}
				case '+', '=':
					sb.cam.TargetZoom = math.Max(0.5, sb.cam.TargetZoom-0.25)
				case '-':
					sb.cam.TargetZoom = math.Min(3, sb.cam.TargetZoom+0.25)
				}
			}
		})

		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

	case *tcell.EventResize:
		cols, rows := sb.screen.Size()
		sb.world.RunSafe(func() {
			sb.cam.VirtualWidth, sb.cam.VirtualHeight = sb.viewport(cols, rows)
		})
		sb.screen.Sync()
	}

	return true
}

func (sb *Sandbox) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := sb.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	sb.lastFrame = time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !sb.handleInput(ev) {
				sb.log.Info("sandbox quit")
				return
			}

		case now := <-ticker.C:
			sb.runner.Frame(now.Sub(sb.lastFrame))
			sb.lastFrame = now
			sb.draw()
		}
	}
}

func (sb *Sandbox) cleanup() {
	sb.screen.Fini()
}
