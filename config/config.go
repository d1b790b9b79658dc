package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/gridmotion/parameter"
)

// EnvConfigPath names the environment variable consulted when no path is given
const EnvConfigPath = "GRIDMOTION_CONFIG"

var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning mirrors every tunable default, a TOML file overrides any subset
type Tuning struct {
	Movement  Movement  `toml:"movement"`
	Collision Collision `toml:"collision"`
	Oblique   Oblique   `toml:"oblique"`
	Camera    Camera    `toml:"camera"`
	Clock     Clock     `toml:"clock"`
	Player    Player    `toml:"player"`
	Maze      Maze      `toml:"maze"`
}

type Movement struct {
	CellSize               float64 `toml:"cell_size"`
	FrictionX              float64 `toml:"friction_x"`
	FrictionY              float64 `toml:"friction_y"`
	FrictionZ              float64 `toml:"friction_z"`
	MaxGridMovementPercent float64 `toml:"max_grid_movement_percent"`
	GravityX               float64 `toml:"gravity_x"`
	GravityY               float64 `toml:"gravity_y"`
	GravityZ               float64 `toml:"gravity_z"`
}

type Collision struct {
	LeftRatio   float64 `toml:"left_ratio"`
	RightRatio  float64 `toml:"right_ratio"`
	TopRatio    float64 `toml:"top_ratio"`
	BottomRatio float64 `toml:"bottom_ratio"`
	UseTopRatio bool    `toml:"use_top_ratio"`
	// Oblique selects the corner nudging resolver
	Oblique bool `toml:"oblique"`
}

type Oblique struct {
	WallSlideDelta     float64 `toml:"wall_slide_delta"`
	WallSlideTolerance float64 `toml:"wall_slide_tolerance"`
	LeftRatio          float64 `toml:"left_ratio"`
	RightRatio         float64 `toml:"right_ratio"`
	TopRatio           float64 `toml:"top_ratio"`
	BottomRatio        float64 `toml:"bottom_ratio"`
}

type Camera struct {
	DeadZonePctX            float64 `toml:"dead_zone_pct_x"`
	DeadZonePctY            float64 `toml:"dead_zone_pct_y"`
	Friction                float64 `toml:"friction"`
	BumpFriction            float64 `toml:"bump_friction"`
	TrackingSpeed           float64 `toml:"tracking_speed"`
	ZoomSpeed               float64 `toml:"zoom_speed"`
	ZoomFriction            float64 `toml:"zoom_friction"`
	TargetZoom              float64 `toml:"target_zoom"`
	BrakeDistanceNearBounds float64 `toml:"brake_distance_near_bounds"`
	ClampToBounds           bool    `toml:"clamp_to_bounds"`
	PixelsPerUnit           float64 `toml:"pixels_per_unit"`
}

type Clock struct {
	TicksPerSecond   int     `toml:"ticks_per_second"`
	TargetFPS        float64 `toml:"target_fps"`
	MaxTicksPerFrame int     `toml:"max_ticks_per_frame"`
}

type Player struct {
	Width        float64 `toml:"width"`
	Height       float64 `toml:"height"`
	Acceleration float64 `toml:"acceleration"`
	JumpVelocity float64 `toml:"jump_velocity"`
	GravityZ     float64 `toml:"gravity_z"`
	FrictionZ    float64 `toml:"friction_z"`
}

type Maze struct {
	Width     int     `toml:"width"`
	Height    int     `toml:"height"`
	Braiding  float64 `toml:"braiding"`
	CellScale int     `toml:"cell_scale"`
}

// Default returns the built-in tuning
func Default() *Tuning {
	return &Tuning{
		Movement: Movement{
			CellSize:               parameter.DefaultGridSize,
			FrictionX:              parameter.FrictionX,
			FrictionY:              parameter.FrictionY,
			FrictionZ:              parameter.FrictionZ,
			MaxGridMovementPercent: parameter.MaxGridMovementPercent,
		},
		Collision: Collision{
			LeftRatio:   parameter.LeftCollisionRatio,
			RightRatio:  parameter.RightCollisionRatio,
			TopRatio:    parameter.TopCollisionRatio,
			BottomRatio: parameter.BottomCollisionRatio,
			Oblique:     true,
		},
		Oblique: Oblique{
			WallSlideDelta:     parameter.WallSlideDelta,
			WallSlideTolerance: parameter.WallSlideTolerance,
			LeftRatio:          parameter.WallDeltaLeftCollisionRatio,
			RightRatio:         parameter.WallDeltaRightCollisionRatio,
			TopRatio:           parameter.WallDeltaTopCollisionRatio,
			BottomRatio:        parameter.WallDeltaBottomCollisionRatio,
		},
		Camera: Camera{
			DeadZonePctX:            parameter.CameraDeadZonePctX,
			DeadZonePctY:            parameter.CameraDeadZonePctY,
			Friction:                parameter.CameraFriction,
			BumpFriction:            parameter.CameraBumpFriction,
			TrackingSpeed:           parameter.CameraTrackingSpeed,
			ZoomSpeed:               parameter.CameraZoomSpeed,
			ZoomFriction:            parameter.CameraZoomFriction,
			TargetZoom:              1,
			BrakeDistanceNearBounds: parameter.CameraBrakeDistanceNearBounds,
			ClampToBounds:           true,
			PixelsPerUnit:           1,
		},
		Clock: Clock{
			TicksPerSecond:   parameter.FixedTicksPerSecond,
			TargetFPS:        parameter.TargetFPS,
			MaxTicksPerFrame: parameter.MaxFixedTicksPerFrame,
		},
		Player: Player{
			Width:        parameter.PlayerWidth,
			Height:       parameter.PlayerHeight,
			Acceleration: parameter.PlayerAcceleration,
			JumpVelocity: parameter.PlayerJumpVelocity,
			GravityZ:     parameter.PlayerGravityZ,
			FrictionZ:    parameter.PlayerFrictionZ,
		},
		Maze: Maze{
			Width:     21,
			Height:    15,
			Braiding:  parameter.MazeBraiding,
			CellScale: parameter.MazeCellScale,
		},
	}
}

// Parse overlays TOML data on the defaults and validates the result
// Unknown keys are rejected
func Parse(data []byte) (*Tuning, error) {
	t := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(t); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("decode tuning: %s", strict.String())
		}
		return nil, fmt.Errorf("decode tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Load reads a TOML tuning file
// An empty path falls back to $GRIDMOTION_CONFIG, and to the defaults when that is unset
func Load(path string) (*Tuning, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tuning %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Marshal encodes the tuning as TOML
func (t *Tuning) Marshal() ([]byte, error) {
	return toml.Marshal(t)
}
