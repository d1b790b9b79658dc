package config

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/gridmotion/camera"
	"github.com/lixenwraith/gridmotion/collision"
	"github.com/lixenwraith/gridmotion/component"
	"github.com/lixenwraith/gridmotion/engine"
	"github.com/lixenwraith/gridmotion/level"
)

// LevelChecker builds a checker over the tile map with the tuned ratios
func (t *Tuning) LevelChecker(tiles collision.TileMap) *collision.LevelChecker {
	c := collision.NewLevelChecker(tiles)
	c.LeftCollisionRatio = t.Collision.LeftRatio
	c.RightCollisionRatio = t.Collision.RightRatio
	c.TopCollisionRatio = t.Collision.TopRatio
	c.BottomCollisionRatio = t.Collision.BottomRatio
	c.UseTopCollisionRatio = t.Collision.UseTopRatio
	c.MustValidate()
	return c
}

// Resolver returns the oblique resolver when enabled, the plain level resolver otherwise
func (t *Tuning) Resolver(checker *collision.LevelChecker) collision.Resolver {
	if !t.Collision.Oblique {
		return collision.NewLevelResolver(checker)
	}
	r := collision.NewObliqueResolver(checker)
	r.WallSlideDelta = t.Oblique.WallSlideDelta
	r.WallSlideTolerance = t.Oblique.WallSlideTolerance
	r.WallDeltaLeftCollisionRatio = t.Oblique.LeftRatio
	r.WallDeltaRightCollisionRatio = t.Oblique.RightRatio
	r.WallDeltaTopCollisionRatio = t.Oblique.TopRatio
	r.WallDeltaBottomCollisionRatio = t.Oblique.BottomRatio
	return r
}

// Camera builds a follow camera clamped to a world of boundsWidth x boundsHeight pixels
func (t *Tuning) Camera(viewWidth, viewHeight, boundsWidth, boundsHeight float64, log logrus.FieldLogger) *camera.FollowCamera {
	cam := camera.New(viewWidth, viewHeight, log)
	c := t.Camera
	cam.BoundsWidth = boundsWidth
	cam.BoundsHeight = boundsHeight
	cam.DeadZonePctX = c.DeadZonePctX
	cam.DeadZonePctY = c.DeadZonePctY
	cam.Friction = c.Friction
	cam.BumpFrict = c.BumpFriction
	cam.TrackingSpeed = c.TrackingSpeed
	cam.ZoomSpeed = c.ZoomSpeed
	cam.ZoomFrict = c.ZoomFriction
	cam.TargetZoom = c.TargetZoom
	cam.BrakeDistanceNearBounds = c.BrakeDistanceNearBounds
	cam.ClampToBounds = c.ClampToBounds
	cam.PixelsPerUnit = c.PixelsPerUnit
	return cam
}

// FixedStep builds the tick accumulator
func (t *Tuning) FixedStep() *engine.FixedStep {
	return engine.NewFixedStep(t.Clock.TicksPerSecond, t.Clock.TargetFPS, t.Clock.MaxTicksPerFrame)
}

// Kinetic returns a resting kinetic state with the tuned friction
func (t *Tuning) Kinetic() component.Kinetic {
	k := component.NewKinetic()
	k.FrictX = t.Movement.FrictionX
	k.FrictY = t.Movement.FrictionY
	k.FrictZ = t.Movement.FrictionZ
	return k
}

// Gravity returns the tuned world gravity
func (t *Tuning) Gravity() component.Gravity {
	return component.NewGravity(t.Movement.GravityX, t.Movement.GravityY, t.Movement.GravityZ)
}

// Body returns a body of the given pixel size on the tuned grid
func (t *Tuning) Body(width, height float64) component.Body {
	b := component.NewBody(t.Movement.CellSize, width, height)
	b.MaxGridMovementPercent = t.Movement.MaxGridMovementPercent
	return b
}

// MazeConfig converts the maze section, seed and grid size come from the caller
func (t *Tuning) MazeConfig(seed int64) level.MazeConfig {
	cfg := level.DefaultMazeConfig()
	cfg.Width = t.Maze.Width
	cfg.Height = t.Maze.Height
	cfg.Braiding = t.Maze.Braiding
	cfg.CellScale = t.Maze.CellScale
	cfg.GridSize = int(t.Movement.CellSize)
	cfg.Seed = seed
	return cfg
}
