package config

import (
	"errors"
	"fmt"
	"math"
)

// Validate reports every out of range value, each wrapping ErrInvalidTuning
func (t *Tuning) Validate() error {
	var errs []error
	check := func(ok bool, key string, v any, want string) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s = %v, want %s", ErrInvalidTuning, key, v, want))
		}
	}
	friction := func(key string, v float64) {
		check(v > 0 && v <= 1, key, v, "(0, 1]")
	}
	ratio := func(key string, v float64) {
		check(v >= 0 && v < 1, key, v, "[0, 1)")
	}
	positive := func(key string, v float64) {
		check(v > 0 && !math.IsInf(v, 1), key, v, "> 0")
	}

	m := t.Movement
	positive("movement.cell_size", m.CellSize)
	friction("movement.friction_x", m.FrictionX)
	friction("movement.friction_y", m.FrictionY)
	friction("movement.friction_z", m.FrictionZ)
	positive("movement.max_grid_movement_percent", m.MaxGridMovementPercent)

	c := t.Collision
	ratio("collision.left_ratio", c.LeftRatio)
	ratio("collision.right_ratio", c.RightRatio)
	ratio("collision.top_ratio", c.TopRatio)
	ratio("collision.bottom_ratio", c.BottomRatio)
	check(c.LeftRatio <= c.RightRatio, "collision.left_ratio", c.LeftRatio, "<= right_ratio")

	o := t.Oblique
	check(o.WallSlideDelta >= 0, "oblique.wall_slide_delta", o.WallSlideDelta, ">= 0")
	check(o.WallSlideTolerance >= 0, "oblique.wall_slide_tolerance", o.WallSlideTolerance, ">= 0")
	check(o.LeftRatio >= 0 && o.LeftRatio <= 1, "oblique.left_ratio", o.LeftRatio, "[0, 1]")
	check(o.RightRatio >= 0 && o.RightRatio <= 1, "oblique.right_ratio", o.RightRatio, "[0, 1]")
	check(o.TopRatio >= 0 && o.TopRatio <= 1, "oblique.top_ratio", o.TopRatio, "[0, 1]")
	check(o.BottomRatio >= 0 && o.BottomRatio <= 1, "oblique.bottom_ratio", o.BottomRatio, "[0, 1]")

	cam := t.Camera
	ratio("camera.dead_zone_pct_x", cam.DeadZonePctX)
	ratio("camera.dead_zone_pct_y", cam.DeadZonePctY)
	friction("camera.friction", cam.Friction)
	friction("camera.bump_friction", cam.BumpFriction)
	check(cam.TrackingSpeed >= 0, "camera.tracking_speed", cam.TrackingSpeed, ">= 0")
	check(cam.ZoomSpeed >= 0, "camera.zoom_speed", cam.ZoomSpeed, ">= 0")
	friction("camera.zoom_friction", cam.ZoomFriction)
	positive("camera.target_zoom", cam.TargetZoom)
	check(cam.BrakeDistanceNearBounds >= 0, "camera.brake_distance_near_bounds", cam.BrakeDistanceNearBounds, ">= 0")
	positive("camera.pixels_per_unit", cam.PixelsPerUnit)

	clk := t.Clock
	check(clk.TicksPerSecond > 0, "clock.ticks_per_second", clk.TicksPerSecond, "> 0")
	positive("clock.target_fps", clk.TargetFPS)
	check(clk.MaxTicksPerFrame > 0, "clock.max_ticks_per_frame", clk.MaxTicksPerFrame, "> 0")

	p := t.Player
	positive("player.width", p.Width)
	positive("player.height", p.Height)
	friction("player.friction_z", p.FrictionZ)

	mz := t.Maze
	check(mz.Width >= 3, "maze.width", mz.Width, ">= 3")
	check(mz.Height >= 3, "maze.height", mz.Height, ">= 3")
	check(mz.Braiding >= 0 && mz.Braiding <= 1, "maze.braiding", mz.Braiding, "[0, 1]")
	check(mz.CellScale >= 1, "maze.cell_scale", mz.CellScale, ">= 1")

	return errors.Join(errs...)
}
