package camera

import (
	"io"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/gridmotion/parameter"
	"github.com/lixenwraith/gridmotion/vmath"
)

const shakeTimer = "shake"

// Target is anything with a pixel center, *component.Body satisfies it
type Target interface {
	CenterX() float64
	CenterY() float64
}

// FollowCamera smooths a focus point toward a tracked target
// All coefficients are per frame at the target FPS and scaled by tmod
type FollowCamera struct {
	// BoundsWidth and BoundsHeight are the world size in 1:1 pixels, PixelsPerUnit converts them to world units
	BoundsWidth, BoundsHeight float64
	// Offset widens the clamp range, typically half the letterbox margin
	OffsetX, OffsetY float64
	ClampToBounds    bool

	// BrakeDistanceNearBounds is the braking band as a fraction of the view size
	BrakeDistanceNearBounds float64

	DeadZonePctX, DeadZonePctY float64

	Friction      float64
	BumpFrict     float64
	TrackingSpeed float64

	ZoomSpeed  float64
	ZoomFrict  float64
	TargetZoom float64

	PixelsPerUnit float64

	// Virtual viewport size at zoom 1
	VirtualWidth, VirtualHeight float64

	following   Target
	attached    bool
	pendingSnap bool

	zoom           float64
	bumpZoomFactor float64
	dx, dy, dz     float64
	bumpX, bumpY   float64

	rawX, rawY         float64
	clampedX, clampedY float64
	frictX, frictY     float64

	posX, posY               float64
	scaledDistX, scaledDistY float64

	shakePower  float64
	shakeFrames int
	cd          *Cooldown

	log            logrus.FieldLogger
	warnedViewport bool
}

// New creates a camera with default tuning for a virtual viewport of the given size
// A nil logger discards output
func New(virtualWidth, virtualHeight float64, log logrus.FieldLogger) *FollowCamera {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &FollowCamera{
		ClampToBounds:           true,
		BrakeDistanceNearBounds: parameter.CameraBrakeDistanceNearBounds,
		DeadZonePctX:            parameter.CameraDeadZonePctX,
		DeadZonePctY:            parameter.CameraDeadZonePctY,
		Friction:                parameter.CameraFriction,
		BumpFrict:               parameter.CameraBumpFriction,
		TrackingSpeed:           parameter.CameraTrackingSpeed,
		ZoomSpeed:               parameter.CameraZoomSpeed,
		ZoomFrict:               parameter.CameraZoomFriction,
		TargetZoom:              1,
		PixelsPerUnit:           1,
		VirtualWidth:            virtualWidth,
		VirtualHeight:           virtualHeight,
		zoom:                    1,
		shakePower:              1,
		cd:                      NewCooldown(),
		log:                     log.WithField("component", "camera"),
	}
}

// --- Target ---

// Follow starts tracking t
// With setImmediately the focus jumps to the target, deferred to Attach when the camera is not attached yet
// A nil target with setImmediately is logged and tracking is disabled
func (c *FollowCamera) Follow(t Target, setImmediately bool) {
	c.following = t
	if !setImmediately {
		return
	}
	if t == nil {
		c.log.Warn("follow with immediate snap requested without a target, tracking disabled")
		c.pendingSnap = false
		return
	}
	if c.attached {
		c.rawX, c.rawY = t.CenterX(), t.CenterY()
		return
	}
	c.pendingSnap = true
}

func (c *FollowCamera) Unfollow() {
	c.following = nil
	c.pendingSnap = false
}

func (c *FollowCamera) Following() Target { return c.following }

// Attach marks the camera live and applies a deferred snap
func (c *FollowCamera) Attach() {
	c.attached = true
	if c.pendingSnap && c.following != nil {
		c.rawX, c.rawY = c.following.CenterX(), c.following.CenterY()
	}
	c.pendingSnap = false
}

func (c *FollowCamera) Attached() bool { return c.attached }

// --- Impulses ---

// Shake perturbs the output for d with amplitude scaled by power, restarting any running shake
func (c *FollowCamera) Shake(d time.Duration, power float64) {
	c.cd.Timeout(shakeTimer, d, nil)
	c.shakePower = power
}

func (c *FollowCamera) Shaking() bool { return c.cd.Has(shakeTimer) }

// Bump adds a decaying positional kick
func (c *FollowCamera) Bump(x, y float64) {
	c.bumpX += x
	c.bumpY += y
}

// BumpAngle kicks along an angle in radians
func (c *FollowCamera) BumpAngle(angle, dist float64) {
	c.bumpX += math.Cos(angle) * dist
	c.bumpY += math.Sin(angle) * dist
}

// BumpZoom adds a decaying zoom kick on top of the current zoom
func (c *FollowCamera) BumpZoom(f float64) {
	c.bumpZoomFactor += f
}

// SetZoom changes zoom immediately, target included
func (c *FollowCamera) SetZoom(z float64) {
	c.zoom = z
	c.TargetZoom = z
	c.dz = 0
}

// --- Update ---

// Update advances timers by dt and the smoothing state by tmod frames
func (c *FollowCamera) Update(dt time.Duration, tmod float64) {
	if (c.VirtualWidth <= 0 || c.VirtualHeight <= 0) && !c.warnedViewport {
		c.log.WithFields(logrus.Fields{
			"width":  c.VirtualWidth,
			"height": c.VirtualHeight,
		}).Warn("camera has no viewport")
		c.warnedViewport = true
	}
	c.cd.Update(dt)
	c.updatePosition(tmod)
	c.sync()
}

func (c *FollowCamera) updatePosition(tmod float64) {
	c.updateZoom(tmod)

	w, h := c.Width(), c.Height()
	zoom := c.CombinedZoom()

	if c.following != nil {
		tx := math.Floor(c.following.CenterX())
		ty := math.Floor(c.following.CenterY())
		angle := math.Atan2(ty-c.rawY, tx-c.rawX)

		distX := math.Abs(tx - c.rawX)
		if distX >= c.DeadZonePctX*w {
			speed := parameter.CameraSpeedFactorX * zoom * c.TrackingSpeed
			c.dx += math.Cos(angle) * (parameter.CameraDeadZoneDistScale*distX - c.DeadZonePctX*w) * speed * tmod
		}
		distY := math.Abs(ty - c.rawY)
		if distY >= c.DeadZonePctY*h {
			speed := parameter.CameraSpeedFactorY * zoom * c.TrackingSpeed
			c.dy += math.Sin(angle) * (parameter.CameraDeadZoneDistScale*distY - c.DeadZonePctY*h) * speed * tmod
		}
	}

	c.frictX = c.Friction - c.TrackingSpeed*zoom*parameter.CameraTrackingFrictionLoss*c.Friction
	c.frictY = c.frictX

	bw, bh := c.worldBounds()
	if c.ClampToBounds {
		// X brakes toward the low edge at rest too, Y only while moving
		if d := c.BrakeDistanceNearBounds * w; d > 0 {
			r := brakeHigh(c.rawX, w, bw, d)
			if c.dx <= 0 {
				r = brakeLow(c.rawX, w, d)
			}
			c.frictX *= 1 - parameter.CameraBrakeStrength*r
		}
		if d := c.BrakeDistanceNearBounds * h; d > 0 && c.dy != 0 {
			r := brakeHigh(c.rawY, h, bh, d)
			if c.dy < 0 {
				r = brakeLow(c.rawY, h, d)
			}
			c.frictY *= 1 - parameter.CameraBrakeStrength*r
		}
	}

	c.rawX += c.dx * tmod
	c.rawY += c.dy * tmod
	c.dx *= vmath.PowTmod(c.frictX, tmod)
	c.dy *= vmath.PowTmod(c.frictY, tmod)

	c.bumpX *= vmath.PowTmod(c.BumpFrict, tmod)
	c.bumpY *= vmath.PowTmod(c.BumpFrict, tmod)

	if c.ClampToBounds {
		c.clampedX = clampAxis(c.rawX, w, bw, c.OffsetX)
		c.clampedY = clampAxis(c.rawY, h, bh, c.OffsetY)
	} else {
		c.clampedX, c.clampedY = c.rawX, c.rawY
	}
}

func (c *FollowCamera) updateZoom(tmod float64) {
	tz := c.TargetZoom
	switch {
	case tz > c.zoom:
		c.dz += c.ZoomSpeed
	case tz < c.zoom:
		c.dz -= c.ZoomSpeed
	default:
		c.dz = 0
	}

	prev := c.zoom
	c.zoom += c.dz * tmod
	c.bumpZoomFactor *= vmath.PowTmod(parameter.CameraBumpZoomDecay, tmod)
	c.dz *= vmath.PowTmod(c.ZoomFrict, tmod)
	if math.Abs(tz-c.zoom) <= parameter.CameraZoomNearThreshold*tmod {
		c.dz *= vmath.PowTmod(parameter.CameraZoomNearFriction, tmod)
	}

	// Snap once the target is crossed
	if prev < tz && c.zoom >= tz || prev > tz && c.zoom <= tz {
		c.zoom = tz
		c.dz = 0
	}
}

// brakeLow is 0 beyond dist from the low clamp edge, rising to 1 at the edge
func brakeLow(focus, view, dist float64) float64 {
	return 1 - vmath.Clamp((focus-view*0.5)/dist, 0, 1)
}

// brakeHigh mirrors brakeLow for the high clamp edge
func brakeHigh(focus, view, bound, dist float64) float64 {
	return 1 - vmath.Clamp((bound-view*0.5-focus)/dist, 0, 1)
}

// clampAxis centers when the view is larger than the bounds, otherwise clamps into the bounds widened by offset
func clampAxis(focus, view, bound, offset float64) float64 {
	if bound < view-offset {
		return bound * 0.5
	}
	return vmath.Clamp(focus, view*0.5-offset, bound-view*0.5+offset)
}

func (c *FollowCamera) sync() {
	x := c.clampedX + c.bumpX
	y := c.clampedY + c.bumpY

	if c.cd.Has(shakeTimer) {
		r := c.cd.Ratio(shakeTimer)
		f := float64(c.shakeFrames)
		x += math.Cos(f*parameter.CameraShakeFreqX) * parameter.CameraShakeAmplitude * c.shakePower * r
		y += math.Sin(parameter.CameraShakePhaseY+f*parameter.CameraShakeFreqY) * parameter.CameraShakeAmplitude * c.shakePower * r
		c.shakeFrames++
	} else {
		c.shakeFrames = 0
	}

	ppu := c.PixelsPerUnit
	tx := math.Floor(x*ppu) / ppu
	ty := math.Floor(y*ppu) / ppu
	c.scaledDistX = (x - tx) * ppu
	c.scaledDistY = (y - ty) * ppu

	c.posX = tx + c.OffsetX
	c.posY = ty + c.OffsetY
}

// --- Accessors ---

func (c *FollowCamera) worldBounds() (float64, float64) {
	return c.BoundsWidth / c.PixelsPerUnit, c.BoundsHeight / c.PixelsPerUnit
}

// Position returns the pixel-snapped camera center
func (c *FollowCamera) Position() (float64, float64) { return c.posX, c.posY }

// SubPixel returns the fractional remainder dropped by pixel snapping, in pixels
func (c *FollowCamera) SubPixel() (float64, float64) { return c.scaledDistX, c.scaledDistY }

func (c *FollowCamera) RawFocus() (float64, float64)     { return c.rawX, c.rawY }
func (c *FollowCamera) ClampedFocus() (float64, float64) { return c.clampedX, c.clampedY }

// Velocity returns focus velocity and zoom velocity
func (c *FollowCamera) Velocity() (dx, dy, dz float64) { return c.dx, c.dy, c.dz }

// EffectiveFriction returns the per-axis friction of the last update, braking included
func (c *FollowCamera) EffectiveFriction() (float64, float64) { return c.frictX, c.frictY }

func (c *FollowCamera) Zoom() float64         { return c.zoom }
func (c *FollowCamera) CombinedZoom() float64 { return c.zoom + c.bumpZoomFactor }

// Width is the visible width in world units at the current zoom
func (c *FollowCamera) Width() float64 { return c.VirtualWidth * c.CombinedZoom() }

// Height is the visible height in world units at the current zoom
func (c *FollowCamera) Height() float64 { return c.VirtualHeight * c.CombinedZoom() }

// View returns the visible rectangle left, top, width, height
func (c *FollowCamera) View() (float64, float64, float64, float64) {
	w, h := c.Width(), c.Height()
	return c.posX - w*0.5, c.posY - h*0.5, w, h
}
