package parameter

// Follow camera defaults
// Coefficients are per frame at the target FPS, scaled by tmod
const (
	// CameraDeadZonePctX is the horizontal dead zone as a fraction of the view width
	CameraDeadZonePctX = 0.04
	// CameraDeadZonePctY is the vertical dead zone as a fraction of the view height
	CameraDeadZonePctY = 0.1

	// CameraBrakeDistanceNearBounds is the braking band as a fraction of the view dimension
	CameraBrakeDistanceNearBounds = 0.1

	CameraFriction      = 0.89
	CameraBumpFriction  = 0.85
	CameraTrackingSpeed = 1.0

	CameraZoomSpeed    = 0.0014
	CameraZoomFriction = 0.9

	// Tracking acceleration per axis, Y reacts faster than X
	CameraSpeedFactorX = 0.015
	CameraSpeedFactorY = 0.023

	// CameraDeadZoneDistScale discounts the target distance before subtracting the dead zone
	CameraDeadZoneDistScale = 0.8

	// CameraTrackingFrictionLoss reduces friction as tracking speed and zoom grow
	CameraTrackingFrictionLoss = 0.054

	// CameraBrakeStrength is the maximum friction reduction inside the braking band
	CameraBrakeStrength = 0.9

	// CameraZoomNearFriction damps zoom velocity when close to the target zoom
	CameraZoomNearFriction = 0.8
	// CameraZoomNearThreshold is the zoom distance (per tmod) considered close
	CameraZoomNearThreshold = 0.05
	// CameraBumpZoomDecay is the per-frame decay of the zoom bump factor
	CameraBumpZoomDecay = 0.9
)

// Camera shake
const (
	CameraShakeAmplitude = 2.5
	CameraShakeFreqX     = 1.1
	CameraShakeFreqY     = 1.7
	CameraShakePhaseY    = 0.3
)
