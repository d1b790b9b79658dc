package system

import (
	"github.com/lixenwraith/gridmotion/camera"
	"github.com/lixenwraith/gridmotion/engine"
	"github.com/lixenwraith/gridmotion/parameter"
)

// CameraSystem steps the follow camera once per frame with the frame's timing
type CameraSystem struct {
	world  *engine.World
	camera *camera.FollowCamera
}

func NewCameraSystem(world *engine.World, cam *camera.FollowCamera) *CameraSystem {
	return &CameraSystem{
		world:  world,
		camera: cam,
	}
}

func (s *CameraSystem) Name() string {
	return "camera"
}

func (s *CameraSystem) Priority() int {
	return parameter.PriorityCamera
}

func (s *CameraSystem) Update() {
	s.camera.Update(s.world.Time.FrameDelta, s.world.Time.Tmod)
}

func (s *CameraSystem) Camera() *camera.FollowCamera {
	return s.camera
}
