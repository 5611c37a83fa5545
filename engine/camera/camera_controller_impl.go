package camera

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

type cameraControllerImpl struct {
	mu *sync.Mutex

	position mgl64.Vec3
	target   mgl64.Vec3

	minDistance float64
	maxDistance float64
	zoomSpeed   float64
}

var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a controller at (0, 0, 10) looking at the origin.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:          &sync.Mutex{},
		position:    mgl64.Vec3{0, 0, 10},
		minDistance: 2.5,
		maxDistance: 100,
		zoomSpeed:   0.5,
	}
	for _, option := range options {
		option(cc)
	}
	return cc
}

func (cc *cameraControllerImpl) Position() mgl64.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position
}

func (cc *cameraControllerImpl) Target() mgl64.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.target
}

func (cc *cameraControllerImpl) SetPosition(x, y, z float64) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.position = mgl64.Vec3{x, y, z}
}

func (cc *cameraControllerImpl) SetTarget(x, y, z float64) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.target = mgl64.Vec3{x, y, z}
}

func (cc *cameraControllerImpl) Distance() float64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position.Sub(cc.target).Len()
}

func (cc *cameraControllerImpl) Zoom(delta float64) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	offset := cc.position.Sub(cc.target)
	dist := offset.Len()
	if dist < 1e-8 {
		return
	}
	next := mgl64.Clamp(dist-delta*cc.zoomSpeed, cc.minDistance, cc.maxDistance)
	cc.position = cc.target.Add(offset.Mul(next / dist))
}

func (cc *cameraControllerImpl) ZoomSpeed() float64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.zoomSpeed
}
