package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// Projection selects how the camera maps view space to clip space.
type Projection int

const (
	// Orthographic keeps sprite and ring sizes independent of depth.
	Orthographic Projection = iota
	// Perspective uses a vertical field of view.
	Perspective
)

// Orthographic defaults matching the orbit sphere of radius 2 with a small margin.
const (
	DefaultHalfHeight = 2.2
	DefaultNear       = 0.0
	DefaultFar        = 3000.0
)

type cameraImpl struct {
	mu *sync.Mutex

	projection Projection
	up         mgl64.Vec3

	halfHeight float64
	fov        float64
	aspect     float64
	near       float64
	far        float64
	zoom       float64
	zoomSpeed  float64

	viewMatrix           mgl64.Mat4
	projectionMatrix     mgl64.Mat4
	viewProjectionMatrix mgl64.Mat4

	controller CameraController
}

// Camera holds projection settings and computes view/projection matrices from an attached
// CameraController. The projector reads ViewProjectionMatrix once per frame.
type Camera interface {
	// Projection returns the projection mode.
	//
	// Returns:
	//   - Projection: Orthographic or Perspective
	Projection() Projection

	// Up returns the camera's up vector.
	//
	// Returns:
	//   - mgl64.Vec3: the up vector
	Up() mgl64.Vec3

	// Fov returns the vertical field of view in radians. Only used in Perspective mode.
	//
	// Returns:
	//   - float64: field of view in radians
	Fov() float64

	// HalfHeight returns the orthographic half extent at zoom 1.
	//
	// Returns:
	//   - float64: half of the visible height in world units
	HalfHeight() float64

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float64: the aspect ratio
	Aspect() float64

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float64: near plane distance
	Near() float64

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float64: far plane distance
	Far() float64

	// Zoom returns the zoom factor. Larger values magnify the scene.
	//
	// Returns:
	//   - float64: the zoom factor
	Zoom() float64

	// ViewMatrix returns the current view matrix.
	//
	// Returns:
	//   - mgl64.Mat4: the view matrix
	ViewMatrix() mgl64.Mat4

	// ProjectionMatrix returns the current projection matrix.
	//
	// Returns:
	//   - mgl64.Mat4: the projection matrix
	ProjectionMatrix() mgl64.Mat4

	// ViewProjectionMatrix returns projection * view.
	//
	// Returns:
	//   - mgl64.Mat4: the combined matrix
	ViewProjectionMatrix() mgl64.Mat4

	// Controller returns the attached CameraController, or nil.
	//
	// Returns:
	//   - CameraController: the controller or nil
	Controller() CameraController

	// Update reads position/target from the controller and recomputes matrices.
	// Does nothing when no controller is attached.
	Update()

	// SetAspect sets the aspect ratio and recomputes matrices. Non-positive values are ignored.
	//
	// Parameters:
	//   - aspect: width / height
	SetAspect(aspect float64)

	// SetZoom sets the zoom factor and recomputes matrices. Non-positive values are ignored.
	//
	// Parameters:
	//   - zoom: the zoom factor
	SetZoom(zoom float64)

	// ZoomBy applies a scroll step. Orthographic cameras scale their zoom factor;
	// perspective cameras dolly the controller toward the target.
	//
	// Parameters:
	//   - delta: scroll amount, positive zooms in
	ZoomBy(delta float64)

	// SetController attaches a CameraController.
	//
	// Parameters:
	//   - ctrl: the controller to attach
	SetController(ctrl CameraController)
}

var _ Camera = &cameraImpl{}

// NewCamera creates an orthographic camera framing [-2.2, 2.2] vertically, or a perspective
// camera when WithProjection(Perspective) is given. Without a controller option a default
// controller at (0, 0, 10) looking at the origin is attached.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:         &sync.Mutex{},
		projection: Orthographic,
		up:         mgl64.Vec3{0, 1, 0},
		halfHeight: DefaultHalfHeight,
		fov:        45.0 * (math.Pi / 180.0),
		aspect:     1.0,
		near:       DefaultNear,
		far:        DefaultFar,
		zoom:       1.0,
		zoomSpeed:  0.1,
	}
	for _, option := range options {
		option(c)
	}
	if c.controller == nil {
		c.controller = NewCameraController()
	}
	if c.projection == Perspective && c.near <= 0 {
		c.near = 0.1
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Projection() Projection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projection
}

func (c *cameraImpl) Up() mgl64.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) Fov() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) HalfHeight() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.halfHeight
}

func (c *cameraImpl) Aspect() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) Zoom() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zoom
}

func (c *cameraImpl) ViewMatrix() mgl64.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl64.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl64.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Controller() CameraController {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller
}

func (c *cameraImpl) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float64) {
	if aspect <= 0 || math.IsInf(aspect, 0) || math.IsNaN(aspect) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetZoom(zoom float64) {
	if zoom <= 0 || math.IsInf(zoom, 0) || math.IsNaN(zoom) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zoom = zoom
	c.updateMatrices()
}

func (c *cameraImpl) ZoomBy(delta float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.projection == Perspective {
		if c.controller != nil {
			c.controller.Zoom(delta)
		}
	} else {
		next := c.zoom * (1 + delta*c.zoomSpeed)
		if next > 0 {
			c.zoom = mgl64.Clamp(next, 0.1, 20)
		}
	}
	c.updateMatrices()
}

func (c *cameraImpl) SetController(ctrl CameraController) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controller = ctrl
	c.updateMatrices()
}

// updateMatrices recalculates view, projection and view-projection matrices from the
// controller. Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	if c.controller == nil {
		return
	}
	eye := c.controller.Position()
	target := c.controller.Target()
	c.viewMatrix = mgl64.LookAtV(eye, target, c.up)

	switch c.projection {
	case Perspective:
		c.projectionMatrix = mgl64.Perspective(c.fov/c.zoom, c.aspect, c.near, c.far)
	default:
		hh := c.halfHeight / c.zoom
		hw := hh * c.aspect
		c.projectionMatrix = mgl64.Ortho(-hw, hw, -hh, hh, c.near, c.far)
	}
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
}
