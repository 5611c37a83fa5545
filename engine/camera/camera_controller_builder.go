package camera

import "github.com/go-gl/mathgl/mgl64"

// CameraControllerOption is a functional option for configuring a CameraController during construction.
type CameraControllerOption func(*cameraControllerImpl)

// WithPosition sets the initial camera position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - CameraControllerOption: functional option to set the position
func WithPosition(x, y, z float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.position = mgl64.Vec3{x, y, z}
	}
}

// WithTarget sets the initial look-at point.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - CameraControllerOption: functional option to set the target
func WithTarget(x, y, z float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.target = mgl64.Vec3{x, y, z}
	}
}

// WithDistanceBounds sets the zoom distance limits.
//
// Parameters:
//   - minDist: closest allowed distance to the target
//   - maxDist: farthest allowed distance
//
// Returns:
//   - CameraControllerOption: functional option to set the bounds
func WithDistanceBounds(minDist, maxDist float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if minDist > 0 && maxDist >= minDist {
			cc.minDistance = minDist
			cc.maxDistance = maxDist
		}
	}
}

// WithZoomSpeed sets the zoom speed multiplier.
//
// Parameters:
//   - speed: world units per unit of zoom input
//
// Returns:
//   - CameraControllerOption: functional option to set the zoom speed
func WithZoomSpeed(speed float64) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.zoomSpeed = speed
	}
}
