package camera

import "github.com/go-gl/mathgl/mgl64"

// CameraController owns the camera's positional state. Camera reads from the controller
// and computes view/projection matrices.
type CameraController interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl64.Vec3: world-space camera position
	Position() mgl64.Vec3

	// Target returns the look-at point.
	//
	// Returns:
	//   - mgl64.Vec3: world-space target position
	Target() mgl64.Vec3

	// SetPosition sets the camera's world-space position directly.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetPosition(x, y, z float64)

	// SetTarget sets the look-at point.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetTarget(x, y, z float64)

	// Distance returns the distance between position and target.
	//
	// Returns:
	//   - float64: distance in world units
	Distance() float64

	// Zoom moves the camera along its view direction. Positive delta moves toward the target.
	// The distance is clamped to the controller's bounds.
	//
	// Parameters:
	//   - delta: zoom amount scaled by ZoomSpeed
	Zoom(delta float64)

	// ZoomSpeed returns the zoom speed multiplier.
	//
	// Returns:
	//   - float64: multiplier for zoom input
	ZoomSpeed() float64
}
