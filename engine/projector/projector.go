// Package projector maps world-space points to viewport pixel coordinates.
package projector

import (
	"errors"
	"math"

	"github.com/Carmen-Shannon/oxy-orbits/common"
	"github.com/Carmen-Shannon/oxy-orbits/engine/camera"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	// ErrNoCamera is returned when projection is attempted without a camera.
	ErrNoCamera = errors.New("projector: no camera")
	// ErrNoSurface is returned when the viewport has no area.
	ErrNoSurface = errors.New("projector: viewport has no area")
	// ErrBehindCamera is returned when the point's clip-space w is zero or non-finite.
	ErrBehindCamera = errors.New("projector: point cannot be projected")
)

// Project converts a world-space point to pixel coordinates with the origin at the top-left
// of the viewport and y growing downward.
//
// Parameters:
//   - world: the point in world space
//   - cam: the camera supplying the view-projection matrix
//   - viewport: the drawing surface size in pixels
//
// Returns:
//   - mgl64.Vec2: pixel coordinates
//   - error: ErrNoCamera, ErrNoSurface or ErrBehindCamera
func Project(world mgl64.Vec3, cam camera.Camera, viewport common.Viewport) (mgl64.Vec2, error) {
	if cam == nil {
		return mgl64.Vec2{}, ErrNoCamera
	}
	if !viewport.Valid() {
		return mgl64.Vec2{}, ErrNoSurface
	}
	return ProjectMatrix(world, cam.ViewProjectionMatrix(), viewport)
}

// ProjectMatrix is Project with an explicit view-projection matrix.
//
// Parameters:
//   - world: the point in world space
//   - viewProj: projection * view
//   - viewport: the drawing surface size in pixels
//
// Returns:
//   - mgl64.Vec2: pixel coordinates
//   - error: ErrNoSurface or ErrBehindCamera
func ProjectMatrix(world mgl64.Vec3, viewProj mgl64.Mat4, viewport common.Viewport) (mgl64.Vec2, error) {
	if !viewport.Valid() {
		return mgl64.Vec2{}, ErrNoSurface
	}
	clip := viewProj.Mul4x1(world.Vec4(1))
	if math.Abs(clip[3]) < 1e-12 || math.IsNaN(clip[3]) || math.IsInf(clip[3], 0) {
		return mgl64.Vec2{}, ErrBehindCamera
	}
	ndcX := clip[0] / clip[3]
	ndcY := clip[1] / clip[3]

	w := float64(viewport.Width)
	h := float64(viewport.Height)
	screen := mgl64.Vec2{
		ndcX*w/2 + w/2,
		-ndcY*h/2 + h/2,
	}
	if math.IsNaN(screen[0]) || math.IsNaN(screen[1]) || math.IsInf(screen[0], 0) || math.IsInf(screen[1], 0) {
		return mgl64.Vec2{}, ErrBehindCamera
	}
	return screen, nil
}
