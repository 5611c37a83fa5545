// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

// Viewport is the pixel size of the render surface that projected coordinates are mapped into.
type Viewport struct {
	// Width is the surface width in pixels.
	Width int
	// Height is the surface height in pixels.
	Height int
}

// Valid reports whether the viewport has a drawable area.
//
// Returns:
//   - bool: true when both dimensions are positive
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// Aspect returns width / height, or 1 for an invalid viewport.
//
// Returns:
//   - float64: the aspect ratio
func (v Viewport) Aspect() float64 {
	if !v.Valid() {
		return 1
	}
	return float64(v.Width) / float64(v.Height)
}

// Center returns the pixel coordinates of the middle of the surface.
//
// Returns:
//   - x, y: half width and half height
func (v Viewport) Center() (x, y float64) {
	return float64(v.Width) / 2, float64(v.Height) / 2
}
