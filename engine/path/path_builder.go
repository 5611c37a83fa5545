package path

import "github.com/go-gl/mathgl/mgl64"

// PathBuilderOption is a functional option for configuring a circle path during construction.
type PathBuilderOption func(*circlePath)

// WithRadius sets the circle radius. Non-positive values are ignored.
//
// Parameters:
//   - radius: radius in world units
//
// Returns:
//   - PathBuilderOption: functional option to set the radius
func WithRadius(radius float64) PathBuilderOption {
	return func(p *circlePath) {
		if radius > 0 {
			p.radius = radius
		}
	}
}

// WithCenter sets the circle center in the orbit's local plane.
//
// Parameters:
//   - x, y: center coordinates
//
// Returns:
//   - PathBuilderOption: functional option to set the center
func WithCenter(x, y float64) PathBuilderOption {
	return func(p *circlePath) {
		p.center = mgl64.Vec2{x, y}
	}
}
