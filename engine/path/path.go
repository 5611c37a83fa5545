package path

import (
	"errors"
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-orbits/common"
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultRadius is the radius of an orbit path when no WithRadius option is given.
const DefaultRadius = 2.0

// ErrInvalidSampleCount is returned by Sample when fewer than two points are requested.
var ErrInvalidSampleCount = errors.New("path: sample count must be at least 2")

type circlePath struct {
	center mgl64.Vec2
	radius float64
}

// Path is an immutable closed planar curve parameterized over [0, 1], where t=0 and t=1
// address the same point. Implementations are pure and safe for concurrent use.
type Path interface {
	// PointAt returns the point at parameter t. Any real t is accepted and wrapped
	// into [0, 1) because the path is periodic.
	//
	// Parameters:
	//   - t: the path parameter
	//
	// Returns:
	//   - mgl64.Vec2: the point on the path
	PointAt(t float64) mgl64.Vec2

	// Sample discretizes the path into n ordered points for drawing the static ring.
	// The first and last points coincide so the result is a closed polyline.
	//
	// Parameters:
	//   - n: number of points, at least 2
	//
	// Returns:
	//   - []mgl64.Vec2: n points in path order
	//   - error: ErrInvalidSampleCount when n < 2
	Sample(n int) ([]mgl64.Vec2, error)

	// Radius returns the circle radius.
	//
	// Returns:
	//   - float64: the radius in world units
	Radius() float64

	// Center returns the circle center in the orbit's local plane.
	//
	// Returns:
	//   - mgl64.Vec2: the center
	Center() mgl64.Vec2
}

var _ Path = &circlePath{}

// NewCirclePath creates a full counter-clockwise circle starting at angle 0.
//
// Parameters:
//   - options: functional options to configure the circle
//
// Returns:
//   - Path: the immutable path
func NewCirclePath(options ...PathBuilderOption) Path {
	p := &circlePath{
		radius: DefaultRadius,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

func (p *circlePath) PointAt(t float64) mgl64.Vec2 {
	angle := 2 * math.Pi * common.WrapUnit(t)
	return mgl64.Vec2{
		p.center[0] + p.radius*math.Cos(angle),
		p.center[1] + p.radius*math.Sin(angle),
	}
}

func (p *circlePath) Sample(n int) ([]mgl64.Vec2, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSampleCount, n)
	}
	points := make([]mgl64.Vec2, n)
	last := float64(n - 1)
	for i := range points {
		if i == n-1 {
			// t=1 wraps to t=0; reuse the start so the ring closes exactly.
			points[i] = points[0]
			continue
		}
		points[i] = p.PointAt(float64(i) / last)
	}
	return points, nil
}

func (p *circlePath) Radius() float64 {
	return p.radius
}

func (p *circlePath) Center() mgl64.Vec2 {
	return p.center
}
