package scene

import (
	"errors"
	"image"
	"math/rand/v2"

	"github.com/Carmen-Shannon/oxy-orbits/engine/drag"
	"github.com/Carmen-Shannon/oxy-orbits/engine/registry"
)

// ErrUnknownOrbit is returned when a label is added to an orbit handle the stage does not hold.
var ErrUnknownOrbit = errors.New("scene: unknown orbit")

// StageBuilderOption is a functional option for configuring a Stage.
// Use the With* functions to create options.
type StageBuilderOption func(s *stage)

// WithRand sets the random source label speed factors are drawn from. Seed it for
// reproducible runs.
//
// Parameters:
//   - rng: the random source
//
// Returns:
//   - StageBuilderOption: option function to apply
func WithRand(rng *rand.Rand) StageBuilderOption {
	return func(s *stage) {
		s.rng = rng
	}
}

// WithSeed is WithRand with a PCG source seeded from seed.
//
// Parameters:
//   - seed: the seed
//
// Returns:
//   - StageBuilderOption: option function to apply
func WithSeed(seed uint64) StageBuilderOption {
	return func(s *stage) {
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRegistry replaces the label registry.
//
// Parameters:
//   - r: the registry
//
// Returns:
//   - StageBuilderOption: option function to apply
func WithRegistry(r registry.Registry) StageBuilderOption {
	return func(s *stage) {
		s.registry = r
	}
}

// WithDragOptions configures the drag controller the stage creates for its drag group.
//
// Parameters:
//   - options: drag controller options such as sensitivity or smoothing
//
// Returns:
//   - StageBuilderOption: option function to apply
func WithDragOptions(options ...drag.ControllerBuilderOption) StageBuilderOption {
	return func(s *stage) {
		s.dragOptions = append(s.dragOptions, options...)
	}
}

// WithDotImage sets the bitmap attached to every label as its sprite.
//
// Parameters:
//   - img: the dot bitmap
//
// Returns:
//   - StageBuilderOption: option function to apply
func WithDotImage(img image.Image) StageBuilderOption {
	return func(s *stage) {
		s.dot = img
	}
}

// WithDotSize sets the sprite size as a fraction of the viewport height.
//
// Parameters:
//   - size: the sprite size
//
// Returns:
//   - StageBuilderOption: option function to apply
func WithDotSize(size float64) StageBuilderOption {
	return func(s *stage) {
		if size > 0 {
			s.dotSize = size
		}
	}
}

// WithOrbitRadius sets the radius of every orbit path.
//
// Parameters:
//   - r: the radius in world units
//
// Returns:
//   - StageBuilderOption: option function to apply
func WithOrbitRadius(r float64) StageBuilderOption {
	return func(s *stage) {
		if r > 0 {
			s.radius = r
		}
	}
}

// WithProjectionLogging logs projection failures when they change.
//
// Parameters:
//   - enabled: true to log
//
// Returns:
//   - StageBuilderOption: option function to apply
func WithProjectionLogging(enabled bool) StageBuilderOption {
	return func(s *stage) {
		s.logSkipped = enabled
	}
}
