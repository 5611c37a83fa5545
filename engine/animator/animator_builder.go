package animator

import (
	"math/rand/v2"

	"github.com/Carmen-Shannon/oxy-orbits/engine/node"
)

// LabelAnimatorBuilderOption is a functional option for configuring a LabelAnimator during construction.
type LabelAnimatorBuilderOption func(*labelAnimator)

// WithPos sets the configured starting position on the path.
//
// Parameters:
//   - pos: path parameter, normally in [0, 1]
//
// Returns:
//   - LabelAnimatorBuilderOption: functional option to set the position
func WithPos(pos float64) LabelAnimatorBuilderOption {
	return func(a *labelAnimator) {
		a.pos = pos
	}
}

// WithTarget sets the node that receives the anchor position every Advance.
//
// Parameters:
//   - n: the label node
//
// Returns:
//   - LabelAnimatorBuilderOption: functional option to set the target
func WithTarget(n node.Node) LabelAnimatorBuilderOption {
	return func(a *labelAnimator) {
		a.target = n
	}
}

// WithRand sets the random source the speed factor is drawn from. Without it a
// randomly seeded source is used.
//
// Parameters:
//   - rng: the random source
//
// Returns:
//   - LabelAnimatorBuilderOption: functional option to set the random source
func WithRand(rng *rand.Rand) LabelAnimatorBuilderOption {
	return func(a *labelAnimator) {
		a.rng = rng
	}
}

// WithSpeedFactor fixes the speed factor instead of drawing it. Values outside
// [MinSpeedFactor, MaxSpeedFactor] are clamped.
//
// Parameters:
//   - factor: seconds per lap
//
// Returns:
//   - LabelAnimatorBuilderOption: functional option to set the speed factor
func WithSpeedFactor(factor int) LabelAnimatorBuilderOption {
	return func(a *labelAnimator) {
		a.speedFactor = min(max(factor, MinSpeedFactor), MaxSpeedFactor)
		a.speedSet = true
	}
}
