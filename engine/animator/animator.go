package animator

import (
	"math/rand/v2"

	"github.com/Carmen-Shannon/oxy-orbits/engine/node"
	"github.com/Carmen-Shannon/oxy-orbits/engine/path"
	"github.com/go-gl/mathgl/mgl64"
)

// Speed factor bounds, inclusive. A label needs speedFactor clock seconds for one lap.
const (
	MinSpeedFactor = 50
	MaxSpeedFactor = 100
)

type labelAnimator struct {
	path   path.Path
	target node.Node
	rng    *rand.Rand

	pos         float64
	speedFactor int
	speedSet    bool

	phase      float64
	origin     float64
	cycleStart float64
	lastFrame  float64
}

// LabelAnimator moves one label along its orbit path. Each call to Advance recomputes the
// phase from the time elapsed since the current cycle began, so the position never
// accumulates per-frame error. Phase stays in [0, 1] after every Advance; crossing 1 restarts
// the sweep from 0 on the same tick.
//
// A LabelAnimator is owned by the frame tick and is not safe for concurrent use.
type LabelAnimator interface {
	// Advance updates the phase for the given clock time and writes the new anchor onto the
	// target node.
	//
	// Parameters:
	//   - now: clock time in seconds
	//
	// Returns:
	//   - mgl64.Vec2: the anchor in the orbit's local plane
	Advance(now float64) mgl64.Vec2

	// Phase returns the current path parameter.
	//
	// Returns:
	//   - float64: the phase, in [0, 1] after any Advance
	Phase() float64

	// Anchor returns the point at the current phase.
	//
	// Returns:
	//   - mgl64.Vec2: the anchor in the orbit's local plane
	Anchor() mgl64.Vec2

	// SpeedFactor returns the seconds-per-lap divisor drawn at construction.
	//
	// Returns:
	//   - int: a value in [MinSpeedFactor, MaxSpeedFactor]
	SpeedFactor() int

	// CycleStart returns the clock time at which the current sweep began.
	//
	// Returns:
	//   - float64: clock time in seconds
	CycleStart() float64

	// LastFrame returns the clock time of the most recent Advance, or the mount time.
	//
	// Returns:
	//   - float64: clock time in seconds
	LastFrame() float64

	// Target returns the node the anchor is written to, or nil.
	//
	// Returns:
	//   - node.Node: the label node
	Target() node.Node
}

var _ LabelAnimator = &labelAnimator{}

// NewLabelAnimator mounts a label on p at mountTime. The initial phase is the configured
// position and the anchor is written to the target node immediately.
//
// Parameters:
//   - p: the orbit path; must not be nil
//   - mountTime: clock time in seconds at which the label appears
//   - options: functional options to configure the animator
//
// Returns:
//   - LabelAnimator: the mounted animator
func NewLabelAnimator(p path.Path, mountTime float64, options ...LabelAnimatorBuilderOption) LabelAnimator {
	if p == nil {
		panic("animator: path must not be nil")
	}
	a := &labelAnimator{
		path: p,
	}
	for _, option := range options {
		option(a)
	}

	if !a.speedSet {
		rng := a.rng
		if rng == nil {
			rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
		a.speedFactor = rng.IntN(MaxSpeedFactor-MinSpeedFactor+1) + MinSpeedFactor
	}

	a.phase = a.pos
	a.origin = a.pos
	a.cycleStart = mountTime
	a.lastFrame = mountTime
	a.writeAnchor()
	return a
}

func (a *labelAnimator) Advance(now float64) mgl64.Vec2 {
	switch {
	case a.phase > 1:
		a.rewind(now, 0)
	case a.phase < 0:
		a.rewind(now, 1)
	default:
		a.phase = a.origin + (now-a.cycleStart)/float64(a.speedFactor)
		if a.phase > 1 {
			a.rewind(now, 0)
		} else if a.phase < 0 {
			a.rewind(now, 1)
		}
	}
	a.lastFrame = now
	return a.writeAnchor()
}

// rewind starts a new sweep at phase from the given time.
func (a *labelAnimator) rewind(now, phase float64) {
	a.cycleStart = now
	a.origin = phase
	a.phase = phase
}

func (a *labelAnimator) writeAnchor() mgl64.Vec2 {
	anchor := a.path.PointAt(a.phase)
	if a.target != nil {
		a.target.SetPosition(anchor[0], anchor[1], 0)
	}
	return anchor
}

func (a *labelAnimator) Phase() float64 {
	return a.phase
}

func (a *labelAnimator) Anchor() mgl64.Vec2 {
	return a.path.PointAt(a.phase)
}

func (a *labelAnimator) SpeedFactor() int {
	return a.speedFactor
}

func (a *labelAnimator) CycleStart() float64 {
	return a.cycleStart
}

func (a *labelAnimator) LastFrame() float64 {
	return a.lastFrame
}

func (a *labelAnimator) Target() node.Node {
	return a.target
}
