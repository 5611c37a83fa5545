package drag

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-orbits/common"
	"github.com/Carmen-Shannon/oxy-orbits/engine/node"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// DefaultSensitivity is the pixels-per-radian divisor between drag offset and rotation.
	DefaultSensitivity = 50.0
	// DefaultSmoothing is the per-frame lerp factor toward the drag target.
	DefaultSmoothing = 0.1
)

type controller struct {
	mu sync.Mutex

	committed mgl64.Vec2
	live      mgl64.Vec2
	dragging  bool

	applied     mgl64.Vec3
	group       node.Node
	sensitivity float64
	smoothing   float64
}

// Controller turns pointer-drag gestures into a smoothed rotation of the drag group.
// Gesture methods may be called from the input goroutine while Update runs on the tick.
type Controller interface {
	// Drag reports a gesture event. movement is the cumulative pointer offset since the
	// gesture began. While down the live offset follows the pointer; on release it is committed.
	//
	// Parameters:
	//   - movement: cumulative offset in pixels since the gesture began
	//   - down: true while the pointer button is held
	Drag(movement mgl64.Vec2, down bool)

	// Update eases the applied rotation toward the live offset and writes it to the group.
	//
	// Returns:
	//   - mgl64.Vec3: the applied rotation in radians
	Update() mgl64.Vec3

	// Committed returns the offset at which the last gesture was released.
	//
	// Returns:
	//   - mgl64.Vec2: the committed offset
	Committed() mgl64.Vec2

	// Live returns the offset the rotation is currently easing toward.
	//
	// Returns:
	//   - mgl64.Vec2: the live offset
	Live() mgl64.Vec2

	// Target returns the rotation derived from the live offset.
	//
	// Returns:
	//   - mgl64.Vec3: target rotation in radians
	Target() mgl64.Vec3

	// Applied returns the current smoothed rotation.
	//
	// Returns:
	//   - mgl64.Vec3: applied rotation in radians
	Applied() mgl64.Vec3

	// Dragging reports whether a gesture is in progress.
	//
	// Returns:
	//   - bool: true between press and release
	Dragging() bool

	// Reset clears the committed and live offsets. The applied rotation eases back to zero
	// over the following updates.
	Reset()
}

var _ Controller = &controller{}

// NewController creates a drag controller that writes its rotation onto group.
//
// Parameters:
//   - group: the drag group node; may be nil
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the controller
func NewController(group node.Node, options ...ControllerBuilderOption) Controller {
	c := &controller{
		group:       group,
		sensitivity: DefaultSensitivity,
		smoothing:   DefaultSmoothing,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *controller) Drag(movement mgl64.Vec2, down bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !finite2(movement) {
		return
	}
	if down {
		c.live = c.committed.Sub(movement)
		c.dragging = true
		return
	}
	c.committed = c.live
	c.dragging = false
}

func (c *controller) Update() mgl64.Vec3 {
	target := c.Target()
	next := common.LerpVec3(c.applied, target, c.smoothing)
	if common.Finite(next) {
		c.applied = next
	}
	if c.group != nil {
		c.group.SetRotation(c.applied[0], c.applied[1], c.applied[2])
	}
	return c.applied
}

func (c *controller) Target() mgl64.Vec3 {
	live := c.Live()
	// Horizontal motion spins about Y, vertical motion about X.
	return mgl64.Vec3{live[1] / c.sensitivity, live[0] / c.sensitivity, 0}
}

func (c *controller) Committed() mgl64.Vec2 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.committed
}

func (c *controller) Live() mgl64.Vec2 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.live
}

func (c *controller) Applied() mgl64.Vec3 {
	return c.applied
}

func (c *controller) Dragging() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dragging
}

func (c *controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.committed = mgl64.Vec2{}
	c.live = mgl64.Vec2{}
	c.dragging = false
}

func finite2(v mgl64.Vec2) bool {
	return common.Finite(mgl64.Vec3{v[0], v[1], 0})
}
