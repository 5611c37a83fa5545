// Package orbit holds the two rotation sources of an orbit: the static tilt read from
// configuration and the ambient drift shared by every orbit.
package orbit

import (
	"github.com/Carmen-Shannon/oxy-orbits/common"
	"github.com/Carmen-Shannon/oxy-orbits/engine/node"
	"github.com/go-gl/mathgl/mgl64"
)

// DriftSmoothing is the per-frame lerp factor toward the drift target.
const DriftSmoothing = 0.1

// Tilt converts an orbit's configured Euler angles in degrees to radians.
//
// Parameters:
//   - degrees: rotation around X, Y and Z in degrees
//
// Returns:
//   - mgl64.Vec3: the rotation in radians
func Tilt(degrees mgl64.Vec3) mgl64.Vec3 {
	return common.DegreesToRadians(degrees)
}

// ApplyTilt sets the static tilt on an orbit node. It is called once when the orbit is created.
//
// Parameters:
//   - n: the orbit node
//   - degrees: rotation around X, Y and Z in degrees
func ApplyTilt(n node.Node, degrees mgl64.Vec3) {
	r := Tilt(degrees)
	n.SetRotation(r[0], r[1], r[2])
}

// DriftTarget returns the rotation the drift group eases toward at the given elapsed time.
//
// Parameters:
//   - elapsed: clock time in seconds
//
// Returns:
//   - mgl64.Vec3: target rotation in radians
func DriftTarget(elapsed float64) mgl64.Vec3 {
	return mgl64.Vec3{elapsed / 5, elapsed / 5, elapsed / 25}
}

// Drift smooths the shared orbit-group rotation toward a slowly growing target.
type Drift struct {
	applied mgl64.Vec3
	group   node.Node
}

// NewDrift creates a drift controller writing onto group. group may be nil.
//
// Parameters:
//   - group: the drift group node
//
// Returns:
//   - *Drift: the controller, starting at zero rotation
func NewDrift(group node.Node) *Drift {
	return &Drift{group: group}
}

// Update moves the applied rotation a tenth of the way toward DriftTarget(elapsed) and writes it
// to the group node.
//
// Parameters:
//   - elapsed: clock time in seconds
//
// Returns:
//   - mgl64.Vec3: the applied rotation
func (d *Drift) Update(elapsed float64) mgl64.Vec3 {
	next := common.LerpVec3(d.applied, DriftTarget(elapsed), DriftSmoothing)
	if common.Finite(next) {
		d.applied = next
	}
	if d.group != nil {
		d.group.SetRotation(d.applied[0], d.applied[1], d.applied[2])
	}
	return d.applied
}

// Applied returns the current drift rotation in radians.
func (d *Drift) Applied() mgl64.Vec3 {
	return d.applied
}
