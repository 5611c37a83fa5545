package node

import "github.com/go-gl/mathgl/mgl64"

// NodeBuilderOption is a functional option for configuring a Node during construction.
type NodeBuilderOption func(*node)

// WithID sets the ID of the Node.
//
// Parameters:
//   - id: identifier for the Node
//
// Returns:
//   - NodeBuilderOption: functional option to set the ID
func WithID(id uint64) NodeBuilderOption {
	return func(n *node) {
		n.id = id
	}
}

// WithName sets the debug name of the Node.
//
// Parameters:
//   - name: the name
//
// Returns:
//   - NodeBuilderOption: functional option to set the name
func WithName(name string) NodeBuilderOption {
	return func(n *node) {
		n.name = name
	}
}

// WithPosition sets the initial local translation.
//
// Parameters:
//   - x, y, z: translation relative to the parent
//
// Returns:
//   - NodeBuilderOption: functional option to set the position
func WithPosition(x, y, z float64) NodeBuilderOption {
	return func(n *node) {
		n.position = mgl64.Vec3{x, y, z}
	}
}

// WithRotation sets the initial local XYZ Euler rotation in radians.
//
// Parameters:
//   - rx, ry, rz: rotation around each axis
//
// Returns:
//   - NodeBuilderOption: functional option to set the rotation
func WithRotation(rx, ry, rz float64) NodeBuilderOption {
	return func(n *node) {
		n.rotation = mgl64.Vec3{rx, ry, rz}
	}
}

// WithScale sets the initial local scale.
//
// Parameters:
//   - sx, sy, sz: scale factors
//
// Returns:
//   - NodeBuilderOption: functional option to set the scale
func WithScale(sx, sy, sz float64) NodeBuilderOption {
	return func(n *node) {
		n.scale = mgl64.Vec3{sx, sy, sz}
	}
}

// WithEnabled sets whether the Node starts enabled.
//
// Parameters:
//   - enabled: true to take part in drawing
//
// Returns:
//   - NodeBuilderOption: functional option to set the enabled state
func WithEnabled(enabled bool) NodeBuilderOption {
	return func(n *node) {
		n.enabled.Store(enabled)
	}
}

// WithSprite attaches a sprite at construction.
//
// Parameters:
//   - s: the sprite
//
// Returns:
//   - NodeBuilderOption: functional option to set the sprite
func WithSprite(s *Sprite) NodeBuilderOption {
	return func(n *node) {
		n.sprite = s
	}
}

// WithLine attaches a polyline at construction.
//
// Parameters:
//   - l: the line
//
// Returns:
//   - NodeBuilderOption: functional option to set the line
func WithLine(l *Line) NodeBuilderOption {
	return func(n *node) {
		n.line = l
	}
}
