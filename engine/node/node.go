package node

import (
	"image"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-orbits/common"
	"github.com/go-gl/mathgl/mgl64"
)

// Sprite is a screen-aligned bitmap drawn at a node's world position.
type Sprite struct {
	// Image is the bitmap drawn centered on the node.
	Image image.Image
	// Scale is the sprite size. With SizeAttenuation off it is a fraction of the viewport height.
	Scale float64
	// SizeAttenuation scales the sprite with distance/zoom when true.
	SizeAttenuation bool
}

// Line is a polyline drawn in the node's local space.
type Line struct {
	// Points are local-space vertices in drawing order.
	Points []mgl64.Vec3
	// DashSize and GapSize describe the dash pattern in world units. Zero DashSize draws solid.
	DashSize, GapSize float64
	// Color is a hex color string such as "#000".
	Color string
}

type node struct {
	id      uint64
	name    string
	enabled atomic.Bool

	position mgl64.Vec3
	rotation mgl64.Vec3
	scale    mgl64.Vec3

	parent   *node
	children []*node

	sprite *Sprite
	line   *Line
}

// Node is a transform in the scene hierarchy. Its world matrix is the product of every
// ancestor's local matrix with its own, so nested rotations compose instead of overwriting
// each other. Nodes are mutated only from the frame tick.
type Node interface {
	// ID returns the node's identifier.
	//
	// Returns:
	//   - uint64: the node ID
	ID() uint64

	// Name returns the debug name given at construction.
	//
	// Returns:
	//   - string: the name
	Name() string

	// Enabled reports whether the node and its subtree take part in drawing and projection.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled toggles the node.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// Position returns the local translation.
	//
	// Returns:
	//   - mgl64.Vec3: translation relative to the parent
	Position() mgl64.Vec3

	// SetPosition sets the local translation.
	//
	// Parameters:
	//   - x, y, z: new translation
	SetPosition(x, y, z float64)

	// Rotation returns the local XYZ Euler rotation in radians.
	//
	// Returns:
	//   - mgl64.Vec3: rotation around X, Y and Z
	Rotation() mgl64.Vec3

	// SetRotation sets the local XYZ Euler rotation in radians.
	//
	// Parameters:
	//   - rx, ry, rz: rotation around each axis
	SetRotation(rx, ry, rz float64)

	// Scale returns the local scale.
	//
	// Returns:
	//   - mgl64.Vec3: scale factors
	Scale() mgl64.Vec3

	// SetScale sets the local scale.
	//
	// Parameters:
	//   - sx, sy, sz: scale factors
	SetScale(sx, sy, sz float64)

	// LocalMatrix returns T * R * S for this node alone.
	//
	// Returns:
	//   - mgl64.Mat4: the local transform
	LocalMatrix() mgl64.Mat4

	// WorldMatrix returns the product of all ancestor local matrices and this node's.
	//
	// Returns:
	//   - mgl64.Mat4: the world transform
	WorldMatrix() mgl64.Mat4

	// WorldPosition returns the translation of WorldMatrix.
	//
	// Returns:
	//   - mgl64.Vec3: world-space position of the node origin
	WorldPosition() mgl64.Vec3

	// Parent returns the parent node, or nil for a root.
	//
	// Returns:
	//   - Node: the parent or nil
	Parent() Node

	// Children returns a copy of the child list.
	//
	// Returns:
	//   - []Node: the children in attach order
	Children() []Node

	// Add attaches child under this node, detaching it from any previous parent.
	//
	// Parameters:
	//   - child: the node to attach
	Add(child Node)

	// Remove detaches child if it is a direct child of this node.
	//
	// Parameters:
	//   - child: the node to detach
	Remove(child Node)

	// Sprite returns the attached sprite, or nil.
	//
	// Returns:
	//   - *Sprite: the sprite or nil
	Sprite() *Sprite

	// SetSprite attaches a sprite. Pass nil to detach.
	//
	// Parameters:
	//   - s: the sprite
	SetSprite(s *Sprite)

	// Line returns the attached polyline, or nil.
	//
	// Returns:
	//   - *Line: the line or nil
	Line() *Line

	// SetLine attaches a polyline. Pass nil to detach.
	//
	// Parameters:
	//   - l: the line
	SetLine(l *Line)

	// Visible reports whether this node and every ancestor are enabled.
	//
	// Returns:
	//   - bool: true when the whole chain is enabled
	Visible() bool
}

var _ Node = &node{}

// NewNode creates a detached node configured with the given options. Nodes start enabled
// with unit scale.
//
// Parameters:
//   - options: functional options to configure the node
//
// Returns:
//   - Node: the newly created node
func NewNode(options ...NodeBuilderOption) Node {
	n := &node{
		scale: mgl64.Vec3{1, 1, 1},
	}
	n.enabled.Store(true)
	for _, option := range options {
		option(n)
	}
	return n
}

func (n *node) ID() uint64 {
	return n.id
}

func (n *node) Name() string {
	return n.name
}

func (n *node) Enabled() bool {
	return n.enabled.Load()
}

func (n *node) SetEnabled(enabled bool) {
	n.enabled.Store(enabled)
}

func (n *node) Position() mgl64.Vec3 {
	return n.position
}

func (n *node) SetPosition(x, y, z float64) {
	n.position = mgl64.Vec3{x, y, z}
}

func (n *node) Rotation() mgl64.Vec3 {
	return n.rotation
}

func (n *node) SetRotation(rx, ry, rz float64) {
	n.rotation = mgl64.Vec3{rx, ry, rz}
}

func (n *node) Scale() mgl64.Vec3 {
	return n.scale
}

func (n *node) SetScale(sx, sy, sz float64) {
	n.scale = mgl64.Vec3{sx, sy, sz}
}

func (n *node) LocalMatrix() mgl64.Mat4 {
	return common.ComposeTRS(n.position, n.rotation, n.scale)
}

func (n *node) WorldMatrix() mgl64.Mat4 {
	m := n.LocalMatrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul4(m)
	}
	return m
}

func (n *node) WorldPosition() mgl64.Vec3 {
	return common.MatrixPosition(n.WorldMatrix())
}

func (n *node) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *node) Children() []Node {
	out := make([]Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *node) Add(child Node) {
	c, ok := child.(*node)
	if !ok || c == nil || c == n {
		return
	}
	if c.parent != nil {
		c.parent.Remove(c)
	}
	c.parent = n
	n.children = append(n.children, c)
}

func (n *node) Remove(child Node) {
	c, ok := child.(*node)
	if !ok || c == nil {
		return
	}
	for i, existing := range n.children {
		if existing == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return
		}
	}
}

func (n *node) Sprite() *Sprite {
	return n.sprite
}

func (n *node) SetSprite(s *Sprite) {
	n.sprite = s
}

func (n *node) Line() *Line {
	return n.line
}

func (n *node) SetLine(l *Line) {
	n.line = l
}

func (n *node) Visible() bool {
	for p := n; p != nil; p = p.parent {
		if !p.enabled.Load() {
			return false
		}
	}
	return true
}
