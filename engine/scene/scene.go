package scene

import (
	"fmt"
	"image"
	"log"
	"math/rand/v2"
	"sync"

	"github.com/Carmen-Shannon/oxy-orbits/common"
	"github.com/Carmen-Shannon/oxy-orbits/engine/animator"
	"github.com/Carmen-Shannon/oxy-orbits/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbits/engine/config"
	"github.com/Carmen-Shannon/oxy-orbits/engine/drag"
	"github.com/Carmen-Shannon/oxy-orbits/engine/node"
	"github.com/Carmen-Shannon/oxy-orbits/engine/orbit"
	"github.com/Carmen-Shannon/oxy-orbits/engine/path"
	"github.com/Carmen-Shannon/oxy-orbits/engine/registry"
	"github.com/go-gl/mathgl/mgl64"
)

// Ring and sprite appearance.
const (
	RingSamples    = 100
	RingDashSize   = 0.03
	RingGapSize    = 0.03
	RingColor      = "#000"
	DefaultDotSize = 0.01
)

// Handle identifies an orbit or label for the lifetime of a Stage. Handles are never reused.
type Handle uint64

// OrbitInfo is a read-only view of one orbit for drawing.
type OrbitInfo struct {
	Handle Handle
	Node   node.Node
	Path   path.Path
	Labels []LabelInfo
}

// LabelInfo is a read-only view of one label for drawing.
type LabelInfo struct {
	Handle Handle
	Text   string
	Color  string
	Node   node.Node
	Phase  float64
}

type orbitEntry struct {
	handle Handle
	cfg    config.OrbitConfig
	path   path.Path
	node   node.Node
	labels []Handle
}

type labelEntry struct {
	handle   Handle
	orbit    Handle
	cfg      config.LabelConfig
	node     node.Node
	animator animator.LabelAnimator
	// owner is true when this label's text won the registry slot.
	owner bool
}

type stage struct {
	mu *sync.RWMutex

	root      node.Node
	dragGroup node.Node
	drift     *orbit.Drift
	driftNode node.Node

	cam         camera.Camera
	dragCtl     drag.Controller
	dragOptions []drag.ControllerBuilderOption
	registry    registry.Registry
	rng         *rand.Rand
	dot         image.Image
	dotSize     float64
	radius      float64

	orbits     map[Handle]*orbitEntry
	labels     map[Handle]*labelEntry
	orbitOrder []Handle
	labelOrder []Handle
	nextID     uint64

	now        float64
	lastErr    string
	logSkipped bool
}

// Stage is the arena that owns every orbit and label in the scene. It builds the node
// hierarchy root -> drag group -> drift group -> orbit -> label, assigns stable handles and
// runs the per-frame update in a fixed order: drag and drift smoothing, label motion,
// projection into the registry. Stage methods are safe for concurrent use; Tick should be
// called from a single goroutine.
type Stage interface {
	// Camera returns the stage camera.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Drag returns the drag controller that gesture sources feed.
	//
	// Returns:
	//   - drag.Controller: the controller
	Drag() drag.Controller

	// Drift returns the shared drift controller.
	//
	// Returns:
	//   - *orbit.Drift: the drift controller
	Drift() *orbit.Drift

	// Registry returns the label registry the overlay reads.
	//
	// Returns:
	//   - registry.Registry: the registry
	Registry() registry.Registry

	// Root returns the root node.
	//
	// Returns:
	//   - node.Node: the root of the hierarchy
	Root() node.Node

	// Now returns the clock time of the most recent Tick.
	//
	// Returns:
	//   - float64: clock time in seconds
	Now() float64

	// Load mounts every orbit of a scene configuration in order.
	//
	// Parameters:
	//   - cfg: the scene
	//
	// Returns:
	//   - []Handle: orbit handles in configuration order
	Load(cfg config.SceneConfig) []Handle

	// AddOrbit creates an orbit with its tilt applied and mounts its labels at the current clock time.
	//
	// Parameters:
	//   - cfg: the orbit configuration
	//
	// Returns:
	//   - Handle: the orbit handle
	AddOrbit(cfg config.OrbitConfig) Handle

	// AddLabel mounts a label on an existing orbit at the current clock time.
	//
	// Parameters:
	//   - orbit: the orbit handle
	//   - cfg: the label configuration
	//
	// Returns:
	//   - Handle: the label handle
	//   - error: ErrUnknownOrbit if the orbit does not exist
	AddLabel(orbit Handle, cfg config.LabelConfig) (Handle, error)

	// RemoveLabel unmounts a label. Its animator stops and its registry entry is dropped
	// if it owns it.
	//
	// Parameters:
	//   - h: the label handle
	//
	// Returns:
	//   - bool: true if the label existed
	RemoveLabel(h Handle) bool

	// RemoveOrbit unmounts an orbit and all its labels.
	//
	// Parameters:
	//   - h: the orbit handle
	//
	// Returns:
	//   - bool: true if the orbit existed
	RemoveOrbit(h Handle) bool

	// Tick advances the stage to clock time now and projects labels into viewport.
	//
	// Parameters:
	//   - now: clock time in seconds since the stage started
	//   - viewport: surface size in pixels
	//
	// Returns:
	//   - error: projection failures for this tick, or nil; the stale positions are kept
	Tick(now float64, viewport common.Viewport) error

	// Orbits returns a snapshot of every orbit and its labels in creation order.
	//
	// Returns:
	//   - []OrbitInfo: the orbits
	Orbits() []OrbitInfo

	// LabelWorldPosition returns a label's anchor in world space.
	//
	// Parameters:
	//   - h: the label handle
	//
	// Returns:
	//   - mgl64.Vec3: the world position
	//   - bool: false if the label does not exist
	LabelWorldPosition(h Handle) (mgl64.Vec3, bool)

	// LabelCount returns the number of mounted labels.
	//
	// Returns:
	//   - int: the label count
	LabelCount() int
}

var _ Stage = &stage{}

// NewStage creates an empty stage viewed through cam. cam must not be nil.
//
// Parameters:
//   - cam: the camera used for projection (must not be nil)
//   - options: functional options to further configure the stage
//
// Returns:
//   - Stage: the newly created stage
func NewStage(cam camera.Camera, options ...StageBuilderOption) Stage {
	if cam == nil {
		panic("scene: NewStage requires a non-nil Camera")
	}

	s := &stage{
		mu:      &sync.RWMutex{},
		cam:     cam,
		dotSize: DefaultDotSize,
		radius:  path.DefaultRadius,
		orbits:  make(map[Handle]*orbitEntry),
		labels:  make(map[Handle]*labelEntry),
		nextID:  1,
	}
	for _, option := range options {
		option(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if s.registry == nil {
		s.registry = registry.NewRegistry()
	}

	s.root = node.NewNode(node.WithID(s.allocID()), node.WithName("root"))
	s.dragGroup = node.NewNode(node.WithID(s.allocID()), node.WithName("drag"))
	s.driftNode = node.NewNode(node.WithID(s.allocID()), node.WithName("drift"))
	s.root.Add(s.dragGroup)
	s.dragGroup.Add(s.driftNode)

	s.dragCtl = drag.NewController(s.dragGroup, s.dragOptions...)
	s.drift = orbit.NewDrift(s.driftNode)
	return s
}

func (s *stage) allocID() uint64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *stage) Camera() camera.Camera {
	return s.cam
}

func (s *stage) Drag() drag.Controller {
	return s.dragCtl
}

func (s *stage) Drift() *orbit.Drift {
	return s.drift
}

func (s *stage) Registry() registry.Registry {
	return s.registry
}

func (s *stage) Root() node.Node {
	return s.root
}

func (s *stage) Now() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now
}

func (s *stage) Load(cfg config.SceneConfig) []Handle {
	handles := make([]Handle, 0, len(cfg.Orbits))
	for _, o := range cfg.Orbits {
		handles = append(handles, s.AddOrbit(o))
	}
	return handles
}

func (s *stage) AddOrbit(cfg config.OrbitConfig) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := Handle(s.allocID())
	p := path.NewCirclePath(path.WithRadius(s.radius))
	n := node.NewNode(node.WithID(uint64(h)), node.WithName(fmt.Sprintf("orbit-%d", h)))
	orbit.ApplyTilt(n, mgl64.Vec3(cfg.Rotation))

	if ring, err := p.Sample(RingSamples); err == nil {
		points := make([]mgl64.Vec3, len(ring))
		for i, pt := range ring {
			points[i] = mgl64.Vec3{pt[0], pt[1], 0}
		}
		n.SetLine(&node.Line{Points: points, DashSize: RingDashSize, GapSize: RingGapSize, Color: RingColor})
	}
	s.driftNode.Add(n)

	o := &orbitEntry{handle: h, cfg: cfg, path: p, node: n}
	s.orbits[h] = o
	s.orbitOrder = append(s.orbitOrder, h)

	for _, l := range cfg.Labels {
		s.mountLabel(o, l)
	}
	return h
}

func (s *stage) AddLabel(orbitHandle Handle, cfg config.LabelConfig) (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orbits[orbitHandle]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownOrbit, orbitHandle)
	}
	return s.mountLabel(o, cfg), nil
}

// mountLabel creates the label node and animator and registers the label. Caller must hold s.mu.
func (s *stage) mountLabel(o *orbitEntry, cfg config.LabelConfig) Handle {
	h := Handle(s.allocID())
	n := node.NewNode(node.WithID(uint64(h)), node.WithName(cfg.Text))
	n.SetSprite(&node.Sprite{Image: s.dot, Scale: s.dotSize})
	o.node.Add(n)

	a := animator.NewLabelAnimator(o.path, s.now,
		animator.WithPos(cfg.Pos),
		animator.WithTarget(n),
		animator.WithRand(s.rng),
	)
	owner := s.registry.Register(cfg.Text, cfg.Color, n)

	s.labels[h] = &labelEntry{handle: h, orbit: o.handle, cfg: cfg, node: n, animator: a, owner: owner}
	s.labelOrder = append(s.labelOrder, h)
	o.labels = append(o.labels, h)
	return h
}

func (s *stage) RemoveLabel(h Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unmountLabel(h)
}

// unmountLabel detaches a label. Caller must hold s.mu.
func (s *stage) unmountLabel(h Handle) bool {
	l, ok := s.labels[h]
	if !ok {
		return false
	}
	delete(s.labels, h)
	s.labelOrder = removeHandle(s.labelOrder, h)
	if o, ok := s.orbits[l.orbit]; ok {
		o.labels = removeHandle(o.labels, h)
		o.node.Remove(l.node)
	}
	if l.owner {
		s.registry.Remove(l.cfg.Text)
	}
	return true
}

func (s *stage) RemoveOrbit(h Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orbits[h]
	if !ok {
		return false
	}
	for _, lh := range append([]Handle(nil), o.labels...) {
		s.unmountLabel(lh)
	}
	delete(s.orbits, h)
	s.orbitOrder = removeHandle(s.orbitOrder, h)
	s.driftNode.Remove(o.node)
	return true
}

func (s *stage) Tick(now float64, viewport common.Viewport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now

	if viewport.Valid() {
		s.cam.SetAspect(viewport.Aspect())
	}
	s.cam.Update()

	s.dragCtl.Update()
	s.drift.Update(now)

	for _, h := range s.labelOrder {
		s.labels[h].animator.Advance(now)
	}

	err := s.registry.UpdateProjections(s.cam, viewport)
	if err != nil && s.logSkipped {
		if msg := err.Error(); msg != s.lastErr {
			log.Printf("[Scene] projection skipped: %v", err)
			s.lastErr = msg
		}
	}
	return err
}

func (s *stage) Orbits() []OrbitInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]OrbitInfo, 0, len(s.orbitOrder))
	for _, oh := range s.orbitOrder {
		o := s.orbits[oh]
		info := OrbitInfo{Handle: o.handle, Node: o.node, Path: o.path, Labels: make([]LabelInfo, 0, len(o.labels))}
		for _, lh := range o.labels {
			l := s.labels[lh]
			info.Labels = append(info.Labels, LabelInfo{
				Handle: l.handle,
				Text:   l.cfg.Text,
				Color:  l.cfg.Color,
				Node:   l.node,
				Phase:  l.animator.Phase(),
			})
		}
		out = append(out, info)
	}
	return out
}

func (s *stage) LabelWorldPosition(h Handle) (mgl64.Vec3, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.labels[h]
	if !ok {
		return mgl64.Vec3{}, false
	}
	return l.node.WorldPosition(), true
}

func (s *stage) LabelCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.labels)
}

func removeHandle(hs []Handle, h Handle) []Handle {
	for i, x := range hs {
		if x == h {
			return append(hs[:i], hs[i+1:]...)
		}
	}
	return hs
}
