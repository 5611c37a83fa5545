package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-orbits/common"
	"github.com/Carmen-Shannon/oxy-orbits/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbits/engine/node"
	"github.com/Carmen-Shannon/oxy-orbits/engine/projector"
	"github.com/go-gl/mathgl/mgl64"
)

// Anchor supplies the world-space position of a label each frame.
type Anchor interface {
	WorldPosition() mgl64.Vec3
}

// Entry is a copy of one registered label as the overlay sees it.
type Entry struct {
	// Label is the text and the registry key.
	Label string
	// Color is the chip color, or empty for the default chip background.
	Color string
	// ScreenPos is the last successful projection, or nil if none has succeeded yet.
	ScreenPos *mgl64.Vec2
}

type entry struct {
	label     string
	color     string
	anchor    Anchor
	screenPos mgl64.Vec2
	projected bool
}

type registry struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]*entry
}

// Registry maps label text to overlay entries. Registration is first-wins: a second label
// with the same text is ignored, including its color. Entries keep registration order.
type Registry interface {
	// Register adds a label if its text is not already present.
	//
	// Parameters:
	//   - label: the label text
	//   - color: chip color, empty for default
	//   - anchor: world position source; may be nil until projection is wanted
	//
	// Returns:
	//   - bool: true if the label was inserted
	Register(label, color string, anchor Anchor) bool

	// Remove drops a label.
	//
	// Parameters:
	//   - label: the label text
	//
	// Returns:
	//   - bool: true if an entry was removed
	Remove(label string) bool

	// UpdateProjections recomputes the screen position of every entry with an anchor.
	// An entry whose projection fails keeps its previous screen position.
	//
	// Parameters:
	//   - cam: the camera
	//   - viewport: surface size in pixels
	//
	// Returns:
	//   - error: the reasons projections were skipped, or nil
	UpdateProjections(cam camera.Camera, viewport common.Viewport) error

	// Snapshot copies all entries in registration order.
	//
	// Returns:
	//   - []Entry: the entries
	Snapshot() []Entry

	// Get returns one entry.
	//
	// Parameters:
	//   - label: the label text
	//
	// Returns:
	//   - Entry: the entry copy
	//   - bool: false if absent
	Get(label string) (Entry, bool)

	// Len returns the number of entries.
	//
	// Returns:
	//   - int: the entry count
	Len() int
}

var _ Registry = &registry{}

// NewRegistry creates an empty registry.
//
// Returns:
//   - Registry: the registry
func NewRegistry() Registry {
	return &registry{
		entries: make(map[string]*entry),
	}
}

func (r *registry) Register(label, color string, anchor Anchor) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[label]; ok {
		return false
	}
	r.entries[label] = &entry{label: label, color: color, anchor: anchor}
	r.order = append(r.order, label)
	return true
}

func (r *registry) Remove(label string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[label]; !ok {
		return false
	}
	delete(r.entries, label)
	for i, l := range r.order {
		if l == label {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

func (r *registry) UpdateProjections(cam camera.Camera, viewport common.Viewport) error {
	if cam == nil {
		return projector.ErrNoCamera
	}
	if !viewport.Valid() {
		return projector.ErrNoSurface
	}
	viewProj := cam.ViewProjectionMatrix()

	r.mu.Lock()
	defer r.mu.Unlock()
	var errs []error
	for _, label := range r.order {
		e := r.entries[label]
		if e.anchor == nil {
			continue
		}
		if n, ok := e.anchor.(node.Node); ok && !n.Visible() {
			continue
		}
		pos, err := projector.ProjectMatrix(e.anchor.WorldPosition(), viewProj, viewport)
		if err != nil {
			errs = append(errs, fmt.Errorf("label %q: %w", label, err))
			continue
		}
		e.screenPos = pos
		e.projected = true
	}
	return errors.Join(errs...)
}

func (r *registry) Snapshot() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, 0, len(r.order))
	for _, label := range r.order {
		out = append(out, r.entries[label].snapshot())
	}
	return out
}

func (r *registry) Get(label string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[label]
	if !ok {
		return Entry{}, false
	}
	return e.snapshot(), true
}

func (r *registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

func (e *entry) snapshot() Entry {
	out := Entry{Label: e.label, Color: e.color}
	if e.projected {
		pos := e.screenPos
		out.ScreenPos = &pos
	}
	return out
}
