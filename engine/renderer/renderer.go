package renderer

import (
	"errors"
	"fmt"
	"image"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-orbits/engine/window"
)

var (
	// ErrEmptyFrame is returned when Present receives a nil or zero-sized frame.
	ErrEmptyFrame = errors.New("renderer: empty frame")
	// ErrClosed is returned when Present is called after Close.
	ErrClosed = errors.New("renderer: closed")
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	width  int
	height int

	// staging holds tightly packed rows when a frame's stride carries padding.
	staging []byte
	frames  uint64
	closed  bool

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
}

// Renderer presents CPU-rasterised overlay frames on a window surface.
//
// Each frame is uploaded into a sampled texture and drawn onto the swapchain with a
// fullscreen triangle, so the surface only needs render-attachment usage.
type Renderer interface {
	// Present uploads frame and presents it. The frame is stretched to the surface size.
	//
	// Parameters:
	//   - frame: the composed overlay frame
	//
	// Returns:
	//   - error: ErrEmptyFrame, ErrClosed, or a wrapped backend error
	Present(frame *image.RGBA) error

	// Resize reconfigures the surface for a new window size. Zero sizes (minimised windows)
	// are ignored.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// Size returns the current surface size.
	//
	// Returns:
	//   - int: width in pixels
	//   - int: height in pixels
	Size() (int, int)

	// SetPresentMode sets the present mode and reconfigures the surface.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// Frames returns the number of frames presented so far.
	//
	// Returns:
	//   - uint64: presented frame count
	Frames() uint64

	// Close releases all GPU resources. Safe to call more than once.
	Close()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer bound to the window's surface.
// Panics if the GPU adapter or device cannot be acquired.
//
// Parameters:
//   - backendType: the GPU backend to use
//   - w: the window providing the surface descriptor and initial size
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the configured renderer
func NewRenderer(backendType RendererBackendType, w window.Window, options ...RendererBuilderOption) Renderer {
	if w == nil {
		panic("renderer: window is required")
	}
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(w.SurfaceDescriptor(), r.forceFallbackAdapter)
	}

	r.init(w.Width(), w.Height())
	return r
}

// newRendererWithBackend wires a renderer onto an existing backend.
func newRendererWithBackend(backend RendererBackend, width, height int, options ...RendererBuilderOption) *renderer {
	r := &renderer{
		mu:      &sync.Mutex{},
		backend: backend,
	}
	for _, opt := range options {
		opt(r)
	}
	r.init(width, height)
	return r
}

func (r *renderer) init(width, height int) {
	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}
	r.Resize(width, height)
}

func (r *renderer) Present(frame *image.RGBA) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	if frame == nil || frame.Bounds().Empty() {
		return ErrEmptyFrame
	}
	if r.width <= 0 || r.height <= 0 {
		// Minimised; nothing to present onto.
		return nil
	}

	b := frame.Bounds()
	r.staging = packPixels(frame, r.staging)
	if err := r.backend.UploadFrame(r.staging, b.Dx(), b.Dy()); err != nil {
		return fmt.Errorf("renderer: upload frame: %w", err)
	}
	if err := r.backend.DrawFrame(); err != nil {
		return fmt.Errorf("renderer: draw frame: %w", err)
	}
	r.frames++
	return nil
}

func (r *renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.width, r.height = width, height
	if r.closed || width <= 0 || height <= 0 {
		return
	}
	if err := r.backend.ConfigureSurface(width, height); err != nil {
		log.Printf("[Renderer] configure surface %dx%d: %v", width, height, err)
	}
}

func (r *renderer) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
	r.Resize(r.Size())
}

func (r *renderer) Frames() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

func (r *renderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	r.backend.Release()
}

// packPixels returns frame's pixels as tightly packed RGBA rows. The frame's own buffer is
// returned when it has no row padding; otherwise rows are copied into buf, growing it as needed.
func packPixels(frame *image.RGBA, buf []byte) []byte {
	b := frame.Bounds()
	rowBytes := b.Dx() * 4
	n := rowBytes * b.Dy()
	if frame.Stride == rowBytes {
		return frame.Pix[:n]
	}
	if cap(buf) < n {
		buf = make([]byte, n)
	}
	buf = buf[:n]
	for y := 0; y < b.Dy(); y++ {
		src := frame.Pix[y*frame.Stride : y*frame.Stride+rowBytes]
		copy(buf[y*rowBytes:], src)
	}
	return buf
}
