package overlay

import (
	"fmt"
	"image"
	"sync"

	"github.com/Carmen-Shannon/oxy-orbits/common"
	"github.com/Carmen-Shannon/oxy-orbits/engine/node"
	"github.com/Carmen-Shannon/oxy-orbits/engine/path"
	"github.com/Carmen-Shannon/oxy-orbits/engine/projector"
	"github.com/Carmen-Shannon/oxy-orbits/engine/scene"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gogpu/gg"
	"golang.org/x/image/font"
)

// Sphere fill opacity.
const SphereOpacity = 0.02

type overlayImpl struct {
	mu *sync.Mutex

	dc   *gg.Context
	face font.Face

	background string
	minDotPx   float64
	drawSphere bool
	drawRings  bool
	drawChips  bool

	spriteSrc image.Image
	spriteBuf *gg.ImageBuf
}

// Overlay rasterizes a Stage into an RGBA frame: the faint sphere, the dashed orbit rings,
// a dot per label and the text chips read from the label registry. Render must run on the
// goroutine that ticks the stage.
type Overlay interface {
	// Render draws the current state of s into a frame of the viewport's size.
	//
	// Parameters:
	//   - s: the stage to draw
	//   - viewport: frame size in pixels
	//
	// Returns:
	//   - *image.RGBA: the frame, owned by the caller
	//   - error: projector.ErrNoSurface for an empty viewport, or a rasterizer error
	Render(s scene.Stage, viewport common.Viewport) (*image.RGBA, error)

	// Face returns the chip font face.
	//
	// Returns:
	//   - font.Face: the face
	Face() font.Face

	// Close releases the rasterizer context.
	//
	// Returns:
	//   - error: always nil
	Close() error
}

var _ Overlay = &overlayImpl{}

// NewOverlay creates an overlay rasterizer with a 12px chip face.
//
// Parameters:
//   - options: functional options to configure the overlay
//
// Returns:
//   - Overlay: the overlay
//   - error: if the chip font cannot be loaded
func NewOverlay(options ...OverlayBuilderOption) (Overlay, error) {
	o := &overlayImpl{
		mu:         &sync.Mutex{},
		background: "#fff",
		minDotPx:   3,
		drawSphere: true,
		drawRings:  true,
		drawChips:  true,
	}
	for _, option := range options {
		option(o)
	}
	if o.face == nil {
		face, err := NewChipFace()
		if err != nil {
			return nil, fmt.Errorf("overlay: load chip font: %w", err)
		}
		o.face = face
	}
	return o, nil
}

func (o *overlayImpl) Face() font.Face {
	return o.face
}

func (o *overlayImpl) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.dc != nil {
		_ = o.dc.Close()
		o.dc = nil
	}
	return nil
}

func (o *overlayImpl) Render(s scene.Stage, viewport common.Viewport) (*image.RGBA, error) {
	if !viewport.Valid() {
		return nil, projector.ErrNoSurface
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.prepare(viewport); err != nil {
		return nil, err
	}
	dc := o.dc
	dc.ClearWithColor(gg.Hex(o.background))

	viewProj := s.Camera().ViewProjectionMatrix()
	center, err := projector.ProjectMatrix(mgl64.Vec3{}, viewProj, viewport)
	if err != nil {
		return toRGBA(dc.Image()), nil
	}
	ppu := pixelsPerUnit(viewProj, viewport, center)
	orbits := s.Orbits()

	if o.drawSphere {
		radius := path.DefaultRadius
		if len(orbits) > 0 {
			radius = orbits[0].Path.Radius()
		}
		dc.SetRGBA(0, 0, 0, SphereOpacity)
		dc.DrawCircle(center[0], center[1], radius*ppu)
		if err := dc.Fill(); err != nil {
			return nil, fmt.Errorf("overlay: sphere: %w", err)
		}
	}

	if o.drawRings {
		for _, orb := range orbits {
			if err := o.strokeRing(orb.Node, viewProj, viewport, ppu); err != nil {
				return nil, err
			}
		}
	}

	for _, orb := range orbits {
		for _, l := range orb.Labels {
			if err := o.drawDot(l.Node, viewProj, viewport); err != nil {
				return nil, err
			}
		}
	}

	var chips []ChipLayout
	var texts []string
	if o.drawChips {
		for _, e := range s.Registry().Snapshot() {
			layout := LayoutChip(o.face, e.Label, e.Color, e.ScreenPos)
			r := layout.Box
			dc.SetColor(layout.Background)
			dc.DrawRoundedRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), ChipCornerRadius)
			if err := dc.Fill(); err != nil {
				return nil, fmt.Errorf("overlay: chip %q: %w", e.Label, err)
			}
			chips = append(chips, layout)
			texts = append(texts, e.Label)
		}
	}

	frame := toRGBA(dc.Image())
	for i, layout := range chips {
		drawChipText(frame, o.face, texts[i], layout)
	}
	return frame, nil
}

// prepare sizes the rasterizer context to the viewport. Caller must hold o.mu.
func (o *overlayImpl) prepare(viewport common.Viewport) error {
	if o.dc == nil {
		o.dc = gg.NewContext(viewport.Width, viewport.Height)
		return nil
	}
	if err := o.dc.Resize(viewport.Width, viewport.Height); err != nil {
		return fmt.Errorf("overlay: %w", err)
	}
	return nil
}

func (o *overlayImpl) strokeRing(n node.Node, viewProj mgl64.Mat4, viewport common.Viewport, ppu float64) error {
	line := n.Line()
	if line == nil || len(line.Points) < 2 || !n.Visible() {
		return nil
	}
	mvp := viewProj.Mul4(n.WorldMatrix())
	dc := o.dc
	started := false
	for _, p := range line.Points {
		screen, err := projector.ProjectMatrix(p, mvp, viewport)
		if err != nil {
			started = false
			continue
		}
		if !started {
			dc.MoveTo(screen[0], screen[1])
			started = true
			continue
		}
		dc.LineTo(screen[0], screen[1])
	}
	dc.SetHexColor(common.Coalesce(line.Color, "#000"))
	dc.SetLineWidth(1)
	if line.DashSize > 0 {
		dc.SetDash(line.DashSize*ppu, max(line.GapSize*ppu, 1))
	} else {
		dc.SetDash()
	}
	err := dc.Stroke()
	dc.SetDash()
	if err != nil {
		return fmt.Errorf("overlay: ring %s: %w", n.Name(), err)
	}
	return nil
}

func (o *overlayImpl) drawDot(n node.Node, viewProj mgl64.Mat4, viewport common.Viewport) error {
	sprite := n.Sprite()
	if sprite == nil || !n.Visible() {
		return nil
	}
	screen, err := projector.ProjectMatrix(n.WorldPosition(), viewProj, viewport)
	if err != nil {
		return nil
	}
	size := max(sprite.Scale*float64(viewport.Height), o.minDotPx)
	dc := o.dc
	if sprite.Image == nil {
		dc.SetRGB(0, 0, 0)
		dc.DrawCircle(screen[0], screen[1], size/2)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("overlay: dot %s: %w", n.Name(), err)
		}
		return nil
	}
	if o.spriteSrc != sprite.Image {
		o.spriteSrc = sprite.Image
		o.spriteBuf = gg.ImageBufFromImage(sprite.Image)
	}
	dc.DrawImageEx(o.spriteBuf, gg.DrawImageOptions{
		X:         screen[0] - size/2,
		Y:         screen[1] - size/2,
		DstWidth:  size,
		DstHeight: size,
	})
	return nil
}

// pixelsPerUnit measures how many pixels one world unit spans at the origin.
func pixelsPerUnit(viewProj mgl64.Mat4, viewport common.Viewport, center mgl64.Vec2) float64 {
	up, err := projector.ProjectMatrix(mgl64.Vec3{0, 1, 0}, viewProj, viewport)
	if err != nil {
		return 1
	}
	d := up.Sub(center).Len()
	if d <= 0 {
		return 1
	}
	return d
}
