package overlay

import (
	"image"
	"image/color"

	"github.com/Carmen-Shannon/oxy-orbits/engine/config"
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Chip styling.
const (
	ChipFontSize     = 12
	ChipPaddingX     = 6
	ChipPaddingY     = 2
	ChipCornerRadius = 4
	ChipBackground   = "#eee"
)

// ChipLayout is the placement of one label chip in pixels.
type ChipLayout struct {
	// Box is the chip background rectangle.
	Box image.Rectangle
	// Baseline is the text origin.
	Baseline image.Point
	// Background is the fill color.
	Background color.RGBA
}

// NewChipFace returns the default chip font face.
//
// Returns:
//   - font.Face: a 12px Go Regular face
//   - error: if the embedded font cannot be parsed
func NewChipFace() (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    ChipFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// LayoutChip sizes a chip around text and places it so the anchor sits at the chip's
// horizontal center, one and a half chip heights below its top edge. A nil anchor places the
// chip at the top-left corner.
//
// Parameters:
//   - face: the text face
//   - text: the label text
//   - colorHex: label color, empty for the default background
//   - anchor: projected screen position, or nil
//
// Returns:
//   - ChipLayout: the placement
func LayoutChip(face font.Face, text, colorHex string, anchor *mgl64.Vec2) ChipLayout {
	metrics := face.Metrics()
	textW := font.MeasureString(face, text).Ceil()
	ascent := metrics.Ascent.Ceil()
	textH := ascent + metrics.Descent.Ceil()

	w := textW + 2*ChipPaddingX
	h := textH + 2*ChipPaddingY

	var minX, minY int
	if anchor != nil {
		// translate(-50%, -150%)
		minX = int(anchor[0] - float64(w)*0.5)
		minY = int(anchor[1] - float64(h)*1.5)
	}
	box := image.Rect(minX, minY, minX+w, minY+h)

	bg, err := config.ParseColor(colorHex)
	if colorHex == "" || err != nil {
		bg, _ = config.ParseColor(ChipBackground)
	}
	return ChipLayout{
		Box:        box,
		Baseline:   image.Pt(minX+ChipPaddingX, minY+ChipPaddingY+ascent),
		Background: bg,
	}
}

// drawChipText writes text onto dst at the layout baseline.
func drawChipText(dst *image.RGBA, face font.Face, text string, layout ChipLayout) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Black,
		Face: face,
		Dot:  fixed.P(layout.Baseline.X, layout.Baseline.Y),
	}
	d.DrawString(text)
}
