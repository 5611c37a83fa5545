package overlay

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// Dot bitmap dimensions.
const (
	DotBitmapSize   = 30
	DotBitmapRadius = 15
)

// DotBitmap rasterizes the circular label marker: a filled black disc of radius 15 centered
// on a transparent 30x30 canvas.
//
// Returns:
//   - *image.RGBA: the dot bitmap
func DotBitmap() *image.RGBA {
	return Disc(DotBitmapSize, DotBitmapRadius, color.Black)
}

// Disc rasterizes a filled disc centered on a transparent square canvas.
//
// Parameters:
//   - size: canvas width and height in pixels
//   - radius: disc radius in pixels
//   - c: fill color
//
// Returns:
//   - *image.RGBA: the bitmap
func Disc(size int, radius float64, c color.Color) *image.RGBA {
	dc := gg.NewContext(size, size)
	defer func() {
		_ = dc.Close()
	}()
	dc.SetColor(c)
	dc.DrawCircle(float64(size)/2, float64(size)/2, radius)
	_ = dc.Fill()
	return toRGBA(dc.Image())
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}
