package overlay

import "golang.org/x/image/font"

// OverlayBuilderOption is a functional option for configuring an Overlay during construction.
type OverlayBuilderOption func(*overlayImpl)

// WithFace replaces the chip font face.
//
// Parameters:
//   - face: the face
//
// Returns:
//   - OverlayBuilderOption: functional option to set the face
func WithFace(face font.Face) OverlayBuilderOption {
	return func(o *overlayImpl) {
		o.face = face
	}
}

// WithBackground sets the frame clear color as a hex string.
//
// Parameters:
//   - hex: the color, e.g. "#fff"
//
// Returns:
//   - OverlayBuilderOption: functional option to set the background
func WithBackground(hex string) OverlayBuilderOption {
	return func(o *overlayImpl) {
		o.background = hex
	}
}

// WithMinDotSize sets the smallest dot diameter in pixels.
//
// Parameters:
//   - px: the diameter
//
// Returns:
//   - OverlayBuilderOption: functional option to set the minimum
func WithMinDotSize(px float64) OverlayBuilderOption {
	return func(o *overlayImpl) {
		if px > 0 {
			o.minDotPx = px
		}
	}
}

// WithLayers toggles the sphere, ring and chip layers. Dots are always drawn.
//
// Parameters:
//   - sphere, rings, chips: true to draw the layer
//
// Returns:
//   - OverlayBuilderOption: functional option to set the layers
func WithLayers(sphere, rings, chips bool) OverlayBuilderOption {
	return func(o *overlayImpl) {
		o.drawSphere = sphere
		o.drawRings = rings
		o.drawChips = chips
	}
}
