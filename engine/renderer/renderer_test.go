package renderer

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

type fakeBackend struct {
	configured  [][2]int
	presentMode PresentMode
	uploads     int
	draws       int
	lastPixels  []byte
	lastSize    [2]int
	drawErr     error
	released    int
}

func (f *fakeBackend) ConfigureSurface(width, height int) error {
	f.configured = append(f.configured, [2]int{width, height})
	return nil
}

func (f *fakeBackend) SetPresentMode(mode PresentMode) { f.presentMode = mode }

func (f *fakeBackend) UploadFrame(pixels []byte, width, height int) error {
	f.uploads++
	f.lastPixels = append(f.lastPixels[:0], pixels...)
	f.lastSize = [2]int{width, height}
	return nil
}

func (f *fakeBackend) DrawFrame() error {
	f.draws++
	return f.drawErr
}

func (f *fakeBackend) Release() { f.released++ }

func TestPresentUploadsAndCounts(t *testing.T) {
	fb := &fakeBackend{}
	r := newRendererWithBackend(fb, 4, 3, WithPresentMode(PresentModeUncapped))

	if fb.presentMode != PresentModeUncapped {
		t.Fatalf("present mode = %v, want uncapped", fb.presentMode)
	}
	if len(fb.configured) != 1 || fb.configured[0] != [2]int{4, 3} {
		t.Fatalf("configured = %v", fb.configured)
	}

	frame := image.NewRGBA(image.Rect(0, 0, 4, 3))
	frame.Set(1, 1, color.RGBA{R: 9, A: 255})
	if err := r.Present(frame); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if fb.uploads != 1 || fb.draws != 1 || r.Frames() != 1 {
		t.Fatalf("uploads=%d draws=%d frames=%d", fb.uploads, fb.draws, r.Frames())
	}
	if fb.lastSize != [2]int{4, 3} || !bytes.Equal(fb.lastPixels, frame.Pix) {
		t.Fatal("uploaded pixels do not match frame")
	}
}

func TestPresentErrors(t *testing.T) {
	fb := &fakeBackend{}
	r := newRendererWithBackend(fb, 10, 10)

	if err := r.Present(nil); !errors.Is(err, ErrEmptyFrame) {
		t.Fatalf("nil frame: %v", err)
	}
	if err := r.Present(image.NewRGBA(image.Rectangle{})); !errors.Is(err, ErrEmptyFrame) {
		t.Fatalf("empty frame: %v", err)
	}

	drawErr := errors.New("surface lost")
	fb.drawErr = drawErr
	if err := r.Present(image.NewRGBA(image.Rect(0, 0, 2, 2))); !errors.Is(err, drawErr) {
		t.Fatalf("draw error not wrapped: %v", err)
	}
	if r.Frames() != 0 {
		t.Fatal("failed frame counted")
	}

	r.Close()
	r.Close()
	if fb.released != 1 {
		t.Fatalf("released %d times, want 1", fb.released)
	}
	if err := r.Present(image.NewRGBA(image.Rect(0, 0, 2, 2))); !errors.Is(err, ErrClosed) {
		t.Fatalf("after close: %v", err)
	}
}

func TestResizeIgnoresZeroSize(t *testing.T) {
	fb := &fakeBackend{}
	r := newRendererWithBackend(fb, 10, 10)
	r.Resize(0, 600)
	if len(fb.configured) != 1 {
		t.Fatalf("zero-size resize configured the surface: %v", fb.configured)
	}
	if err := r.Present(image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("minimised Present: %v", err)
	}
	if fb.draws != 0 {
		t.Fatal("drew onto a minimised surface")
	}

	r.Resize(640, 480)
	if w, h := r.Size(); w != 640 || h != 480 {
		t.Fatalf("Size = %dx%d", w, h)
	}
	if last := fb.configured[len(fb.configured)-1]; last != [2]int{640, 480} {
		t.Fatalf("last configure = %v", last)
	}
}

func TestPackPixels(t *testing.T) {
	full := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range full.Pix {
		full.Pix[i] = byte(i)
	}

	if got := packPixels(full, nil); &got[0] != &full.Pix[0] {
		t.Fatal("unpadded frame should be returned without copying")
	}

	sub := full.SubImage(image.Rect(1, 1, 3, 3)).(*image.RGBA)
	got := packPixels(sub, nil)
	if len(got) != 2*2*4 {
		t.Fatalf("len = %d, want 16", len(got))
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			want := sub.RGBAAt(x+1, y+1)
			off := (y*2 + x) * 4
			if got[off] != want.R || got[off+3] != want.A {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got[off:off+4], want)
			}
		}
	}
}
