package projector

import (
	"errors"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbits/common"
	"github.com/Carmen-Shannon/oxy-orbits/engine/camera"
	"github.com/go-gl/mathgl/mgl64"
)

func TestOpticalCenterMapsToViewportCenter(t *testing.T) {
	viewports := []common.Viewport{{Width: 800, Height: 600}, {Width: 1, Height: 1}, {Width: 1920, Height: 1080}}
	cams := map[string]camera.Camera{
		"orthographic": camera.NewCamera(),
		"perspective":  camera.NewCamera(camera.WithProjection(camera.Perspective)),
	}
	for name, cam := range cams {
		for _, vp := range viewports {
			cam.SetAspect(vp.Aspect())
			got, err := Project(mgl64.Vec3{0, 0, 0}, cam, vp)
			if err != nil {
				t.Fatalf("%s %v: %v", name, vp, err)
			}
			cx, cy := vp.Center()
			if math.Abs(got[0]-cx) > 1e-9 || math.Abs(got[1]-cy) > 1e-9 {
				t.Errorf("%s %v: center projects to %v, want (%v, %v)", name, vp, got, cx, cy)
			}
		}
	}
}

func TestProjectionOrientation(t *testing.T) {
	cam := camera.NewCamera()
	vp := common.Viewport{Width: 440, Height: 440}

	tests := []struct {
		name  string
		world mgl64.Vec3
		want  mgl64.Vec2
	}{
		{"right edge", mgl64.Vec3{2.2, 0, 0}, mgl64.Vec2{440, 220}},
		{"top edge", mgl64.Vec3{0, 2.2, 0}, mgl64.Vec2{220, 0}},
		{"bottom left quadrant", mgl64.Vec3{-1.1, -1.1, 0}, mgl64.Vec2{110, 330}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Project(tt.world, cam, vp)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(got[0]-tt.want[0]) > 1e-9 || math.Abs(got[1]-tt.want[1]) > 1e-9 {
				t.Fatalf("Project(%v) = %v, want %v", tt.world, got, tt.want)
			}
		})
	}
}

func TestProjectErrors(t *testing.T) {
	cam := camera.NewCamera()
	tests := []struct {
		name string
		cam  camera.Camera
		vp   common.Viewport
		want error
	}{
		{"no camera", nil, common.Viewport{Width: 10, Height: 10}, ErrNoCamera},
		{"zero width", cam, common.Viewport{Width: 0, Height: 10}, ErrNoSurface},
		{"negative height", cam, common.Viewport{Width: 10, Height: -1}, ErrNoSurface},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Project(mgl64.Vec3{}, tt.cam, tt.vp)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestProjectMatrixDegenerateW(t *testing.T) {
	var zero mgl64.Mat4
	_, err := ProjectMatrix(mgl64.Vec3{1, 2, 3}, zero, common.Viewport{Width: 10, Height: 10})
	if !errors.Is(err, ErrBehindCamera) {
		t.Fatalf("err = %v, want ErrBehindCamera", err)
	}
}
