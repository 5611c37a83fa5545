package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func project(m mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	clip := m.Mul4x1(p.Vec4(1))
	return clip.Vec3().Mul(1 / clip[3])
}

func TestDefaultCameraIsOrthographic(t *testing.T) {
	c := NewCamera()
	if c.Projection() != Orthographic {
		t.Fatal("default projection should be orthographic")
	}
	if got := c.Controller().Position(); got != (mgl64.Vec3{0, 0, 10}) {
		t.Fatalf("default position = %v", got)
	}
	if c.Near() != DefaultNear || c.Far() != DefaultFar || c.HalfHeight() != DefaultHalfHeight {
		t.Fatalf("near/far/half = %v/%v/%v", c.Near(), c.Far(), c.HalfHeight())
	}

	vp := c.ViewProjectionMatrix()
	tests := []struct {
		world mgl64.Vec3
		ndcX  float64
		ndcY  float64
	}{
		{mgl64.Vec3{0, 0, 0}, 0, 0},
		{mgl64.Vec3{2.2, 0, 0}, 1, 0},
		{mgl64.Vec3{0, -2.2, 0}, 0, -1},
		{mgl64.Vec3{1.1, 1.1, 1}, 0.5, 0.5},
	}
	for _, tt := range tests {
		ndc := project(vp, tt.world)
		if math.Abs(ndc[0]-tt.ndcX) > 1e-9 || math.Abs(ndc[1]-tt.ndcY) > 1e-9 {
			t.Errorf("project(%v) = %v, want (%v, %v)", tt.world, ndc, tt.ndcX, tt.ndcY)
		}
	}
}

func TestAspectWidensOrthographicFrustum(t *testing.T) {
	c := NewCamera()
	c.SetAspect(2)
	ndc := project(c.ViewProjectionMatrix(), mgl64.Vec3{4.4, 2.2, 0})
	if math.Abs(ndc[0]-1) > 1e-9 || math.Abs(ndc[1]-1) > 1e-9 {
		t.Fatalf("corner maps to %v, want (1, 1)", ndc)
	}

	c.SetAspect(-1)
	if c.Aspect() != 2 {
		t.Fatalf("negative aspect accepted: %v", c.Aspect())
	}
}

func TestZoomBy(t *testing.T) {
	c := NewCamera()
	c.ZoomBy(1)
	if math.Abs(c.Zoom()-1.1) > 1e-12 {
		t.Fatalf("zoom = %v, want 1.1", c.Zoom())
	}
	ndc := project(c.ViewProjectionMatrix(), mgl64.Vec3{2, 0, 0})
	if math.Abs(ndc[0]-2*1.1/2.2) > 1e-9 {
		t.Fatalf("zoomed projection = %v", ndc)
	}

	p := NewCamera(WithProjection(Perspective))
	before := p.Controller().Distance()
	p.ZoomBy(2)
	if after := p.Controller().Distance(); after >= before {
		t.Fatalf("perspective zoom did not dolly in: %v -> %v", before, after)
	}
	if p.Near() <= 0 {
		t.Fatal("perspective camera needs a positive near plane")
	}
}

func TestControllerZoomClamps(t *testing.T) {
	cc := NewCameraController(WithPosition(0, 0, 5), WithDistanceBounds(3, 6), WithZoomSpeed(1))
	cc.Zoom(10)
	if d := cc.Distance(); math.Abs(d-3) > 1e-12 {
		t.Fatalf("distance = %v, want 3", d)
	}
	cc.Zoom(-10)
	if d := cc.Distance(); math.Abs(d-6) > 1e-12 {
		t.Fatalf("distance = %v, want 6", d)
	}
}

func TestUpdateTracksController(t *testing.T) {
	cc := NewCameraController()
	c := NewCamera(WithController(cc))
	cc.SetPosition(0, 0, 20)
	c.Update()
	eye := c.ViewMatrix().Mul4x1(mgl64.Vec4{0, 0, 0, 1})
	if math.Abs(eye[2]+20) > 1e-9 {
		t.Fatalf("origin in view space = %v, want z=-20", eye)
	}
}
