package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-9

func TestWrapUnit(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"Zero", 0, 0},
		{"Inside", 0.25, 0.25},
		{"One wraps to zero", 1, 0},
		{"Above one", 2.75, 0.75},
		{"Negative", -0.25, 0.75},
		{"Tiny negative", -1e-18, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapUnit(tt.in)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("Expected WrapUnit(%v) to be %v, got %v", tt.in, tt.want, got)
			}
			if got < 0 || got >= 1 {
				t.Errorf("Expected result in [0,1), got %v", got)
			}
		})
	}
}

func TestLerpContracts(t *testing.T) {
	a, target := 10.0, 2.0
	for i := 0; i < 50; i++ {
		next := Lerp(a, target, 0.1)
		if math.Abs(next-target) >= math.Abs(a-target) {
			t.Fatalf("step %d: expected |%v - %v| < |%v - %v|", i, next, target, a, target)
		}
		a = next
	}
}

func TestEulerXYZOrder(t *testing.T) {
	// Rz first: (1,0,0) -> (0,1,0); then Rx(90): (0,1,0) -> (0,0,1).
	m := EulerXYZ(mgl64.Vec3{math.Pi / 2, 0, math.Pi / 2})
	got := m.Mul4x1(mgl64.Vec4{1, 0, 0, 1}).Vec3()
	if !got.ApproxEqualThreshold(mgl64.Vec3{0, 0, 1}, 1e-9) {
		t.Errorf("Expected (0,0,1), got %v", got)
	}
}

func TestComposeTRSPosition(t *testing.T) {
	m := ComposeTRS(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{0.3, 0.2, 0.1}, mgl64.Vec3{1, 1, 1})
	if p := MatrixPosition(m); !p.ApproxEqual(mgl64.Vec3{1, 2, 3}) {
		t.Errorf("Expected translation (1,2,3), got %v", p)
	}
}

func TestViewport(t *testing.T) {
	if (Viewport{}).Valid() {
		t.Error("Expected zero viewport to be invalid")
	}
	v := Viewport{Width: 800, Height: 400}
	if v.Aspect() != 2 {
		t.Errorf("Expected aspect 2, got %v", v.Aspect())
	}
	if x, y := v.Center(); x != 400 || y != 200 {
		t.Errorf("Expected center (400,200), got (%v,%v)", x, y)
	}
}
