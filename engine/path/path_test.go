package path

import (
	"errors"
	"math"
	"sync"
	"testing"
)

const epsilon = 1e-9

func TestPointAtPeriodic(t *testing.T) {
	p := NewCirclePath()
	for _, tt := range []float64{-3.2, -1, -0.5, 0, 0.1, 0.25, 0.5, 0.999, 1, 1.75, 42.125} {
		a := p.PointAt(tt)
		b := p.PointAt(tt + 1)
		if !a.ApproxEqualThreshold(b, epsilon) {
			t.Errorf("Expected PointAt(%v) == PointAt(%v), got %v and %v", tt, tt+1, a, b)
		}
	}
}

func TestPointAtKnownPoints(t *testing.T) {
	p := NewCirclePath(WithRadius(2))
	tests := []struct {
		name string
		t    float64
		x, y float64
	}{
		{"Start", 0, 2, 0},
		{"Quarter", 0.25, 0, 2},
		{"Half", 0.5, -2, 0},
		{"Three quarters", 0.75, 0, -2},
		{"End equals start", 1, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.PointAt(tt.t)
			if math.Abs(got.X()-tt.x) > epsilon || math.Abs(got.Y()-tt.y) > epsilon {
				t.Errorf("Expected (%v,%v), got %v", tt.x, tt.y, got)
			}
		})
	}
}

func TestSample(t *testing.T) {
	p := NewCirclePath(WithRadius(3), WithCenter(1, -1))
	for _, n := range []int{2, 3, 17, 100} {
		points, err := p.Sample(n)
		if err != nil {
			t.Fatalf("Sample(%d) returned error: %v", n, err)
		}
		if len(points) != n {
			t.Fatalf("Expected %d points, got %d", n, len(points))
		}
		prevAngle := -1.0
		for i, pt := range points {
			dx, dy := pt.X()-1, pt.Y()+1
			if r := math.Hypot(dx, dy); math.Abs(r-3) > epsilon {
				t.Errorf("n=%d point %d: expected radius 3, got %v", n, i, r)
			}
			if i == n-1 {
				continue
			}
			angle := math.Atan2(dy, dx)
			if angle < 0 {
				angle += 2 * math.Pi
			}
			if angle <= prevAngle {
				t.Errorf("n=%d point %d: expected increasing angle, got %v after %v", n, i, angle, prevAngle)
			}
			prevAngle = angle
		}
		if !points[0].ApproxEqualThreshold(points[n-1], epsilon) {
			t.Errorf("n=%d: expected closed ring, got %v and %v", n, points[0], points[n-1])
		}
	}
}

func TestSampleRejectsSmallCounts(t *testing.T) {
	p := NewCirclePath()
	for _, n := range []int{-1, 0, 1} {
		points, err := p.Sample(n)
		if !errors.Is(err, ErrInvalidSampleCount) {
			t.Errorf("Sample(%d): expected ErrInvalidSampleCount, got %v", n, err)
		}
		if points != nil {
			t.Errorf("Sample(%d): expected no points, got %d", n, len(points))
		}
	}
}

func TestWithRadiusIgnoresNonPositive(t *testing.T) {
	p := NewCirclePath(WithRadius(-4))
	if p.Radius() != DefaultRadius {
		t.Errorf("Expected default radius %v, got %v", DefaultRadius, p.Radius())
	}
}

func TestConcurrentPointAt(t *testing.T) {
	p := NewCirclePath()
	want := p.PointAt(0.3)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if got := p.PointAt(0.3); got != want {
					t.Errorf("Expected deterministic %v, got %v", want, got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
