package animator

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbits/engine/node"
	"github.com/Carmen-Shannon/oxy-orbits/engine/path"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestMountPlacesLabelAtPos(t *testing.T) {
	p := path.NewCirclePath()
	n := node.NewNode()
	a := NewLabelAnimator(p, 3, WithPos(0.5), WithTarget(n), WithSpeedFactor(60))

	if a.Phase() != 0.5 {
		t.Fatalf("phase = %v, want 0.5", a.Phase())
	}
	want := p.PointAt(0.5)
	got := n.Position()
	if !approx(got[0], want[0]) || !approx(got[1], want[1]) || got[2] != 0 {
		t.Fatalf("node position = %v, want (%v, %v, 0)", got, want[0], want[1])
	}
	if a.CycleStart() != 3 || a.LastFrame() != 3 {
		t.Fatalf("cycleStart/lastFrame = %v/%v, want 3/3", a.CycleStart(), a.LastFrame())
	}

	// Zero elapsed time keeps the label where it was mounted.
	anchor := a.Advance(3)
	if !approx(anchor[0], want[0]) || !approx(anchor[1], want[1]) {
		t.Fatalf("anchor after zero elapsed = %v, want %v", anchor, want)
	}
}

func TestSpeedFactorDrawnFromSeededSource(t *testing.T) {
	p := path.NewCirclePath()
	for seed := uint64(0); seed < 64; seed++ {
		a := NewLabelAnimator(p, 0, WithRand(rand.New(rand.NewPCG(seed, 1))))
		b := NewLabelAnimator(p, 0, WithRand(rand.New(rand.NewPCG(seed, 1))))
		if a.SpeedFactor() != b.SpeedFactor() {
			t.Fatalf("seed %d: speed factors differ: %d vs %d", seed, a.SpeedFactor(), b.SpeedFactor())
		}
		if a.SpeedFactor() < MinSpeedFactor || a.SpeedFactor() > MaxSpeedFactor {
			t.Fatalf("seed %d: speed factor %d out of range", seed, a.SpeedFactor())
		}
	}
}

func TestWithSpeedFactorClamps(t *testing.T) {
	p := path.NewCirclePath()
	tests := []struct {
		in, want int
	}{
		{10, MinSpeedFactor},
		{75, 75},
		{500, MaxSpeedFactor},
	}
	for _, tt := range tests {
		if got := NewLabelAnimator(p, 0, WithSpeedFactor(tt.in)).SpeedFactor(); got != tt.want {
			t.Errorf("WithSpeedFactor(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAdvanceFollowsElapsedTime(t *testing.T) {
	a := NewLabelAnimator(path.NewCirclePath(), 10, WithPos(0.2), WithSpeedFactor(50))

	tests := []struct {
		now  float64
		want float64
	}{
		{10, 0.2},
		{15, 0.3},
		{20, 0.4},
		{45, 0.9},
	}
	for _, tt := range tests {
		a.Advance(tt.now)
		if !approx(a.Phase(), tt.want) {
			t.Errorf("Advance(%v) phase = %v, want %v", tt.now, a.Phase(), tt.want)
		}
	}
}

func TestWrapRestartsSweepOnSameTick(t *testing.T) {
	a := NewLabelAnimator(path.NewCirclePath(), 0, WithPos(0.9), WithSpeedFactor(50))

	a.Advance(5.5) // 0.9 + 5.5/50 = 1.01
	if a.Phase() != 0 {
		t.Fatalf("phase after overshoot = %v, want 0", a.Phase())
	}
	if a.CycleStart() != 5.5 {
		t.Fatalf("cycleStart = %v, want 5.5", a.CycleStart())
	}

	a.Advance(6)
	if !approx(a.Phase(), 0.01) {
		t.Fatalf("phase after restart = %v, want 0.01", a.Phase())
	}
}

func TestPhaseStaysInUnitIntervalWithBoundedLaps(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	const speed = 50
	a := NewLabelAnimator(path.NewCirclePath(), 0, WithPos(0.5), WithSpeedFactor(speed))

	now := 0.0
	prev := a.Phase()
	var wraps []float64
	for i := 0; i < 20000; i++ {
		dt := 0.005 + rng.Float64()*0.05
		now += dt
		a.Advance(now)

		if a.Phase() < 0 || a.Phase() > 1 {
			t.Fatalf("tick %d: phase %v outside [0,1]", i, a.Phase())
		}
		if a.CycleStart() == now {
			// A restart happens only when the unwrapped phase actually passed 1,
			// and never later than one tick after it did.
			if prev+dt/speed < 1-eps {
				t.Fatalf("tick %d: early wrap from phase %v with dt %v", i, prev, dt)
			}
			wraps = append(wraps, now)
		}
		prev = a.Phase()
	}

	if len(wraps) < 2 {
		t.Fatalf("expected several laps, got %d wraps", len(wraps))
	}
	for i := 1; i < len(wraps); i++ {
		lap := wraps[i] - wraps[i-1]
		if lap < speed-eps || lap > speed+0.055 {
			t.Fatalf("lap %d took %v s, want within one tick of %d", i, lap, speed)
		}
	}
}

func TestMalformedPosRecovers(t *testing.T) {
	tests := []struct {
		name      string
		pos       float64
		wantFirst float64
	}{
		{"above one", 1.5, 0},
		{"below zero", -0.25, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewLabelAnimator(path.NewCirclePath(), 0, WithPos(tt.pos), WithSpeedFactor(50))
			a.Advance(1)
			if a.Phase() != tt.wantFirst {
				t.Fatalf("first phase = %v, want %v", a.Phase(), tt.wantFirst)
			}
			for now := 2.0; now < 200; now++ {
				a.Advance(now)
				if a.Phase() < 0 || a.Phase() > 1 {
					t.Fatalf("phase %v outside [0,1] at %v", a.Phase(), now)
				}
			}
		})
	}
}

func TestBackwardsClockClampsToGuard(t *testing.T) {
	a := NewLabelAnimator(path.NewCirclePath(), 100, WithPos(0.1), WithSpeedFactor(50))
	a.Advance(90) // 0.1 - 10/50 < 0
	if a.Phase() != 1 {
		t.Fatalf("phase = %v, want 1", a.Phase())
	}
	a.Advance(91)
	if a.Phase() != 0 {
		t.Fatalf("phase = %v, want 0 after guard", a.Phase())
	}
}

func TestNilPathPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewLabelAnimator(nil, 0)
}
