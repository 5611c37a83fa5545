package drag

import (
	"math"
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbits/engine/node"
	"github.com/go-gl/mathgl/mgl64"
)

func TestGestureCommitsAccumulate(t *testing.T) {
	c := NewController(nil)

	c.Drag(mgl64.Vec2{10, 0}, true)
	c.Drag(mgl64.Vec2{30, -5}, true)
	if !c.Dragging() {
		t.Fatal("expected dragging")
	}
	c.Drag(mgl64.Vec2{30, -5}, false)
	if c.Dragging() {
		t.Fatal("expected released")
	}
	if got, want := c.Committed(), (mgl64.Vec2{-30, 5}); got != want {
		t.Fatalf("committed after first gesture = %v, want %v", got, want)
	}

	c.Drag(mgl64.Vec2{-4, 20}, true)
	c.Drag(mgl64.Vec2{-4, 20}, false)
	// committed = -(dx1+dx2, dy1+dy2)
	if got, want := c.Committed(), (mgl64.Vec2{-26, -15}); got != want {
		t.Fatalf("committed after second gesture = %v, want %v", got, want)
	}
}

func TestLiveFollowsPointerWhileDown(t *testing.T) {
	c := NewController(nil)
	c.Drag(mgl64.Vec2{5, 5}, true)
	c.Drag(mgl64.Vec2{5, 5}, false)

	c.Drag(mgl64.Vec2{1, 2}, true)
	if got, want := c.Live(), (mgl64.Vec2{-6, -7}); got != want {
		t.Fatalf("live = %v, want %v", got, want)
	}
	if got, want := c.Committed(), (mgl64.Vec2{-5, -5}); got != want {
		t.Fatalf("committed changed while down: %v, want %v", got, want)
	}
}

func TestTargetMapsAxes(t *testing.T) {
	c := NewController(nil)
	c.Drag(mgl64.Vec2{-100, -50}, true)
	got := c.Target()
	// live = (100, 50): rotation X from live.y, Y from live.x.
	want := mgl64.Vec3{1, 2, 0}
	if got != want {
		t.Fatalf("Target = %v, want %v", got, want)
	}
}

func TestUpdateStrictlyContracts(t *testing.T) {
	group := node.NewNode()
	c := NewController(group)
	c.Drag(mgl64.Vec2{-250, 120}, true)

	target := c.Target()
	prev := target.Sub(c.Applied()).Len()
	for i := 0; i < 50; i++ {
		applied := c.Update()
		d := target.Sub(applied).Len()
		if d >= prev {
			t.Fatalf("step %d: distance %v did not shrink from %v", i, d, prev)
		}
		if math.Abs(d-0.9*prev) > 1e-9 {
			t.Fatalf("step %d: distance %v, want %v", i, d, 0.9*prev)
		}
		if group.Rotation() != applied {
			t.Fatalf("group rotation not synced")
		}
		prev = d
	}
}

func TestOptions(t *testing.T) {
	c := NewController(nil, WithSensitivity(100), WithSmoothing(1))
	c.Drag(mgl64.Vec2{-100, 0}, true)
	if got := c.Update(); got != (mgl64.Vec3{0, 1, 0}) {
		t.Fatalf("Update = %v, want (0,1,0) with full smoothing", got)
	}

	d := NewController(nil, WithSensitivity(-1), WithSmoothing(2))
	impl := d.(*controller)
	if impl.sensitivity != DefaultSensitivity || impl.smoothing != DefaultSmoothing {
		t.Fatalf("invalid options should be ignored: %v %v", impl.sensitivity, impl.smoothing)
	}
}

func TestNonFiniteMovementIgnored(t *testing.T) {
	c := NewController(nil)
	c.Drag(mgl64.Vec2{math.NaN(), 0}, true)
	if c.Dragging() || c.Live() != (mgl64.Vec2{}) {
		t.Fatal("NaN movement should be dropped")
	}
}

func TestConcurrentGesturesAndUpdate(t *testing.T) {
	c := NewController(node.NewNode())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			c.Drag(mgl64.Vec2{float64(i), float64(-i)}, i%10 != 9)
		}
	}()
	for i := 0; i < 1000; i++ {
		c.Update()
	}
	wg.Wait()
	if !finite2(c.Committed()) {
		t.Fatal("committed offset is not finite")
	}
}

func TestResetEasesBack(t *testing.T) {
	c := NewController(nil)
	c.Drag(mgl64.Vec2{-50, 0}, true)
	c.Drag(mgl64.Vec2{-50, 0}, false)
	for i := 0; i < 10; i++ {
		c.Update()
	}
	before := c.Applied().Len()

	c.Reset()
	if c.Committed() != (mgl64.Vec2{}) || c.Live() != (mgl64.Vec2{}) {
		t.Fatal("offsets not cleared")
	}
	after := c.Update().Len()
	if after >= before {
		t.Fatalf("applied rotation did not shrink: %v -> %v", before, after)
	}
}
