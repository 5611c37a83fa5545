package engine

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-orbits/common"
	"github.com/Carmen-Shannon/oxy-orbits/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbits/engine/config"
	"github.com/Carmen-Shannon/oxy-orbits/engine/profiler"
	"github.com/Carmen-Shannon/oxy-orbits/engine/projector"
	"github.com/Carmen-Shannon/oxy-orbits/engine/scene"
)

func newHeadless(t *testing.T, options ...EngineBuilderOption) Engine {
	t.Helper()
	st := scene.NewStage(camera.NewCamera(), scene.WithSeed(7))
	st.Load(config.Default())
	opts := append([]EngineBuilderOption{
		WithStage(st),
		WithViewport(400, 300),
		WithTickRate(60),
	}, options...)
	return NewEngine(opts...)
}

func TestStepAdvancesClock(t *testing.T) {
	e := newHeadless(t)
	if err := e.Step(30); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got := e.Now(); math.Abs(got-0.5) > 1e-6 {
		t.Fatalf("Now = %v, want 0.5", got)
	}
	if e.Stage().Now() != e.Now() {
		t.Fatalf("stage clock %v != engine clock %v", e.Stage().Now(), e.Now())
	}

	snap := e.Stage().Registry().Snapshot()
	if len(snap) != 7 {
		t.Fatalf("registry has %d entries, want 7", len(snap))
	}
	for _, entry := range snap {
		if entry.ScreenPos == nil {
			t.Fatalf("label %q not projected", entry.Label)
		}
	}
}

func TestPauseFreezesClock(t *testing.T) {
	e := newHeadless(t, WithStartTime(2))
	e.SetPaused(true)
	if err := e.Step(10); err != nil {
		t.Fatal(err)
	}
	if e.Now() != 2 || !e.Paused() {
		t.Fatalf("Now = %v while paused, want 2", e.Now())
	}
	e.SetPaused(false)
	_ = e.Step(6)
	if math.Abs(e.Now()-2.1) > 1e-6 {
		t.Fatalf("Now = %v after resume, want 2.1", e.Now())
	}
}

func TestCallbackOrder(t *testing.T) {
	e := newHeadless(t)
	var order []string
	e.SetTickCallback(func(dt float64) {
		if math.Abs(dt-1.0/60) > 1e-9 {
			t.Errorf("dt = %v", dt)
		}
		order = append(order, "tick")
	})
	e.SetRenderCallback(func(float64) {
		// The stage has already been updated for this frame.
		if e.Stage().Now() != e.Now() {
			t.Errorf("render saw stale stage clock")
		}
		order = append(order, "render")
	})
	_ = e.Step(2)

	want := []string{"tick", "render", "tick", "render"}
	if len(order) != len(want) {
		t.Fatalf("order = %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestStepWithoutStage(t *testing.T) {
	e := NewEngine()
	if err := e.Step(1); !errors.Is(err, ErrNoStage) {
		t.Fatalf("Step = %v, want ErrNoStage", err)
	}
}

func TestEmptyViewportReportsError(t *testing.T) {
	e := newHeadless(t, WithViewport(0, 0))
	if err := e.Step(1); !errors.Is(err, projector.ErrNoSurface) {
		t.Fatalf("Step = %v, want ErrNoSurface", err)
	}

	e.SetViewport(common.Viewport{Width: 320, Height: 240})
	if err := e.Step(1); err != nil {
		t.Fatalf("Step after resize: %v", err)
	}
	if e.LastError() != nil {
		t.Fatalf("LastError = %v", e.LastError())
	}
}

func TestRunHeadlessUntilQuit(t *testing.T) {
	prof := profiler.NewProfiler(profiler.WithQuiet(true))
	e := newHeadless(t, WithTickRate(500), WithProfiler(prof), WithProfiling(true))

	frames := 0
	e.SetRenderCallback(func(float64) {
		frames++
		if frames == 5 {
			e.Quit()
		}
	})

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		e.Quit()
		t.Fatal("Run did not return after Quit")
	}
	if frames < 5 {
		t.Fatalf("frames = %d, want at least 5", frames)
	}
	select {
	case <-e.Done():
	default:
		t.Fatal("Done channel not closed")
	}
	e.Quit()
}
