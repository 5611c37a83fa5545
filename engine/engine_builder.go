package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-orbits/common"
	"github.com/Carmen-Shannon/oxy-orbits/engine/profiler"
	"github.com/Carmen-Shannon/oxy-orbits/engine/scene"
	"github.com/Carmen-Shannon/oxy-orbits/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithProfiler replaces the default profiler.
//
// Parameters:
//   - p: the profiler to tick each frame
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		if p != nil {
			e.profiler = p
		}
	}
}

// WithTickRate sets the engine tick rate in frames per second.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.engineTickRate = time.Duration(float64(time.Second) / fps)
	}
}

// WithWindow attaches a window. Frames then run on its message loop and the viewport
// follows its framebuffer size.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithStage sets the stage updated each frame.
//
// Parameters:
//   - s: the Stage to drive
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithStage(s scene.Stage) EngineBuilderOption {
	return func(e *engine) {
		e.stage = s
	}
}

// WithViewport sets the initial viewport. Required for headless engines.
//
// Parameters:
//   - width: surface width in pixels
//   - height: surface height in pixels
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithViewport(width, height int) EngineBuilderOption {
	return func(e *engine) {
		e.viewport = common.Viewport{Width: width, Height: height}
	}
}

// WithStartTime sets the animation clock's initial value in seconds.
//
// Parameters:
//   - seconds: initial clock value
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithStartTime(seconds float64) EngineBuilderOption {
	return func(e *engine) {
		e.clock = seconds
	}
}
