package engine

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-orbits/common"
	"github.com/Carmen-Shannon/oxy-orbits/engine/profiler"
	"github.com/Carmen-Shannon/oxy-orbits/engine/scene"
	"github.com/Carmen-Shannon/oxy-orbits/engine/window"
)

// ErrNoStage is returned by Step when the engine has no stage.
var ErrNoStage = errors.New("engine: no stage")

// engine implements the Engine interface.
// Drives the stage once per frame from either the window message loop or a ticker.
type engine struct {
	mu *sync.Mutex

	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window   window.Window
	stage    scene.Stage
	viewport common.Viewport

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float64)
	renderCallback func(deltaTime float64)
	resizeCallback func(width, height int)

	// clock is the animation time in seconds handed to the stage; it stops while paused.
	clock   float64
	paused  bool
	lastErr error
}

// Engine is the main entry point for the engine.
// It owns the animation clock and runs the frame sequence: tick callback, stage update,
// render callback, profiler.
type Engine interface {
	// Window returns the underlying window, or nil for headless engines.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Stage returns the stage driven by the engine.
	//
	// Returns:
	//   - scene.Stage: the stage
	Stage() scene.Stage

	// Viewport returns the surface size projections are computed for.
	//
	// Returns:
	//   - common.Viewport: the current viewport
	Viewport() common.Viewport

	// SetViewport sets the surface size. Window hosts update it from resize events.
	//
	// Parameters:
	//   - v: the new viewport
	SetViewport(v common.Viewport)

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the frame rate of headless runs and the step size of Step.
	//
	// Parameters:
	//   - fps: target frames per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called at the start of every frame, before the
	// stage update. Use it for input processing.
	//
	// Parameters:
	//   - callback: function receiving the frame delta in seconds
	SetTickCallback(callback func(deltaTime float64))

	// SetRenderCallback registers the function called after the stage update each frame.
	// Use it to render and present the overlay.
	//
	// Parameters:
	//   - callback: function receiving the frame delta in seconds
	SetRenderCallback(callback func(deltaTime float64))

	// SetResizeCallback registers the function called after the viewport follows a window resize.
	//
	// Parameters:
	//   - callback: function receiving the new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetPaused freezes or resumes the animation clock. Drag smoothing keeps running while paused.
	//
	// Parameters:
	//   - paused: true to freeze label motion and drift
	SetPaused(paused bool)

	// Paused reports whether the animation clock is frozen.
	//
	// Returns:
	//   - bool: true while paused
	Paused() bool

	// Now returns the animation clock in seconds.
	//
	// Returns:
	//   - float64: seconds of unpaused time since the engine started
	Now() float64

	// Step runs n frames with a fixed delta of one tick. Used by headless hosts and tests.
	//
	// Parameters:
	//   - n: number of frames
	//
	// Returns:
	//   - error: ErrNoStage, or the projection error of the last frame
	Step(n int) error

	// LastError returns the projection error of the most recent frame.
	//
	// Returns:
	//   - error: nil when every label was projected
	LastError() error

	// Run drives frames until Quit is called or the window closes. With a window attached the
	// frames run on the window message loop; otherwise on a ticker at the tick rate.
	Run()

	// Quit signals the engine to stop. Safe to call multiple times; subsequent calls are no-ops.
	Quit()

	// Done returns a channel that is closed once Quit has been called.
	//
	// Returns:
	//   - <-chan struct{}: the quit channel
	Done() <-chan struct{}
}

// NewEngine creates a new Engine instance with the provided options.
//
// Parameters:
//   - options: functional options for engine configuration (window, stage, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		mu:               &sync.Mutex{},
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
		engineTickRate:   time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window != nil {
		if !e.viewport.Valid() {
			e.viewport = common.Viewport{Width: e.window.Width(), Height: e.window.Height()}
		}
		e.window.SetResizeCallback(func(width, height int) {
			e.SetViewport(common.Viewport{Width: width, Height: height})
			e.mu.Lock()
			cb := e.resizeCallback
			e.mu.Unlock()
			if cb != nil {
				cb(width, height)
			}
		})
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Stage() scene.Stage {
	return e.stage
}

func (e *engine) Viewport() common.Viewport {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.viewport
}

func (e *engine) SetViewport(v common.Viewport) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.viewport = v
}

func (e *engine) Run() {
	e.mu.Lock()
	e.running = true
	e.mu.Unlock()

	if e.window != nil {
		e.runWindow()
	} else {
		e.runTicker()
	}

	e.mu.Lock()
	e.running = false
	e.mu.Unlock()
	e.signalQuit()
}

// runWindow drives one frame per message loop iteration. All window and stage calls stay on
// the thread that created the window.
func (e *engine) runWindow() {
	last := time.Now()
	e.window.SetUpdateCallback(func() {
		select {
		case <-e.quitChannel:
			if err := e.window.Close(); err != nil {
				log.Printf("[Engine] close window: %v", err)
			}
			return
		default:
		}
		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now
		e.frame(dt)
	})
	e.window.ProcessMessages()
}

// runTicker runs the fixed-rate frame loop for headless hosts. Listens for dynamic rate
// changes via tickRateChannel and exits when the quit channel is closed.
func (e *engine) runTicker() {
	e.mu.Lock()
	rate := e.engineTickRate
	e.mu.Unlock()

	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(last).Seconds()
			last = now
			e.frame(dt)
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
		}
	}
}

// frame advances the clock by dt and runs one frame. Render panics are recovered and end the run.
func (e *engine) frame(dt float64) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] frame recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	e.mu.Lock()
	if !e.paused && dt > 0 {
		e.clock += dt
	}
	now := e.clock
	viewport := e.viewport
	tick, render := e.tickCallback, e.renderCallback
	profiling := e.profilingEnabled
	e.mu.Unlock()

	if tick != nil {
		tick(dt)
	}

	var err error
	if e.stage != nil {
		err = e.stage.Tick(now, viewport)
	}
	e.mu.Lock()
	e.lastErr = err
	e.mu.Unlock()

	if render != nil {
		render(dt)
	}

	if profiling && e.profiler != nil {
		e.profiler.Tick()
	}
}

func (e *engine) Step(n int) error {
	if e.stage == nil {
		return ErrNoStage
	}
	e.mu.Lock()
	dt := e.engineTickRate.Seconds()
	e.mu.Unlock()
	for i := 0; i < n; i++ {
		e.frame(dt)
	}
	return e.LastError()
}

func (e *engine) LastError() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastErr
}

// Quit signals all engine loops to stop.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all loops to exit.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

func (e *engine) Done() <-chan struct{} {
	return e.quitChannel
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = false
}

// SetTickRate sets the engine tick rate in frames per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Duration(float64(time.Second) / fps)

	e.mu.Lock()
	e.engineTickRate = newRate
	running := e.running
	e.mu.Unlock()

	if running {
		// Non-blocking send - if channel is full, replace the pending value
		select {
		case e.tickRateChannel <- newRate:
		default:
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	}
}

func (e *engine) SetTickCallback(callback func(deltaTime float64)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tickCallback = callback
}

func (e *engine) SetRenderCallback(callback func(deltaTime float64)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderCallback = callback
}

func (e *engine) SetResizeCallback(callback func(width, height int)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resizeCallback = callback
}

func (e *engine) SetPaused(paused bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.paused = paused
}

func (e *engine) Paused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.paused
}

func (e *engine) Now() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.clock
}
