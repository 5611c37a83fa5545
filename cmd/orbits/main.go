// Command orbits opens a window showing labels circling a tilted set of orbit rings.
// Drag with the left mouse button to rotate, scroll to zoom, space or P to pause,
// R to reset the rotation and Q or Esc to quit.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Carmen-Shannon/oxy-orbits/common"
	"github.com/Carmen-Shannon/oxy-orbits/engine"
	"github.com/Carmen-Shannon/oxy-orbits/engine/config"
	"github.com/Carmen-Shannon/oxy-orbits/engine/overlay"
	"github.com/Carmen-Shannon/oxy-orbits/engine/profiler"
	"github.com/Carmen-Shannon/oxy-orbits/engine/renderer"
	"github.com/Carmen-Shannon/oxy-orbits/engine/scene"
	"github.com/Carmen-Shannon/oxy-orbits/engine/window"
	"github.com/go-gl/mathgl/mgl64"
)

func main() {
	configPath := flag.String("config", "", "scene YAML file (built-in scene when empty)")
	seed := flag.Uint64("seed", 0, "seed for label speed factors (random when 0)")
	profile := flag.Bool("profile", false, "log frame rate and memory stats every second")
	vsync := flag.Bool("vsync", true, "wait for vertical blank when presenting")
	software := flag.Bool("software", false, "force the software GPU adapter")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	var stageOpts []scene.StageBuilderOption
	if *seed != 0 {
		stageOpts = append(stageOpts, scene.WithSeed(*seed))
	}
	stage := scene.NewStageFromConfig(cfg, stageOpts...)

	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithWidth(cfg.Window.Width),
		window.WithHeight(cfg.Window.Height),
	)
	defer win.Close()

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithStage(stage),
		engine.WithProfiling(*profile),
		engine.WithProfiler(profiler.NewProfiler(profiler.WithExtra(func() string {
			return fmt.Sprintf("Labels: %d", stage.LabelCount())
		}))),
	)

	mode := renderer.PresentModeVSync
	if !*vsync {
		mode = renderer.PresentModeUncapped
	}
	r := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		win,
		renderer.WithPresentMode(mode),
		renderer.WithForceSoftwareRenderer(*software),
	)
	defer r.Close()

	ov, err := overlay.NewOverlay()
	if err != nil {
		log.Fatalf("create overlay: %v", err)
	}
	defer ov.Close()

	win.SetDragCallback(func(dx, dy float64, down bool) {
		stage.Drag().Drag(mgl64.Vec2{dx, dy}, down)
	})
	win.SetScrollCallback(func(delta float32) {
		stage.Camera().ZoomBy(float64(delta))
	})
	win.SetKeyDownCallback(func(key uint32) {
		switch key {
		case common.KeySpace, common.KeyP:
			eng.SetPaused(!eng.Paused())
		case common.KeyR:
			stage.Drag().Reset()
		case common.KeyQ:
			eng.Quit()
		}
	})
	eng.SetResizeCallback(r.Resize)

	var lastErr string
	eng.SetRenderCallback(func(float64) {
		frame, err := ov.Render(stage, eng.Viewport())
		if err == nil {
			err = r.Present(frame)
		}
		if err != nil {
			if msg := err.Error(); msg != lastErr {
				log.Printf("[Renderer] frame skipped: %v", err)
				lastErr = msg
			}
			return
		}
		lastErr = ""
	})

	eng.Run()
}
