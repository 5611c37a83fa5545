// Command orbits-term draws the orbit scene in a terminal. Drag with the mouse to rotate,
// scroll or +/- to zoom, space or p to pause, r to reset and q or Esc to quit.
package main

import (
	"flag"
	"log"

	"github.com/Carmen-Shannon/oxy-orbits/engine"
	"github.com/Carmen-Shannon/oxy-orbits/engine/config"
	"github.com/Carmen-Shannon/oxy-orbits/engine/scene"
	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "scene YAML file (built-in scene when empty)")
	seed := flag.Uint64("seed", 0, "seed for label speed factors (random when 0)")
	fps := flag.Float64("fps", 30, "frames per second")
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}
	screen.EnableMouse()
	defer screen.Fini()

	cols, rows := screen.Size()
	vp := viewport(cols, rows)
	eng := engine.NewEngine(
		engine.WithStage(stage),
		engine.WithViewport(vp.Width, vp.Height),
		engine.WithTickRate(*fps),
	)
	eng.SetRenderCallback(func(float64) {
		draw(screen, stage)
		screen.Show()
	})

	go pollEvents(screen, eng, stage)
	eng.Run()
}

// pollEvents feeds terminal input into the engine until the screen is finalised.
func pollEvents(screen tcell.Screen, eng engine.Engine, stage scene.Stage) {
	var drag mouseDrag
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch keyAction(ev) {
			case actionQuit:
				eng.Quit()
				return
			case actionPause:
				eng.SetPaused(!eng.Paused())
			case actionReset:
				stage.Drag().Reset()
			case actionZoomIn:
				stage.Camera().ZoomBy(1)
			case actionZoomOut:
				stage.Camera().ZoomBy(-1)
			}
		case *tcell.EventMouse:
			if d := wheel(ev); d != 0 {
				stage.Camera().ZoomBy(d)
				continue
			}
			if movement, down, ok := drag.update(ev); ok {
				stage.Drag().Drag(movement, down)
			}
		case *tcell.EventResize:
			cols, rows := ev.Size()
			vp := viewport(cols, rows)
			eng.SetViewport(vp)
			screen.Sync()
		}
	}
}
