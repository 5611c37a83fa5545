// Command orbits-record renders the orbit scene headlessly at a fixed frame rate and writes
// each frame as a PNG.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Carmen-Shannon/oxy-orbits/engine"
	"github.com/Carmen-Shannon/oxy-orbits/engine/config"
	"github.com/Carmen-Shannon/oxy-orbits/engine/overlay"
	"github.com/Carmen-Shannon/oxy-orbits/engine/recorder"
	"github.com/Carmen-Shannon/oxy-orbits/engine/scene"
	"github.com/go-gl/mathgl/mgl64"
)

type options struct {
	configPath string
	seed       uint64
	frames     int
	fps        float64
	out        string
	width      int
	height     int
	drag       mgl64.Vec2
	workers    int
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

func parseFlags(args []string) (options, error) {
	var o options
	var drag string
	fs := flag.NewFlagSet("orbits-record", flag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", "", "scene YAML file (built-in scene when empty)")
	fs.Uint64Var(&o.seed, "seed", 1, "seed for label speed factors")
	fs.IntVar(&o.frames, "frames", 120, "number of frames to write")
	fs.Float64Var(&o.fps, "fps", 30, "frames per second of animation time")
	fs.StringVar(&o.out, "out", "frames", "output directory")
	fs.IntVar(&o.width, "width", 0, "frame width in pixels (config window width when 0)")
	fs.IntVar(&o.height, "height", 0, "frame height in pixels (config window height when 0)")
	fs.StringVar(&drag, "drag", "", "pointer drag applied before recording, as dx,dy pixels")
	fs.IntVar(&o.workers, "workers", 0, "PNG encoder goroutines (one per CPU when 0)")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.frames <= 0 {
		return o, errors.New("-frames must be positive")
	}
	if o.fps <= 0 {
		return o, errors.New("-fps must be positive")
	}
	if drag != "" {
		d, err := parseDrag(drag)
		if err != nil {
			return o, err
		}
		o.drag = d
	}
	return o, nil
}

// parseDrag parses "dx,dy" into a pointer offset.
func parseDrag(s string) (mgl64.Vec2, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return mgl64.Vec2{}, fmt.Errorf("-drag %q: want dx,dy", s)
	}
	var v mgl64.Vec2
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return mgl64.Vec2{}, fmt.Errorf("-drag %q: %w", s, err)
		}
		v[i] = f
	}
	return v, nil
}

func run(o options) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	width := o.width
	if width <= 0 {
		width = cfg.Window.Width
	}
	height := o.height
	if height <= 0 {
		height = cfg.Window.Height
	}

	stage := scene.NewStageFromConfig(cfg, scene.WithSeed(o.seed))
	if o.drag != (mgl64.Vec2{}) {
		stage.Drag().Drag(o.drag, true)
		stage.Drag().Drag(o.drag, false)
	}

	ov, err := overlay.NewOverlay()
	if err != nil {
		return fmt.Errorf("create overlay: %w", err)
	}
	defer ov.Close()

	var recOpts []recorder.RecorderBuilderOption
	if o.workers > 0 {
		recOpts = append(recOpts, recorder.WithWorkers(o.workers))
	}
	rec, err := recorder.NewRecorder(o.out, recOpts...)
	if err != nil {
		return err
	}

	eng := engine.NewEngine(
		engine.WithStage(stage),
		engine.WithViewport(width, height),
		engine.WithTickRate(o.fps),
	)

	var renderErr error
	eng.SetRenderCallback(func(float64) {
		if renderErr != nil {
			return
		}
		frame, err := ov.Render(stage, eng.Viewport())
		if err != nil {
			renderErr = err
			return
		}
		if _, err := rec.Record(frame); err != nil {
			renderErr = err
		}
	})

	stepErr := eng.Step(o.frames)
	closeErr := rec.Close()
	if stepErr != nil {
		log.Printf("[Recorder] last frame projection: %v", stepErr)
	}
	return errors.Join(renderErr, closeErr)
}
