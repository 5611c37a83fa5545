package main

import (
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbits/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbits/engine/config"
	"github.com/Carmen-Shannon/oxy-orbits/engine/scene"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func screenText(screen tcell.Screen) []string {
	cols, rows := screen.Size()
	lines := make([]string, rows)
	for y := 0; y < rows; y++ {
		var b strings.Builder
		for x := 0; x < cols; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			if r == 0 {
				r = ' '
			}
			b.WriteRune(r)
		}
		lines[y] = b.String()
	}
	return lines
}

func TestDrawPlacesChipAboveDot(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	s := scene.NewStage(camera.NewCamera(), scene.WithSeed(1))
	s.AddOrbit(config.OrbitConfig{Labels: []config.LabelConfig{{Text: "Research", Pos: 0.5}}})
	if err := s.Tick(0, viewport(80, 24)); err != nil {
		t.Fatal(err)
	}

	draw(screen, s)
	lines := screenText(screen)

	e, _ := s.Registry().Get("Research")
	x, y := cell(*e.ScreenPos)
	if r, _, _, _ := screen.GetContent(x, y); r != '●' {
		t.Fatalf("cell (%d,%d) = %q, want dot", x, y, r)
	}
	if !strings.Contains(lines[y-1], " Research ") {
		t.Fatalf("row %d = %q, want chip text", y-1, lines[y-1])
	}

	rings := 0
	for _, l := range lines {
		rings += strings.Count(l, "·")
	}
	if rings == 0 {
		t.Fatal("no ring cells drawn")
	}
}

func TestDrawUnprojectedChipAtOrigin(t *testing.T) {
	screen := newSimScreen(t, 40, 10)
	s := scene.NewStage(camera.NewCamera(), scene.WithSeed(1))
	s.AddOrbit(config.OrbitConfig{Labels: []config.LabelConfig{{Text: "Futures", Pos: 0, Color: "#80deea"}}})

	draw(screen, s)
	if got := screenText(screen)[0]; !strings.HasPrefix(got, " Futures ") {
		t.Fatalf("row 0 = %q, want chip at origin", got)
	}
	_, _, style, _ := screen.GetContent(1, 0)
	_, bg, _ := style.Decompose()
	if bg != tcell.NewRGBColor(0x80, 0xde, 0xea) {
		t.Fatalf("chip background = %v", bg)
	}
}

func TestViewportKeepsCirclesRound(t *testing.T) {
	vp := viewport(80, 24)
	if vp.Width != 80 || vp.Height != 48 {
		t.Fatalf("viewport = %+v", vp)
	}
	if x, y := cell(mgl64.Vec2{10.7, 9.9}); x != 10 || y != 4 {
		t.Fatalf("cell = (%d,%d), want (10,4)", x, y)
	}
}
