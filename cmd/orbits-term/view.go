package main

import (
	"github.com/Carmen-Shannon/oxy-orbits/common"
	"github.com/Carmen-Shannon/oxy-orbits/engine/config"
	"github.com/Carmen-Shannon/oxy-orbits/engine/projector"
	"github.com/Carmen-Shannon/oxy-orbits/engine/scene"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
)

// Terminal cells are about twice as tall as wide. Projections use a viewport of one unit per
// cell horizontally and two per cell vertically so circles stay round.
const (
	rowScale     = 2
	cellWidthPx  = 8
	cellHeightPx = 16
	ringSamples  = 72
)

var (
	ringStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	dotStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	chipStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(0xee, 0xee, 0xee))
	baseStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

// viewport returns the projection viewport for a terminal of cols x rows cells.
func viewport(cols, rows int) common.Viewport {
	return common.Viewport{Width: cols, Height: rows * rowScale}
}

// cell maps a projected position to a terminal cell.
func cell(p mgl64.Vec2) (int, int) {
	return int(p[0]), int(p[1] / rowScale)
}

// draw renders the stage onto screen: dotted rings, one dot per label, and text chips
// centred one row above their dot.
func draw(screen tcell.Screen, s scene.Stage) {
	cols, rows := screen.Size()
	vp := viewport(cols, rows)
	screen.SetStyle(baseStyle)
	screen.Clear()

	cam := s.Camera()
	for _, o := range s.Orbits() {
		pts, err := o.Path.Sample(ringSamples)
		if err != nil {
			continue
		}
		world := o.Node.WorldMatrix()
		for i, p := range pts {
			if i%2 == 1 {
				continue
			}
			w := world.Mul4x1(mgl64.Vec4{p[0], p[1], 0, 1}).Vec3()
			if sp, err := projector.Project(w, cam, vp); err == nil {
				x, y := cell(sp)
				setIfBlank(screen, x, y, '·', ringStyle)
			}
		}
		for _, l := range o.Labels {
			if !l.Node.Visible() {
				continue
			}
			if sp, err := projector.Project(l.Node.WorldPosition(), cam, vp); err == nil {
				x, y := cell(sp)
				screen.SetContent(x, y, '●', nil, dotStyle)
			}
		}
	}

	for _, e := range s.Registry().Snapshot() {
		style := chipStyle
		if e.Color != "" {
			if c, err := config.ParseColor(e.Color); err == nil {
				style = style.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			}
		}
		text := []rune(" " + e.Label + " ")
		x, y := 0, 0
		if e.ScreenPos != nil {
			cx, cy := cell(*e.ScreenPos)
			x, y = cx-len(text)/2, cy-1
		}
		for i, r := range text {
			screen.SetContent(x+i, y, r, nil, style)
		}
	}
}

// setIfBlank writes r unless the cell already holds something other than a space.
func setIfBlank(screen tcell.Screen, x, y int, r rune, style tcell.Style) {
	if cur, _, _, _ := screen.GetContent(x, y); cur != ' ' && cur != 0 {
		return
	}
	screen.SetContent(x, y, r, nil, style)
}
