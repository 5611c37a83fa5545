package window

// gesture turns raw button and cursor events into cumulative drag offsets.
type gesture struct {
	active         bool
	startX, startY float64
	lastX, lastY   float64
}

// press starts a gesture at the cursor position.
func (g *gesture) press(x, y float64) (dx, dy float64, down, ok bool) {
	g.active = true
	g.startX, g.startY = x, y
	g.lastX, g.lastY = x, y
	return 0, 0, true, true
}

// move reports the offset since press. ok is false when no gesture is active.
func (g *gesture) move(x, y float64) (dx, dy float64, down, ok bool) {
	if !g.active {
		return 0, 0, false, false
	}
	g.lastX, g.lastY = x, y
	return x - g.startX, y - g.startY, true, true
}

// release ends the gesture and reports its final offset.
func (g *gesture) release(x, y float64) (dx, dy float64, down, ok bool) {
	if !g.active {
		return 0, 0, false, false
	}
	g.active = false
	return x - g.startX, y - g.startY, false, true
}
