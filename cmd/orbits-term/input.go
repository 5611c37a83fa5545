package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
)

type action int

const (
	actionNone action = iota
	actionQuit
	actionPause
	actionReset
	actionZoomIn
	actionZoomOut
)

// keyAction maps a key event to a host action.
func keyAction(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return actionQuit
		case ' ', 'p', 'P':
			return actionPause
		case 'r', 'R':
			return actionReset
		case '+', '=':
			return actionZoomIn
		case '-':
			return actionZoomOut
		}
	}
	return actionNone
}

// mouseDrag turns tcell mouse events into cumulative drag offsets in approximate pixels.
type mouseDrag struct {
	active bool
	origin [2]int
	last   mgl64.Vec2
}

// update consumes one mouse event. ok is false when the event is not part of a gesture.
func (m *mouseDrag) update(ev *tcell.EventMouse) (movement mgl64.Vec2, down, ok bool) {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0
	switch {
	case pressed && !m.active:
		m.active = true
		m.origin = [2]int{x, y}
		m.last = mgl64.Vec2{}
		return m.last, true, true
	case pressed:
		m.last = mgl64.Vec2{
			float64(x-m.origin[0]) * cellWidthPx,
			float64(y-m.origin[1]) * cellHeightPx,
		}
		return m.last, true, true
	case m.active:
		m.active = false
		return m.last, false, true
	}
	return mgl64.Vec2{}, false, false
}

// wheel returns the zoom delta for wheel events.
func wheel(ev *tcell.EventMouse) float64 {
	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		return 1
	case ev.Buttons()&tcell.WheelDown != 0:
		return -1
	}
	return 0
}
