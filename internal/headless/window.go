package headless

import "topiary-garden/input"

// Window is a scripted window. Tests and the frame dump drive it by
// pressing keys, moving the cursor and advancing the clock.
type Window struct {
	Clock float64

	keys        map[input.Key]bool
	shouldClose bool

	cursor func(x, y float64)
	scroll func(dx, dy float64)
	focus  func(focused bool)
}

func NewWindow() *Window {
	return &Window{keys: make(map[input.Key]bool)}
}

func (w *Window) KeyPressed(k input.Key) bool { return w.keys[k] }
func (w *Window) SetShouldClose(v bool)       { w.shouldClose = v }
func (w *Window) ShouldClose() bool           { return w.shouldClose }
func (w *Window) Time() float64               { return w.Clock }

func (w *Window) SetCursorPosCallback(cb func(x, y float64)) { w.cursor = cb }
func (w *Window) SetScrollCallback(cb func(dx, dy float64))  { w.scroll = cb }
func (w *Window) SetFocusCallback(cb func(focused bool))     { w.focus = cb }

func (w *Window) Press(k input.Key)   { w.keys[k] = true }
func (w *Window) Release(k input.Key) { delete(w.keys, k) }

// Advance moves the clock forward by dt seconds.
func (w *Window) Advance(dt float64) { w.Clock += dt }

// MoveCursor delivers a cursor-position event.
func (w *Window) MoveCursor(x, y float64) {
	if w.cursor != nil {
		w.cursor(x, y)
	}
}

// Scroll delivers a scroll event.
func (w *Window) Scroll(dx, dy float64) {
	if w.scroll != nil {
		w.scroll(dx, dy)
	}
}

// Focus delivers a focus change.
func (w *Window) Focus(focused bool) {
	if w.focus != nil {
		w.focus(focused)
	}
}
