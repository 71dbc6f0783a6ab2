package view

import (
	"github.com/go-gl/mathgl/mgl32"

	"topiary-garden/config"
	"topiary-garden/input"
	"topiary-garden/shader"
)

const (
	near float32 = 0.1
	far  float32 = 100
	// orthoHalfHeight is half the visible height in world units.
	orthoHalfHeight float32 = 10
)

// Window is what the viewer needs from the display window.
type Window interface {
	KeyPressed(k input.Key) bool
	SetShouldClose(v bool)
	// Time returns seconds since the window was created.
	Time() float64
	SetCursorPosCallback(cb func(x, y float64))
	SetScrollCallback(cb func(dx, dy float64))
	SetFocusCallback(cb func(focused bool))
}

type Manager struct {
	uniforms shader.Uniforms
	window   Window
	aspect   float32
	state    *State
}

// NewManager creates the viewer state and binds it to the window's input
// callbacks.
func NewManager(uniforms shader.Uniforms, window Window, cfg config.Window) *Manager {
	m := &Manager{
		uniforms: uniforms,
		window:   window,
		aspect:   cfg.Aspect(),
		state:    NewState(),
	}
	window.SetCursorPosCallback(m.state.MousePosition)
	window.SetScrollCallback(m.state.MouseScroll)
	window.SetFocusCallback(m.state.FocusChanged)
	return m
}

func (m *Manager) State() *State { return m.state }

func (m *Manager) SwitchToOrthographic() { m.state.switchTo(Orthographic) }
func (m *Manager) SwitchToPerspective()  { m.state.switchTo(Perspective) }

// ProcessKeyboardEvents polls the keys once. Movement keys combine freely;
// O and P switch projection on the press edge only.
func (m *Manager) ProcessKeyboardEvents() {
	w, cam := m.window, m.state.Camera

	if w.KeyPressed(input.KeyEscape) {
		w.SetShouldClose(true)
	}

	dt := float32(m.state.DeltaTime)
	moves := [...]struct {
		key input.Key
		dir Movement
	}{
		{input.KeyW, Forward},
		{input.KeyS, Backward},
		{input.KeyA, Left},
		{input.KeyD, Right},
		{input.KeyQ, Up},
		{input.KeyE, Down},
	}
	for _, mv := range moves {
		if w.KeyPressed(mv.key) {
			cam.ProcessKeyboard(mv.dir, dt)
		}
	}

	if m.state.pressedOnce(input.KeyP, w.KeyPressed(input.KeyP)) {
		m.SwitchToPerspective()
	}
	if m.state.pressedOnce(input.KeyO, w.KeyPressed(input.KeyO)) {
		m.SwitchToOrthographic()
	}
}

// Projection returns the projection matrix for the current mode.
func (m *Manager) Projection() mgl32.Mat4 {
	if m.state.Mode == Orthographic {
		w := orthoHalfHeight * m.aspect
		return mgl32.Ortho(-w, w, -orthoHalfHeight, orthoHalfHeight, near, far)
	}
	return mgl32.Perspective(mgl32.DegToRad(m.state.Camera.Zoom), m.aspect, near, far)
}

// PrepareSceneView advances the frame clock, applies keyboard input and
// uploads the view, projection and camera position.
func (m *Manager) PrepareSceneView() {
	s := m.state
	now := m.window.Time()
	if !s.started {
		s.LastFrame = now
		s.started = true
	}
	s.DeltaTime = now - s.LastFrame
	s.LastFrame = now

	m.ProcessKeyboardEvents()

	if m.uniforms == nil {
		return
	}
	m.uniforms.SetMat4(shader.View, s.Camera.ViewMatrix())
	m.uniforms.SetMat4(shader.Projection, m.Projection())
	m.uniforms.SetVec3(shader.ViewPosition, s.Camera.Position)
}
