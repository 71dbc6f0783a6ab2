package view

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"topiary-garden/config"
	"topiary-garden/input"
	"topiary-garden/internal/headless"
	"topiary-garden/shader"
)

func newTestManager() (*Manager, *headless.Window, *headless.Recorder) {
	win := headless.NewWindow()
	rec := headless.NewRecorder()
	return NewManager(rec, win, config.Default().Window), win, rec
}

// frame advances the clock by dt and runs one view update.
func frame(m *Manager, w *headless.Window, dt float64) {
	w.Advance(dt)
	m.PrepareSceneView()
}

func TestInitialPose(t *testing.T) {
	m, _, _ := newTestManager()
	s := m.State()

	assert.Equal(t, Perspective, s.Mode)
	assert.Equal(t, mgl32.Vec3{0, 5, 12}, s.Camera.Position)
	assertVec3(t, mgl32.Vec3{0, -0.5, -2}.Normalize(), s.Camera.Front)
	assert.Equal(t, float32(80), s.Camera.Zoom)
	assert.Equal(t, float32(2.5), s.Speed)
}

func TestSwitchIsIdempotent(t *testing.T) {
	once, _, _ := newTestManager()
	once.SwitchToOrthographic()

	twice, _, _ := newTestManager()
	twice.SwitchToOrthographic()
	twice.SwitchToOrthographic()

	assert.Equal(t, once.State().Camera.Pose(), twice.State().Camera.Pose())
	assert.Equal(t, once.State().Poses, twice.State().Poses)
	assert.Equal(t, Orthographic, twice.State().Mode)

	twice.SwitchToPerspective()
	twice.SwitchToPerspective()
	assert.Equal(t, Perspective, twice.State().Mode)
}

func TestOrthographicPoseLooksDown(t *testing.T) {
	m, _, _ := newTestManager()
	m.SwitchToOrthographic()

	cam := m.State().Camera
	assert.Equal(t, mgl32.Vec3{0, 15, 0}, cam.Position)
	assert.Equal(t, float32(-89), cam.Pitch)
	assert.Less(t, cam.Front.Y(), float32(-0.99))
	assert.Less(t, cam.Up.Z(), float32(-0.99))
}

func TestToggleRoundTripIsLossless(t *testing.T) {
	m, w, _ := newTestManager()

	// Move and turn in perspective first.
	w.Press(input.KeyW)
	w.Press(input.KeyA)
	frame(m, w, 0)
	frame(m, w, 0.37)
	w.Release(input.KeyW)
	w.Release(input.KeyA)
	w.MoveCursor(100, 100)
	w.MoveCursor(137, 81)
	frame(m, w, 0.016)

	before := m.State().Camera.Pose()

	m.SwitchToOrthographic()
	w.Press(input.KeyD)
	frame(m, w, 0.25)
	w.Release(input.KeyD)
	w.MoveCursor(300, 400)
	m.SwitchToPerspective()

	assert.Equal(t, before, m.State().Camera.Pose())
	assert.NotEqual(t, OrthographicPose(), m.State().Poses[Orthographic])
}

func TestToggleKeysAreEdgeTriggered(t *testing.T) {
	m, w, _ := newTestManager()

	w.Press(input.KeyO)
	frame(m, w, 0.016)
	assert.Equal(t, Orthographic, m.State().Mode)

	// Still held: switching back by method must stick across frames.
	m.SwitchToPerspective()
	frame(m, w, 0.016)
	frame(m, w, 0.016)
	assert.Equal(t, Perspective, m.State().Mode)

	w.Release(input.KeyO)
	frame(m, w, 0.016)
	w.Press(input.KeyO)
	frame(m, w, 0.016)
	assert.Equal(t, Orthographic, m.State().Mode)

	w.Press(input.KeyP)
	frame(m, w, 0.016)
	assert.Equal(t, Perspective, m.State().Mode, "held O must not re-trigger")
}

func TestScrollSpeedIsClamped(t *testing.T) {
	m, w, _ := newTestManager()
	s := m.State()

	w.Scroll(0, 1)
	assert.Equal(t, float32(3), s.Speed)
	assert.Equal(t, float32(3), s.Camera.MovementSpeed)

	w.Scroll(0, 1e6)
	assert.Equal(t, MaxSpeed, s.Speed)

	w.Scroll(0, -1e6)
	assert.Equal(t, MinSpeed, s.Speed)

	for _, d := range []float64{3, -1, 40, -2.5, 0.25, -17, 9, 9, 9} {
		w.Scroll(0, d)
		assert.GreaterOrEqual(t, s.Speed, MinSpeed)
		assert.LessOrEqual(t, s.Speed, MaxSpeed)
	}

	// Speed survives a projection toggle.
	speed := s.Speed
	m.SwitchToOrthographic()
	assert.Equal(t, speed, s.Camera.MovementSpeed)
}

func TestFirstMouseEventHasNoDelta(t *testing.T) {
	m, w, _ := newTestManager()
	before := m.State().Camera.Pose()

	w.MoveCursor(5000, -3000)
	assert.Equal(t, before, m.State().Camera.Pose())

	w.MoveCursor(5010, -3000)
	assert.InDelta(t, before.Yaw+1, m.State().Camera.Yaw, 1e-5)

	// Moving the cursor up raises the pitch.
	w.MoveCursor(5010, -3010)
	assert.InDelta(t, before.Pitch+1, m.State().Camera.Pitch, 1e-5)
}

func TestFocusRegainIgnoresCursorJump(t *testing.T) {
	m, w, _ := newTestManager()
	w.MoveCursor(10, 10)
	w.Focus(false)
	w.Focus(true)

	before := m.State().Camera.Pose()
	w.MoveCursor(900, 900)
	assert.Equal(t, before, m.State().Camera.Pose())
}

func TestEscapeRequestsClose(t *testing.T) {
	m, w, _ := newTestManager()
	frame(m, w, 0.016)
	assert.False(t, w.ShouldClose())

	w.Press(input.KeyEscape)
	frame(m, w, 0.016)
	assert.True(t, w.ShouldClose())
}

func TestMovementScalesWithDeltaTime(t *testing.T) {
	m, w, _ := newTestManager()
	frame(m, w, 10)
	start := m.State().Camera.Position
	assert.Equal(t, mgl32.Vec3{0, 5, 12}, start, "first frame has no elapsed time")

	w.Press(input.KeyW)
	w.Press(input.KeyQ)
	frame(m, w, 0.5)

	cam := m.State().Camera
	want := start.Add(cam.Front.Mul(1.25)).Add(cam.Up.Mul(1.25))
	assertVec3(t, want, cam.Position)
	assert.InDelta(t, 0.5, m.State().DeltaTime, 1e-9)
}

func TestPrepareSceneViewUploads(t *testing.T) {
	m, w, rec := newTestManager()
	frame(m, w, 0.016)

	cam := m.State().Camera
	view, ok := rec.Last(shader.View)
	require.True(t, ok)
	assert.Equal(t, cam.ViewMatrix(), view.Value)

	proj, ok := rec.Last(shader.Projection)
	require.True(t, ok)
	assert.Equal(t, mgl32.Perspective(mgl32.DegToRad(80), 1.25, 0.1, 100), proj.Value)

	pos, ok := rec.Last(shader.ViewPosition)
	require.True(t, ok)
	assert.Equal(t, cam.Position, pos.Value)

	m.SwitchToOrthographic()
	frame(m, w, 0.016)
	proj, _ = rec.Last(shader.Projection)
	assert.Equal(t, mgl32.Ortho(-12.5, 12.5, -10, 10, 0.1, 100), proj.Value)
}

func TestNilUniformsStillProcessesInput(t *testing.T) {
	w := headless.NewWindow()
	m := NewManager(nil, w, config.Default().Window)
	w.Press(input.KeyO)
	m.PrepareSceneView()
	assert.Equal(t, Orthographic, m.State().Mode)
}
