package view

import (
	"log/slog"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"topiary-garden/input"
)

// ProjectionMode selects how the scene is projected.
type ProjectionMode int

const (
	Perspective ProjectionMode = iota
	Orthographic
)

func (m ProjectionMode) String() string {
	if m == Orthographic {
		return "orthographic"
	}
	return "perspective"
}

const (
	MinSpeed float32 = 0.5
	MaxSpeed float32 = 10

	// scrollStep is the speed change per scroll notch.
	scrollStep float32 = 0.5
	// initialZoom is the perspective field of view in degrees.
	initialZoom float32 = 80
)

// State is everything the viewer mutates between frames. The window
// callbacks are bound to its methods.
type State struct {
	Camera *Camera
	Mode   ProjectionMode
	// Poses holds the dormant pose of each mode. The live pose is the
	// camera's own.
	Poses [2]Pose
	Speed float32

	LastX, LastY float64
	FirstMouse   bool

	LastFrame float64
	DeltaTime float64
	started   bool

	keysPrev map[input.Key]bool
}

// PerspectivePose looks at the garden from the front and above.
func PerspectivePose() Pose {
	// Along (0, -0.5, -2).
	pitch := mgl32.RadToDeg(math32.Atan2(-0.5, 2))
	return NewPose(mgl32.Vec3{0, 5, 12}, DefaultYaw, pitch)
}

// OrthographicPose looks straight down from above the garden.
func OrthographicPose() Pose {
	return NewPose(mgl32.Vec3{0, 15, 0}, DefaultYaw, -maxPitch)
}

func NewState() *State {
	cam := NewCamera(mgl32.Vec3{})
	cam.Zoom = initialZoom

	s := &State{
		Camera:     cam,
		Mode:       Perspective,
		Poses:      [2]Pose{PerspectivePose(), OrthographicPose()},
		Speed:      DefaultSpeed,
		FirstMouse: true,
		keysPrev:   make(map[input.Key]bool),
	}
	cam.SetPose(s.Poses[Perspective])
	cam.MovementSpeed = s.Speed
	return s
}

// switchTo stores the live pose for the current mode and loads the pose
// for mode. Switching to the current mode does nothing.
func (s *State) switchTo(mode ProjectionMode) {
	if s.Mode == mode {
		return
	}
	s.Poses[s.Mode] = s.Camera.Pose()
	s.Camera.SetPose(s.Poses[mode])
	s.Camera.ProcessMouseMovement(0, 0, true)
	s.Mode = mode
	slog.Debug("projection changed", "mode", mode)
}

// MousePosition handles cursor movement. The first event after capture
// only records the position.
func (s *State) MousePosition(x, y float64) {
	if s.FirstMouse {
		s.LastX, s.LastY = x, y
		s.FirstMouse = false
	}

	xoffset := x - s.LastX
	// Screen y grows downward.
	yoffset := s.LastY - y
	s.LastX, s.LastY = x, y

	s.Camera.ProcessMouseMovement(float32(xoffset), float32(yoffset), true)
}

// MouseScroll changes movement speed, shared by both modes.
func (s *State) MouseScroll(_, yoffset float64) {
	s.Speed = mgl32.Clamp(s.Speed+float32(yoffset)*scrollStep, MinSpeed, MaxSpeed)
	s.Camera.MovementSpeed = s.Speed
}

// FocusChanged re-arms the first-mouse guard when the window regains focus
// so the jump the cursor made meanwhile is ignored.
func (s *State) FocusChanged(focused bool) {
	if focused {
		s.FirstMouse = true
	}
}

// pressedOnce reports whether k went down since the previous frame.
func (s *State) pressedOnce(k input.Key, down bool) bool {
	was := s.keysPrev[k]
	s.keysPrev[k] = down
	return down && !was
}
