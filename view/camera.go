// Package view owns the viewer: a free-fly camera, its input mapping and
// the per-frame view and projection uniforms.
package view

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Movement is a camera translation direction.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
	Up
	Down
)

const (
	DefaultYaw         float32 = -90
	DefaultPitch       float32 = 0
	DefaultSpeed       float32 = 2.5
	DefaultSensitivity float32 = 0.1
	DefaultZoom        float32 = 45

	maxPitch float32 = 89
)

var worldUp = mgl32.Vec3{0, 1, 0}

// Camera is a yaw/pitch camera. Front, Right and Up are derived from Yaw
// and Pitch and must only change through updateVectors.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32
	Pitch float32

	MovementSpeed    float32
	MouseSensitivity float32
	// Zoom is the vertical field of view in degrees.
	Zoom float32
}

// NewCamera returns a camera at position looking down -Z.
func NewCamera(position mgl32.Vec3) *Camera {
	c := &Camera{
		Position:         position,
		WorldUp:          worldUp,
		Yaw:              DefaultYaw,
		Pitch:            DefaultPitch,
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
		Zoom:             DefaultZoom,
	}
	c.updateVectors()
	return c
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProcessKeyboard moves the camera by MovementSpeed * dt along dir.
func (c *Camera) ProcessKeyboard(dir Movement, dt float32) {
	velocity := c.MovementSpeed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	case Up:
		c.Position = c.Position.Add(c.Up.Mul(velocity))
	case Down:
		c.Position = c.Position.Sub(c.Up.Mul(velocity))
	}
}

// ProcessMouseMovement turns the camera by the given offsets, scaled by
// MouseSensitivity. With constrainPitch the pitch stays within ±89 degrees
// so the view never flips.
func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32, constrainPitch bool) {
	c.Yaw += xoffset * c.MouseSensitivity
	c.Pitch += yoffset * c.MouseSensitivity

	if constrainPitch {
		if c.Pitch > maxPitch {
			c.Pitch = maxPitch
		}
		if c.Pitch < -maxPitch {
			c.Pitch = -maxPitch
		}
	}
	c.updateVectors()
}

func (c *Camera) updateVectors() {
	c.Front, c.Right, c.Up = basis(c.Yaw, c.Pitch, c.WorldUp)
}

func basis(yaw, pitch float32, up mgl32.Vec3) (front, right, camUp mgl32.Vec3) {
	y, p := mgl32.DegToRad(yaw), mgl32.DegToRad(pitch)
	front = mgl32.Vec3{
		math32.Cos(y) * math32.Cos(p),
		math32.Sin(p),
		math32.Sin(y) * math32.Cos(p),
	}.Normalize()
	right = front.Cross(up).Normalize()
	camUp = right.Cross(front).Normalize()
	return front, right, camUp
}

// Pose is the part of a camera saved per projection mode.
type Pose struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	Yaw      float32
	Pitch    float32
}

// NewPose builds a pose whose vectors agree with yaw and pitch.
func NewPose(position mgl32.Vec3, yaw, pitch float32) Pose {
	front, right, up := basis(yaw, pitch, worldUp)
	return Pose{Position: position, Front: front, Up: up, Right: right, Yaw: yaw, Pitch: pitch}
}

func (c *Camera) Pose() Pose {
	return Pose{
		Position: c.Position,
		Front:    c.Front,
		Up:       c.Up,
		Right:    c.Right,
		Yaw:      c.Yaw,
		Pitch:    c.Pitch,
	}
}

// SetPose loads p. Speed, sensitivity and zoom are left as they are.
func (c *Camera) SetPose(p Pose) {
	c.Position = p.Position
	c.Front = p.Front
	c.Up = p.Up
	c.Right = p.Right
	c.Yaw = p.Yaw
	c.Pitch = p.Pitch
}
