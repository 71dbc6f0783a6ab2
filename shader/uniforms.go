// Package shader defines how scene and view code address the active shader
// program. Uniforms are set by name; a name the program does not declare is
// ignored by the implementation.
package shader

import "github.com/go-gl/mathgl/mgl32"

// Uniform names shared by the garden shaders.
const (
	Model        = "model"
	View         = "view"
	Projection   = "projection"
	ViewPosition = "viewPosition"

	ObjectColor   = "objectColor"
	ObjectTexture = "objectTexture"
	UseTexture    = "bUseTexture"
	UseLighting   = "bUseLighting"
	UVScale       = "UVscale"
)

type Uniforms interface {
	SetInt(name string, v int32)
	SetBool(name string, v bool)
	SetFloat(name string, v float32)
	SetVec2(name string, v mgl32.Vec2)
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetMat4(name string, m mgl32.Mat4)
	// SetSampler2D points a sampler uniform at a texture unit.
	SetSampler2D(name string, unit int32)
}
