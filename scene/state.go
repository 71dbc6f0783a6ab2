package scene

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"topiary-garden/shader"
)

// Material struct members in the fragment shader.
const (
	uniformAmbientColor    = "material.ambientColor"
	uniformAmbientStrength = "material.ambientStrength"
	uniformDiffuseColor    = "material.diffuseColor"
	uniformSpecularColor   = "material.specularColor"
	uniformShininess       = "material.shininess"
)

// ModelMatrix composes T * Rx * Ry * Rz * S. Rotations are in degrees.
func ModelMatrix(scale mgl32.Vec3, rotX, rotY, rotZ float32, position mgl32.Vec3) mgl32.Mat4 {
	t := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(rotX))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(rotY))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotZ))
	s := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	return t.Mul4(rx).Mul4(ry).Mul4(rz).Mul4(s)
}

// SetTransformations uploads the model matrix for the next draw.
func (m *Manager) SetTransformations(scale mgl32.Vec3, rotX, rotY, rotZ float32, position mgl32.Vec3) {
	if m.uniforms == nil {
		return
	}
	m.uniforms.SetMat4(shader.Model, ModelMatrix(scale, rotX, rotY, rotZ, position))
}

// SetShaderColor turns texturing off and sets a flat RGBA colour.
func (m *Manager) SetShaderColor(r, g, b, a float32) {
	if m.uniforms == nil {
		return
	}
	m.uniforms.SetBool(shader.UseTexture, false)
	m.uniforms.SetVec4(shader.ObjectColor, mgl32.Vec4{r, g, b, a})
}

// MissingTextureColor is drawn in place of a texture tag that did not
// resolve.
var MissingTextureColor = mgl32.Vec4{1, 0, 1, 1}

// SetShaderTexture samples the texture tagged tag on the next draw. An
// unknown tag turns texturing off and draws MissingTextureColor.
func (m *Manager) SetShaderTexture(tag string) {
	if m.uniforms == nil {
		return
	}
	unit := m.TextureUnit(tag)
	if unit == NotFound {
		m.warnOnce("texture", tag)
		m.uniforms.SetBool(shader.UseTexture, false)
		m.uniforms.SetVec4(shader.ObjectColor, MissingTextureColor)
		return
	}
	m.uniforms.SetBool(shader.UseTexture, true)
	m.uniforms.SetSampler2D(shader.ObjectTexture, int32(unit))
}

func (m *Manager) SetTextureUVScale(u, v float32) {
	if m.uniforms == nil {
		return
	}
	m.uniforms.SetVec2(shader.UVScale, mgl32.Vec2{u, v})
}

// SetShaderMaterial uploads the material tagged tag, or DefaultMaterial if
// no such material was defined.
func (m *Manager) SetShaderMaterial(tag string) {
	if m.uniforms == nil {
		return
	}
	mat, ok := m.FindMaterial(tag)
	if !ok {
		m.warnOnce("material", tag)
		mat = DefaultMaterial()
	}
	m.setMaterial(mat)
}

func (m *Manager) setMaterial(mat Material) {
	if m.uniforms == nil {
		return
	}
	m.uniforms.SetVec3(uniformAmbientColor, mat.AmbientColor)
	m.uniforms.SetFloat(uniformAmbientStrength, mat.AmbientStrength)
	m.uniforms.SetVec3(uniformDiffuseColor, mat.DiffuseColor)
	m.uniforms.SetVec3(uniformSpecularColor, mat.SpecularColor)
	m.uniforms.SetFloat(uniformShininess, mat.Shininess)
}

// warnOnce logs a lookup miss the first time a tag is seen so a bad tag
// does not flood the log every frame.
func (m *Manager) warnOnce(kind, tag string) {
	key := kind + "\x00" + tag
	if m.warned[key] {
		return
	}
	m.warned[key] = true
	slog.Warn("unknown "+kind+" tag", "tag", tag)
}
