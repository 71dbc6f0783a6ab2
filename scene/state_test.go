package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"topiary-garden/shader"
)

func assertVec4(t *testing.T, want, got mgl32.Vec4) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5, "component %d of %v", i, got)
	}
}

// Scale, then rotate 90 degrees about Y, then translate.
func TestModelMatrixOrder(t *testing.T) {
	model := ModelMatrix(mgl32.Vec3{2, 1, 1}, 0, 90, 0, mgl32.Vec3{1, 0, 0})

	assertVec4(t, mgl32.Vec4{1, 0, 0, 1}, model.Mul4x1(mgl32.Vec4{0, 0, 0, 1}))
	assertVec4(t, mgl32.Vec4{1, 0, -2, 1}, model.Mul4x1(mgl32.Vec4{1, 0, 0, 1}))
}

func TestModelMatrixRotationOrder(t *testing.T) {
	// Z is applied first, then Y, then X.
	model := ModelMatrix(mgl32.Vec3{1, 1, 1}, 90, 0, 90, mgl32.Vec3{})
	assertVec4(t, mgl32.Vec4{0, 0, 1, 1}, model.Mul4x1(mgl32.Vec4{1, 0, 0, 1}))

	assert.True(t, ModelMatrix(mgl32.Vec3{1, 1, 1}, 0, 0, 0, mgl32.Vec3{}).ApproxEqual(mgl32.Ident4()))
}

func TestSetTransformationsUploadsModel(t *testing.T) {
	m, rec := newTestManager(Options{})
	m.SetTransformations(mgl32.Vec3{2, 1, 1}, 0, 90, 0, mgl32.Vec3{1, 0, 0})

	call, ok := rec.Last(shader.Model)
	require.True(t, ok)
	assert.Equal(t, "mat4", call.Op)
	assert.Equal(t, ModelMatrix(mgl32.Vec3{2, 1, 1}, 0, 90, 0, mgl32.Vec3{1, 0, 0}), call.Value)
}

func TestSetShaderColor(t *testing.T) {
	m, rec := newTestManager(Options{})
	m.SetShaderColor(0.1, 0.2, 0.3, 1)

	require.Len(t, rec.Calls, 2)
	assert.Equal(t, shader.UseTexture, rec.Calls[0].Name)
	assert.Equal(t, false, rec.Calls[0].Value)
	assert.Equal(t, mgl32.Vec4{0.1, 0.2, 0.3, 1}, rec.Calls[1].Value)
}

func TestSetShaderTexture(t *testing.T) {
	dir := t.TempDir()
	m, rec := newTestManager(Options{})
	require.NoError(t, m.LoadTexture(writeImage(t, dir, "a.png", opaqueImage(1, 1)), "a"))
	require.NoError(t, m.LoadTexture(writeImage(t, dir, "b.png", opaqueImage(1, 1)), "b"))
	rec.Reset()

	m.SetShaderTexture("b")
	require.Len(t, rec.Calls, 2)
	assert.Equal(t, true, rec.Calls[0].Value)
	assert.Equal(t, shader.ObjectTexture, rec.Calls[1].Name)
	assert.Equal(t, int32(1), rec.Calls[1].Value)
}

func TestSetShaderTextureUnknownDisablesTexturing(t *testing.T) {
	m, rec := newTestManager(Options{})

	m.SetShaderTexture("nope")
	m.SetShaderTexture("nope")

	assert.Empty(t, rec.Find("sampler2d", ""))
	uses := rec.Find("bool", shader.UseTexture)
	require.Len(t, uses, 2)
	assert.Equal(t, false, uses[1].Value)

	colors := rec.Find("vec4", shader.ObjectColor)
	require.Len(t, colors, 2)
	assert.Equal(t, MissingTextureColor, colors[1].Value)
}

func TestSetShaderTextureUnknownOverridesColour(t *testing.T) {
	m, rec := newTestManager(Options{})

	m.SetShaderColor(0, 1, 0, 1)
	m.SetShaderTexture("nope")

	call, ok := rec.Last(shader.ObjectColor)
	require.True(t, ok)
	assert.Equal(t, MissingTextureColor, call.Value)
}

func TestSetShaderMaterial(t *testing.T) {
	m, rec := newTestManager(Options{})
	for _, mat := range GardenMaterials() {
		m.DefineMaterial(mat)
	}

	m.SetShaderMaterial("brick")
	require.Len(t, rec.Calls, 5)
	assert.Equal(t, mgl32.Vec3{0.6, 0.4, 0.3}, rec.Calls[0].Value)
	assert.Equal(t, float32(0.05), rec.Calls[1].Value)
	assert.Equal(t, "material.shininess", rec.Calls[4].Name)
	assert.Equal(t, float32(4), rec.Calls[4].Value)
}

func TestSetShaderMaterialUnknownUploadsDefault(t *testing.T) {
	m, rec := newTestManager(Options{})
	m.DefineMaterial(GardenMaterials()[0])

	m.SetShaderMaterial("grass")
	m.SetShaderMaterial("marble")

	def := DefaultMaterial()
	call, ok := rec.Last("material.shininess")
	require.True(t, ok)
	assert.Equal(t, def.Shininess, call.Value)
	call, ok = rec.Last("material.diffuseColor")
	require.True(t, ok)
	assert.Equal(t, def.DiffuseColor, call.Value)
}

func TestSetUVScale(t *testing.T) {
	m, rec := newTestManager(Options{})
	m.SetTextureUVScale(4, 2)

	call, ok := rec.Last(shader.UVScale)
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec2{4, 2}, call.Value)
}

func TestNilUniformsIsNoop(t *testing.T) {
	m, rec := newTestManager(Options{})
	m.uniforms = nil

	m.SetTransformations(mgl32.Vec3{1, 1, 1}, 0, 0, 0, mgl32.Vec3{})
	m.SetShaderColor(1, 1, 1, 1)
	m.SetShaderTexture("grass")
	m.SetTextureUVScale(1, 1)
	m.SetShaderMaterial("grass")
	m.SetupSceneLights(GardenLights())

	assert.Empty(t, rec.Calls)
}
