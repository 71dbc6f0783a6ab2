// Package scene assembles the garden: it owns the texture and material
// catalogs, pushes per-object shader state and issues the draw list.
package scene

import (
	"log/slog"

	"topiary-garden/mesh"
	"topiary-garden/shader"
)

// Meshes uploads and draws the shared primitive meshes.
type Meshes interface {
	Load(kind mesh.Kind)
	Draw(kind mesh.Kind)
}

type Options struct {
	// TextureDir holds the garden images.
	TextureDir string
	// Layout replaces GardenLayout when non-nil.
	Layout []Object
}

type Manager struct {
	uniforms shader.Uniforms
	meshes   Meshes
	device   TextureDevice

	textureDir string
	layout     []Object
	textures   []TextureEntry
	materials  []Material
	warned     map[string]bool
}

// NewManager returns a scene manager drawing through meshes and device.
// A nil uniforms turns every shader push into a no-op.
func NewManager(uniforms shader.Uniforms, meshes Meshes, device TextureDevice, opts Options) *Manager {
	layout := opts.Layout
	if layout == nil {
		layout = GardenLayout()
	}
	return &Manager{
		uniforms:   uniforms,
		meshes:     meshes,
		device:     device,
		textureDir: opts.TextureDir,
		layout:     layout,
		warned:     make(map[string]bool),
	}
}

// PrepareScene loads meshes, textures, materials and lights. Texture load
// failures are logged and leave that texture out of the catalog.
func (m *Manager) PrepareScene() {
	for _, kind := range mesh.Kinds {
		m.meshes.Load(kind)
	}

	m.LoadSceneTextures()

	for _, mat := range GardenMaterials() {
		m.DefineMaterial(mat)
	}
	m.SetupSceneLights(GardenLights())

	slog.Info("scene prepared",
		"textures", len(m.textures),
		"materials", len(m.materials),
		"objects", len(m.layout),
	)
}

// LoadSceneTextures loads the garden textures and binds them to units.
func (m *Manager) LoadSceneTextures() {
	for _, f := range GardenTextures(m.textureDir) {
		_ = m.LoadTexture(f.Path, f.Tag)
	}
	m.BindTextures()
}

// RenderScene draws every object of the layout. For each object it sets
// the transform, UV scale, material and texture or colour, then draws.
func (m *Manager) RenderScene() {
	for _, obj := range m.layout {
		m.drawObject(obj)
	}
}

func (m *Manager) drawObject(o Object) {
	m.SetTransformations(o.Scale, o.Rotation.X(), o.Rotation.Y(), o.Rotation.Z(), o.Position)
	m.SetTextureUVScale(o.UVScale.X(), o.UVScale.Y())
	if o.Material != "" {
		m.SetShaderMaterial(o.Material)
	} else {
		m.setMaterial(DefaultMaterial())
	}
	if o.Texture != "" {
		m.SetShaderTexture(o.Texture)
	} else {
		m.SetShaderColor(o.Color.X(), o.Color.Y(), o.Color.Z(), o.Color.W())
	}
	m.meshes.Draw(o.Mesh)
}

// Layout returns a copy of the draw list.
func (m *Manager) Layout() []Object {
	return append([]Object(nil), m.layout...)
}

// Destroy releases GPU textures.
func (m *Manager) Destroy() {
	m.DestroyTextures()
}
