package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"topiary-garden/shader"
)

// MaxPointLights matches the pointLights array length in the fragment
// shader.
const MaxPointLights = 3

type DirectionalLight struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Active    bool
}

type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
	Active   bool
}

// Lights is the full set of light slots. Slots left zero are uploaded
// inactive.
type Lights struct {
	Directional DirectionalLight
	Points      [MaxPointLights]PointLight
}

// GardenLights is a bright, slightly warm sun with a cool fill light over
// the topiaries and a warm one over the dirt patch.
func GardenLights() Lights {
	return Lights{
		Directional: DirectionalLight{
			Direction: mgl32.Vec3{-0.5, -1.0, -0.3},
			Ambient:   mgl32.Vec3{0.2, 0.2, 0.2},
			Diffuse:   mgl32.Vec3{1.5, 1.5, 1.4},
			Specular:  mgl32.Vec3{1.0, 1.0, 1.0},
			Active:    true,
		},
		Points: [MaxPointLights]PointLight{
			{
				Position: mgl32.Vec3{3.5, 5.0, 1.5},
				Ambient:  mgl32.Vec3{0.1, 0.1, 0.1},
				Diffuse:  mgl32.Vec3{0.4, 0.4, 0.35},
				Specular: mgl32.Vec3{0.3, 0.3, 0.3},
				Active:   true,
			},
			{
				Position: mgl32.Vec3{-3.5, 5.0, 6.5},
				Ambient:  mgl32.Vec3{0.15, 0.1, 0.05},
				Diffuse:  mgl32.Vec3{0.8, 0.6, 0.3},
				Specular: mgl32.Vec3{0.4, 0.3, 0.2},
				Active:   true,
			},
		},
	}
}

// SetupSceneLights enables lighting and uploads every light slot.
func (m *Manager) SetupSceneLights(l Lights) {
	if m.uniforms == nil {
		return
	}
	u := m.uniforms
	u.SetBool(shader.UseLighting, true)

	d := l.Directional
	u.SetVec3("directionalLight.direction", d.Direction)
	u.SetVec3("directionalLight.ambient", d.Ambient)
	u.SetVec3("directionalLight.diffuse", d.Diffuse)
	u.SetVec3("directionalLight.specular", d.Specular)
	u.SetBool("directionalLight.bActive", d.Active)

	for i, p := range l.Points {
		prefix := fmt.Sprintf("pointLights[%d].", i)
		u.SetVec3(prefix+"position", p.Position)
		u.SetVec3(prefix+"ambient", p.Ambient)
		u.SetVec3(prefix+"diffuse", p.Diffuse)
		u.SetVec3(prefix+"specular", p.Specular)
		u.SetBool(prefix+"bActive", p.Active)
	}
}
