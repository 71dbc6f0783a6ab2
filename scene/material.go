package scene

import "github.com/go-gl/mathgl/mgl32"

// Material holds the Phong coefficients uploaded to the shader's material
// struct.
type Material struct {
	Tag             string
	AmbientColor    mgl32.Vec3
	AmbientStrength float32
	DiffuseColor    mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Shininess       float32
}

// DefaultMaterial is uploaded when a draw names a material that was never
// defined.
func DefaultMaterial() Material {
	return Material{
		Tag:             "default",
		AmbientColor:    mgl32.Vec3{0.5, 0.5, 0.5},
		AmbientStrength: 0.1,
		DiffuseColor:    mgl32.Vec3{0.5, 0.5, 0.5},
		SpecularColor:   mgl32.Vec3{0.2, 0.2, 0.2},
		Shininess:       8,
	}
}

// GardenMaterials returns one material per garden texture, tuned so the
// foliage reads brighter than the soil.
func GardenMaterials() []Material {
	return []Material{
		{
			Tag:             "grass",
			AmbientColor:    mgl32.Vec3{0.4, 0.6, 0.3},
			AmbientStrength: 0.03,
			DiffuseColor:    mgl32.Vec3{0.4, 0.6, 0.3},
			SpecularColor:   mgl32.Vec3{0.35, 0.45, 0.35},
			Shininess:       5,
		},
		{
			Tag:             "dirt",
			AmbientColor:    mgl32.Vec3{0.5, 0.4, 0.3},
			AmbientStrength: 0.01,
			DiffuseColor:    mgl32.Vec3{0.5, 0.4, 0.3},
			SpecularColor:   mgl32.Vec3{0.18, 0.18, 0.18},
			Shininess:       1.2,
		},
		{
			Tag:             "brick",
			AmbientColor:    mgl32.Vec3{0.6, 0.4, 0.3},
			AmbientStrength: 0.05,
			DiffuseColor:    mgl32.Vec3{0.6, 0.4, 0.3},
			SpecularColor:   mgl32.Vec3{0.45, 0.35, 0.35},
			Shininess:       4,
		},
		{
			Tag:             "hedge",
			AmbientColor:    mgl32.Vec3{0.3, 0.5, 0.2},
			AmbientStrength: 0.06,
			DiffuseColor:    mgl32.Vec3{0.3, 0.5, 0.2},
			SpecularColor:   mgl32.Vec3{0.22, 0.32, 0.22},
			Shininess:       3,
		},
		{
			Tag:             "foliage",
			AmbientColor:    mgl32.Vec3{0.35, 0.55, 0.25},
			AmbientStrength: 0.06,
			DiffuseColor:    mgl32.Vec3{0.35, 0.55, 0.25},
			SpecularColor:   mgl32.Vec3{0.28, 0.35, 0.28},
			Shininess:       7,
		},
	}
}
