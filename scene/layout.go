package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"topiary-garden/mesh"
)

// Object is one draw in the garden: a shared mesh placed by its scale,
// rotation (degrees, applied X then Y then Z) and position, shaded by a
// material and either a texture or a flat colour.
type Object struct {
	Name     string
	Mesh     mesh.Kind
	Scale    mgl32.Vec3
	Rotation mgl32.Vec3
	Position mgl32.Vec3
	UVScale  mgl32.Vec2
	Material string
	// Texture is sampled when set; otherwise Color is drawn.
	Texture string
	Color   mgl32.Vec4
}

// Model returns the object's model matrix.
func (o Object) Model() mgl32.Mat4 {
	return ModelMatrix(o.Scale, o.Rotation.X(), o.Rotation.Y(), o.Rotation.Z(), o.Position)
}

// brickPath is two staggered rows of five pavers leading away from the
// main topiary.
var brickPath = [10]mgl32.Vec2{
	{-1.2, 7.2}, {-1.6, 7.6}, {-2.0, 8.0}, {-2.4, 8.4}, {-2.8, 8.8},
	{-0.8, 7.6}, {-1.2, 8.0}, {-1.6, 8.4}, {-2.0, 8.8}, {-2.4, 9.2},
}

// topiary is a hedge base with a cone crown.
type topiary struct {
	x, z        float32
	crownRadius float32
}

var sideTopiaries = [3]topiary{
	{1.5, 5.0, 0.7},
	{3.0, 3.5, 0.75},
	{4.5, 2.0, 0.65},
}

// GardenLayout returns the draw list in render order.
func GardenLayout() []Object {
	objs := []Object{
		{
			Name:     "ground",
			Mesh:     mesh.Plane,
			Scale:    mgl32.Vec3{20, 1, 15},
			UVScale:  mgl32.Vec2{4, 2},
			Material: "grass",
			Texture:  "grass",
		},
		{
			Name:     "dirt patch",
			Mesh:     mesh.Plane,
			Scale:    mgl32.Vec3{8, 3.5, 8},
			Position: mgl32.Vec3{0, 0.02, 6.5},
			UVScale:  mgl32.Vec2{2, 2},
			Material: "dirt",
			Texture:  "dirt",
		},
	}

	for i, p := range brickPath {
		objs = append(objs, Object{
			Name:     fmt.Sprintf("brick %d", i+1),
			Mesh:     mesh.Box,
			Scale:    mgl32.Vec3{0.5, 0.15, 0.5},
			Rotation: mgl32.Vec3{0, 45, 0},
			Position: mgl32.Vec3{p.X(), 0.08, p.Y()},
			UVScale:  mgl32.Vec2{1, 1},
			Material: "brick",
			Texture:  "brick",
		})
	}

	objs = append(objs,
		Object{
			Name:     "main topiary",
			Mesh:     mesh.Box,
			Scale:    mgl32.Vec3{2, 1, 1.5},
			Rotation: mgl32.Vec3{0, 45, 0},
			Position: mgl32.Vec3{0, 0.75, 6.5},
			UVScale:  mgl32.Vec2{2, 1},
			Material: "hedge",
			Texture:  "hedge",
		},
		Object{
			Name:     "main topiary crown",
			Mesh:     mesh.Pyramid4,
			Scale:    mgl32.Vec3{1.5, 2.5, 1.5},
			Rotation: mgl32.Vec3{0, 45, 0},
			Position: mgl32.Vec3{0, 2.5, 6.5},
			UVScale:  mgl32.Vec2{1.5, 1.5},
			Material: "foliage",
			Texture:  "foliage",
		},
	)

	for i, t := range sideTopiaries {
		objs = append(objs,
			Object{
				Name:     fmt.Sprintf("topiary %d", i+1),
				Mesh:     mesh.Box,
				Scale:    mgl32.Vec3{2, 1, 1.5},
				Rotation: mgl32.Vec3{0, 45, 0},
				Position: mgl32.Vec3{t.x, 0.75, t.z},
				UVScale:  mgl32.Vec2{1.5, 1},
				Material: "hedge",
				Texture:  "hedge",
			},
			Object{
				Name:     fmt.Sprintf("topiary %d crown", i+1),
				Mesh:     mesh.Cone,
				Scale:    mgl32.Vec3{t.crownRadius, 1, t.crownRadius},
				Rotation: mgl32.Vec3{0, 45, 0},
				Position: mgl32.Vec3{t.x, 1.25, t.z},
				UVScale:  mgl32.Vec2{1.2, 1.2},
				Material: "foliage",
				Texture:  "foliage",
			},
		)
	}
	return objs
}
