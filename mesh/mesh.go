// Package mesh generates the four primitive shapes the garden is built from.
// Geometry is produced on the CPU; uploading and drawing belong to the GL
// backend.
package mesh

import "github.com/go-gl/mathgl/mgl32"

// Kind selects one of the shared primitive meshes.
type Kind int

const (
	Plane Kind = iota
	Box
	Pyramid4
	Cone
)

// Kinds lists every primitive in load order.
var Kinds = []Kind{Plane, Box, Pyramid4, Cone}

func (k Kind) String() string {
	switch k {
	case Plane:
		return "plane"
	case Box:
		return "box"
	case Pyramid4:
		return "pyramid4"
	case Cone:
		return "cone"
	}
	return "unknown"
}

// MarshalText lets a Kind appear by name in YAML and log output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Vertex is tightly packed float32 data: position, normal, uv. The GL
// backend relies on this layout for its attribute pointers.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

type Geometry struct {
	Kind     Kind
	Vertices []Vertex
	Indices  []uint32
}

// Bounds returns the axis-aligned extent of the vertex positions.
func (g Geometry) Bounds() (min, max mgl32.Vec3) {
	if len(g.Vertices) == 0 {
		return
	}
	min = g.Vertices[0].Position
	max = min
	for _, v := range g.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if v.Position[i] < min[i] {
				min[i] = v.Position[i]
			}
			if v.Position[i] > max[i] {
				max[i] = v.Position[i]
			}
		}
	}
	return min, max
}

// Generate builds the geometry for kind. Unknown kinds yield an empty
// Geometry.
func Generate(kind Kind) Geometry {
	switch kind {
	case Plane:
		return newPlane(1)
	case Box:
		return newBox()
	case Pyramid4:
		return newPyramid4()
	case Cone:
		return newCone(ConeSegments)
	}
	return Geometry{Kind: kind}
}
