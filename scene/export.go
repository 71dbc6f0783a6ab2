package scene

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"topiary-garden/mesh"
)

// ExportGLTF writes the layout as a binary glTF file. Each object becomes a
// node carrying its model matrix. UV tiling is baked into the texture
// coordinates, so objects sharing a mesh kind but not a tiling get separate
// glTF meshes. Textures are referenced by path relative to the output file.
func ExportGLTF(path string, layout []Object, materials []Material, textures []TextureFile) error {
	e := &exporter{
		doc:       gltf.NewDocument(),
		outDir:    filepath.Dir(path),
		textures:  make(map[string]int),
		materials: make(map[string]int),
		meshes:    make(map[string]int),
	}
	e.doc.Asset.Generator = "topiary-garden"

	for _, f := range textures {
		e.addTexture(f)
	}

	for _, o := range layout {
		mat := e.material(o, materials)
		meshIdx := e.mesh(o, mat)

		e.doc.Nodes = append(e.doc.Nodes, &gltf.Node{
			Name:   o.Name,
			Mesh:   gltf.Index(meshIdx),
			Matrix: toFloat64(o.Model()),
		})
		e.doc.Scenes[0].Nodes = append(e.doc.Scenes[0].Nodes, len(e.doc.Nodes)-1)
	}

	if err := gltf.SaveBinary(e.doc, path); err != nil {
		return fmt.Errorf("save gltf %q: %w", path, err)
	}
	slog.Info("exported scene",
		"path", path,
		"nodes", len(e.doc.Nodes),
		"meshes", len(e.doc.Meshes),
		"materials", len(e.doc.Materials),
	)
	return nil
}

type exporter struct {
	doc    *gltf.Document
	outDir string

	textures  map[string]int
	materials map[string]int
	meshes    map[string]int
}

// addTexture registers an image by URI. Later files with a tag already
// seen are ignored, matching catalog first-match lookups.
func (e *exporter) addTexture(f TextureFile) {
	if _, ok := e.textures[f.Tag]; ok {
		return
	}
	uri := f.Path
	if rel, err := filepath.Rel(e.outDir, f.Path); err == nil {
		uri = rel
	}
	e.doc.Images = append(e.doc.Images, &gltf.Image{Name: f.Tag, URI: filepath.ToSlash(uri)})
	e.doc.Textures = append(e.doc.Textures, &gltf.Texture{Source: gltf.Index(len(e.doc.Images) - 1)})
	e.textures[f.Tag] = len(e.doc.Textures) - 1
}

// material returns the glTF material index for the object's material and
// texture pair, creating it on first use.
func (e *exporter) material(o Object, materials []Material) int {
	key := o.Material + "|" + o.Texture
	if idx, ok := e.materials[key]; ok {
		return idx
	}

	pbr := &gltf.PBRMetallicRoughness{MetallicFactor: ptr(0.0)}
	name := o.Material
	if m, ok := findMaterial(materials, o.Material); ok {
		d := m.DiffuseColor
		pbr.BaseColorFactor = &[4]float64{float64(d.X()), float64(d.Y()), float64(d.Z()), 1}
		pbr.RoughnessFactor = ptr(float64(roughness(m.Shininess)))
	} else if o.Texture == "" {
		c := o.Color
		pbr.BaseColorFactor = &[4]float64{float64(c.X()), float64(c.Y()), float64(c.Z()), float64(c.W())}
		name = "flat"
	}
	if tex, ok := e.textures[o.Texture]; ok {
		pbr.BaseColorTexture = &gltf.TextureInfo{Index: tex}
	}

	e.doc.Materials = append(e.doc.Materials, &gltf.Material{
		Name:                 name,
		PBRMetallicRoughness: pbr,
	})
	idx := len(e.doc.Materials) - 1
	e.materials[key] = idx
	return idx
}

func (e *exporter) mesh(o Object, material int) int {
	key := fmt.Sprintf("%s|%v|%d", o.Mesh, o.UVScale, material)
	if idx, ok := e.meshes[key]; ok {
		return idx
	}

	g := mesh.Generate(o.Mesh)
	positions := make([][3]float32, len(g.Vertices))
	normals := make([][3]float32, len(g.Vertices))
	uvs := make([][2]float32, len(g.Vertices))
	for i, v := range g.Vertices {
		positions[i] = v.Position
		normals[i] = v.Normal
		// glTF puts v = 0 at the top of the image.
		uvs[i] = [2]float32{v.UV.X() * o.UVScale.X(), 1 - v.UV.Y()*o.UVScale.Y()}
	}

	prim := &gltf.Primitive{
		Attributes: map[string]int{
			"POSITION":   modeler.WritePosition(e.doc, positions),
			"NORMAL":     modeler.WriteNormal(e.doc, normals),
			"TEXCOORD_0": modeler.WriteTextureCoord(e.doc, uvs),
		},
		Indices:  gltf.Index(modeler.WriteIndices(e.doc, g.Indices)),
		Material: gltf.Index(material),
	}
	e.doc.Meshes = append(e.doc.Meshes, &gltf.Mesh{
		Name:       fmt.Sprintf("%s %v", o.Mesh, o.UVScale),
		Primitives: []*gltf.Primitive{prim},
	})
	idx := len(e.doc.Meshes) - 1
	e.meshes[key] = idx
	return idx
}

func findMaterial(materials []Material, tag string) (Material, bool) {
	for _, m := range materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

// roughness inverts the loader's shininess = (1-r)^2 * 128 + 1 mapping.
func roughness(shininess float32) float32 {
	if shininess <= 1 {
		return 1
	}
	return math32.Max(0, 1-math32.Sqrt((shininess-1)/128))
}

func toFloat64(m mgl32.Mat4) [16]float64 {
	var out [16]float64
	for i, v := range m {
		out[i] = float64(v)
	}
	return out
}

func ptr[T any](v T) *T { return &v }
