package opengl

import (
	"log/slog"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"topiary-garden/mesh"
)

// gpuMesh holds the buffer objects of one uploaded primitive.
type gpuMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// Meshes keeps one GPU copy of each primitive kind.
type Meshes struct {
	loaded map[mesh.Kind]*gpuMesh
}

func NewMeshes() *Meshes {
	return &Meshes{loaded: make(map[mesh.Kind]*gpuMesh)}
}

// Load uploads the geometry for kind. Loading a kind twice is a no-op.
func (m *Meshes) Load(kind mesh.Kind) {
	if _, ok := m.loaded[kind]; ok {
		return
	}
	geo := mesh.Generate(kind)
	if len(geo.Vertices) == 0 {
		slog.Warn("no geometry for mesh", "kind", kind)
		return
	}

	stride := int32(unsafe.Sizeof(mesh.Vertex{}))
	gpu := &gpuMesh{indexCount: int32(len(geo.Indices))}

	gl.GenVertexArrays(1, &gpu.vao)
	gl.GenBuffers(1, &gpu.vbo)
	gl.GenBuffers(1, &gpu.ebo)
	gl.BindVertexArray(gpu.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(geo.Vertices)*int(stride), gl.Ptr(geo.Vertices), gl.STATIC_DRAW)

	var v mesh.Vertex
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.Position))))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.Normal))))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.UV))))

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(geo.Indices)*4, gl.Ptr(geo.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	m.loaded[kind] = gpu
	slog.Debug("uploaded mesh", "kind", kind, "vertices", len(geo.Vertices), "indices", len(geo.Indices))
}

// Draw issues the draw call for kind. Kinds never loaded draw nothing.
func (m *Meshes) Draw(kind mesh.Kind) {
	gpu, ok := m.loaded[kind]
	if !ok {
		return
	}
	gl.BindVertexArray(gpu.vao)
	gl.DrawElements(gl.TRIANGLES, gpu.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (m *Meshes) Destroy() {
	for kind, gpu := range m.loaded {
		gl.DeleteVertexArrays(1, &gpu.vao)
		gl.DeleteBuffers(1, &gpu.vbo)
		gl.DeleteBuffers(1, &gpu.ebo)
		delete(m.loaded, kind)
	}
}
