// Package headless stands in for the GL backend and the window. It records
// every uniform upload, texture operation and draw in call order.
package headless

import (
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"topiary-garden/mesh"
	"topiary-garden/texture"
)

// Call is one recorded operation.
type Call struct {
	Op    string `yaml:"op"`
	Name  string `yaml:"name,omitempty"`
	Value any    `yaml:"value"`
}

// Recorder implements shader.Uniforms, scene.Meshes and scene.TextureDevice.
type Recorder struct {
	Calls []Call

	next uint32
	live map[uint32]bool
}

func NewRecorder() *Recorder {
	return &Recorder{live: make(map[uint32]bool)}
}

func (r *Recorder) record(op, name string, v any) {
	r.Calls = append(r.Calls, Call{Op: op, Name: name, Value: v})
}

func (r *Recorder) SetInt(name string, v int32)          { r.record("int", name, v) }
func (r *Recorder) SetBool(name string, v bool)          { r.record("bool", name, v) }
func (r *Recorder) SetFloat(name string, v float32)      { r.record("float", name, v) }
func (r *Recorder) SetVec2(name string, v mgl32.Vec2)    { r.record("vec2", name, v) }
func (r *Recorder) SetVec3(name string, v mgl32.Vec3)    { r.record("vec3", name, v) }
func (r *Recorder) SetVec4(name string, v mgl32.Vec4)    { r.record("vec4", name, v) }
func (r *Recorder) SetMat4(name string, m mgl32.Mat4)    { r.record("mat4", name, m) }
func (r *Recorder) SetSampler2D(name string, unit int32) { r.record("sampler2d", name, unit) }

func (r *Recorder) Load(kind mesh.Kind) { r.record("load_mesh", kind.String(), len(mesh.Generate(kind).Indices)) }
func (r *Recorder) Draw(kind mesh.Kind) { r.record("draw", kind.String(), nil) }

// Upload hands out sequential handles starting at 1, like glGenTextures.
func (r *Recorder) Upload(img *texture.Image) (uint32, error) {
	if err := img.Check(); err != nil {
		return 0, err
	}
	r.next++
	r.live[r.next] = true
	r.record("upload_texture", fmt.Sprintf("%dx%dx%d", img.Width, img.Height, img.Channels), r.next)
	return r.next, nil
}

func (r *Recorder) Bind(unit int, handle uint32) {
	r.record("bind_texture", fmt.Sprintf("unit%d", unit), handle)
}

func (r *Recorder) Delete(handle uint32) {
	delete(r.live, handle)
	r.record("delete_texture", "", handle)
}

// LiveTextures is the number of uploaded textures not yet deleted.
func (r *Recorder) LiveTextures() int {
	return len(r.live)
}

// Find returns the calls with the given op, in order. An empty name
// matches any name.
func (r *Recorder) Find(op, name string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op && (name == "" || c.Name == name) {
			out = append(out, c)
		}
	}
	return out
}

// Last returns the most recent upload to the named uniform.
func (r *Recorder) Last(name string) (Call, bool) {
	for i := len(r.Calls) - 1; i >= 0; i-- {
		if r.Calls[i].Name == name {
			return r.Calls[i], true
		}
	}
	return Call{}, false
}

// Draws lists the mesh names drawn, in order.
func (r *Recorder) Draws() []string {
	var out []string
	for _, c := range r.Find("draw", "") {
		out = append(out, c.Name)
	}
	return out
}

// Reset forgets recorded calls but keeps texture handles.
func (r *Recorder) Reset() {
	r.Calls = nil
}

// WriteYAML writes the recorded calls as a YAML sequence.
func (r *Recorder) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r.Calls); err != nil {
		return fmt.Errorf("encode calls: %w", err)
	}
	return enc.Close()
}
