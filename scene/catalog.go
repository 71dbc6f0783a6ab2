package scene

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"topiary-garden/texture"
)

// NotFound is returned by index lookups for an unknown tag.
const NotFound = -1

// MaxTextureUnits is the number of texture units the shader can sample.
const MaxTextureUnits = 16

var ErrCatalogFull = errors.New("texture catalog full")

// TextureDevice owns GPU texture objects.
type TextureDevice interface {
	Upload(img *texture.Image) (uint32, error)
	Bind(unit int, handle uint32)
	Delete(handle uint32)
}

// TextureEntry is a loaded texture. Its texture unit is its position in
// the catalog.
type TextureEntry struct {
	Tag    string
	Path   string
	Handle uint32
}

// TextureFile names an image on disk and the tag it is loaded under.
type TextureFile struct {
	Path string
	Tag  string
}

// GardenTextures lists the garden's images, in unit order, under dir.
func GardenTextures(dir string) []TextureFile {
	return []TextureFile{
		{filepath.Join(dir, "plants_grass_seamless.jpg"), "grass"},
		{filepath.Join(dir, "dirt.jpg"), "dirt"},
		{filepath.Join(dir, "brick.jpg"), "brick"},
		{filepath.Join(dir, "plants_hedge_seamless.jpg"), "hedge"},
		{filepath.Join(dir, "foliage.jpg"), "foliage"},
	}
}

// LoadTexture decodes the image at path, uploads it and appends it to the
// catalog under tag. On error the catalog is left unchanged.
func (m *Manager) LoadTexture(path, tag string) error {
	if len(m.textures) >= MaxTextureUnits {
		err := fmt.Errorf("%w: %d units in use", ErrCatalogFull, len(m.textures))
		slog.Error("could not load texture", "path", path, "tag", tag, "error", err)
		return err
	}

	img, err := texture.Load(path)
	if err == nil {
		err = img.Check()
	}
	if err != nil {
		slog.Error("could not load texture", "path", path, "tag", tag, "error", err)
		return err
	}

	handle, err := m.device.Upload(img)
	if err != nil {
		err = fmt.Errorf("upload texture %q: %w", path, err)
		slog.Error("could not load texture", "path", path, "tag", tag, "error", err)
		return err
	}

	m.textures = append(m.textures, TextureEntry{Tag: tag, Path: path, Handle: handle})
	slog.Info("loaded texture",
		"path", path,
		"tag", tag,
		"width", img.Width,
		"height", img.Height,
		"channels", img.Channels,
	)
	return nil
}

// BindTextures binds every catalog entry to the unit matching its index.
// Call once after all textures are loaded; units resolve by position.
func (m *Manager) BindTextures() {
	for i, e := range m.textures {
		m.device.Bind(i, e.Handle)
	}
}

// DestroyTextures deletes every GPU texture and empties the catalog.
func (m *Manager) DestroyTextures() {
	for _, e := range m.textures {
		m.device.Delete(e.Handle)
	}
	m.textures = nil
}

// Textures returns a copy of the catalog in unit order.
func (m *Manager) Textures() []TextureEntry {
	return append([]TextureEntry(nil), m.textures...)
}

// TextureUnit returns the unit of the first entry tagged tag, or NotFound.
func (m *Manager) TextureUnit(tag string) int {
	for i, e := range m.textures {
		if e.Tag == tag {
			return i
		}
	}
	return NotFound
}

// TextureHandle returns the GPU handle of the first entry tagged tag.
func (m *Manager) TextureHandle(tag string) (uint32, bool) {
	if i := m.TextureUnit(tag); i != NotFound {
		return m.textures[i].Handle, true
	}
	return 0, false
}

func (m *Manager) DefineMaterial(mat Material) {
	m.materials = append(m.materials, mat)
}

// MaterialIndex returns the position of the first material tagged tag, or
// NotFound.
func (m *Manager) MaterialIndex(tag string) int {
	for i, mat := range m.materials {
		if mat.Tag == tag {
			return i
		}
	}
	return NotFound
}

func (m *Manager) FindMaterial(tag string) (Material, bool) {
	if i := m.MaterialIndex(tag); i != NotFound {
		return m.materials[i], true
	}
	return Material{}, false
}
