package opengl

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"topiary-garden/texture"
)

// Textures uploads and binds 2D textures.
type Textures struct{}

func NewTextures() *Textures {
	return &Textures{}
}

// Upload creates a repeating, linearly filtered, mipmapped texture from img.
func (*Textures) Upload(img *texture.Image) (uint32, error) {
	if err := img.Check(); err != nil {
		return 0, err
	}
	if len(img.Pixels) != img.Width*img.Height*img.Channels {
		return 0, fmt.Errorf("texture %dx%d has %d bytes", img.Width, img.Height, len(img.Pixels))
	}

	internalFormat, format := int32(gl.RGB8), uint32(gl.RGB)
	if img.Channels == 4 {
		internalFormat, format = gl.RGBA8, gl.RGBA
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// RGB rows are not 4-byte aligned for odd widths.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		internalFormat,
		int32(img.Width),
		int32(img.Height),
		0,
		format,
		gl.UNSIGNED_BYTE,
		unsafe.Pointer(&img.Pixels[0]),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return id, nil
}

func (*Textures) Bind(unit int, handle uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

func (*Textures) Delete(handle uint32) {
	gl.DeleteTextures(1, &handle)
}
