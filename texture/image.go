// Package texture decodes image files into tightly packed pixel buffers
// ready for GPU upload.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrUnsupportedChannels is returned when an image is neither RGB nor RGBA.
	ErrUnsupportedChannels = errors.New("unsupported channel count")
	// ErrEmptyImage is returned for images without pixels.
	ErrEmptyImage = errors.New("empty image")
)

// Image holds 8-bit pixel data, rows bottom-to-top to match GL texture
// coordinates.
type Image struct {
	Width    int
	Height   int
	Channels int
	Pixels   []byte
}

// Supported reports whether Channels can be uploaded (3 or 4).
func (img *Image) Supported() bool {
	return img.Channels == 3 || img.Channels == 4
}

// Check reports whether img can be uploaded: it must have pixels and be
// RGB or RGBA.
func (img *Image) Check() error {
	if img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyImage, img.Width, img.Height)
	}
	if !img.Supported() {
		return fmt.Errorf("%w: %d", ErrUnsupportedChannels, img.Channels)
	}
	return nil
}

// Load reads and decodes the file at path. The result is flipped
// vertically.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}
	return img, nil
}

// Decode decodes any registered image format from r.
func Decode(r io.Reader) (*Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(src), nil
}

// FromImage packs src into an Image, choosing the channel count the way
// the source format stores it: grey images report 1, opaque colour 3,
// everything else 4.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	out := &Image{
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: channels(src),
	}
	out.Pixels = make([]byte, 0, out.Width*out.Height*out.Channels)

	for y := b.Max.Y - 1; y >= b.Min.Y; y-- {
		for x := b.Min.X; x < b.Max.X; x++ {
			switch out.Channels {
			case 1:
				g := color.GrayModel.Convert(src.At(x, y)).(color.Gray)
				out.Pixels = append(out.Pixels, g.Y)
			case 3:
				c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
				out.Pixels = append(out.Pixels, c.R, c.G, c.B)
			default:
				c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
				out.Pixels = append(out.Pixels, c.R, c.G, c.B, c.A)
			}
		}
	}
	return out
}

func channels(src image.Image) int {
	switch src.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	}
	if o, ok := src.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3
	}
	return 4
}
