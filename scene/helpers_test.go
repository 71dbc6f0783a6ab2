package scene

import (
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"topiary-garden/internal/headless"
)

func newTestManager(opts Options) (*Manager, *headless.Recorder) {
	rec := headless.NewRecorder()
	return NewManager(rec, rec, rec, opts), rec
}

func opaqueImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 200
	}
	return img
}

func translucentImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.SetNRGBA(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 4})
	return img
}

// writeImage encodes img into dir/name, as JPEG, GIF or PNG by extension.
func writeImage(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	switch {
	case strings.HasSuffix(name, ".jpg"):
		require.NoError(t, jpeg.Encode(f, img, nil))
	case strings.HasSuffix(name, ".gif"):
		require.NoError(t, gif.Encode(f, img, nil))
	default:
		require.NoError(t, png.Encode(f, img))
	}
	return path
}
