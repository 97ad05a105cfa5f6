package imaging

import (
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func writeBMP(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logo.bmp")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestLoadBMP(t *testing.T) {
	src := Solid(3, 2, color.White)
	src.Set(0, 0, color.RGBA{R: 255, A: 255})
	src.Set(2, 1, color.RGBA{B: 255, A: 255})

	img, err := LoadBMP(writeBMP(t, src))
	require.NoError(t, err)

	assert.Equal(t, 3, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, img.RGBAAt(2, 1))
	assert.Equal(t, 3*4, img.Stride)
}

func TestLoadBMPMissing(t *testing.T) {
	_, err := LoadBMP(filepath.Join(t.TempDir(), "missing.bmp"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadBMPInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.bmp")
	require.NoError(t, os.WriteFile(path, []byte("not a bitmap"), 0o644))

	_, err := LoadBMP(path)
	assert.Error(t, err)
}

func TestToRGBARebasesSubImage(t *testing.T) {
	src := Solid(4, 4, color.White)
	src.SetRGBA(2, 2, color.RGBA{G: 255, A: 255})
	sub := src.SubImage(image.Rect(2, 2, 4, 4))

	out := ToRGBA(sub)
	assert.Equal(t, image.Rect(0, 0, 2, 2), out.Bounds())
	assert.Equal(t, 8, out.Stride)
	assert.Equal(t, color.RGBA{G: 255, A: 255}, out.RGBAAt(0, 0))
}

func TestSolid(t *testing.T) {
	img := Solid(1, 1, color.White)
	assert.Equal(t, []uint8{255, 255, 255, 255}, img.Pix)
}

func TestLoadBundledLogo(t *testing.T) {
	img, err := LoadBMP(filepath.Join("..", "..", "assets", "SDL_logo.bmp"))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())
	assert.Equal(t, uint8(255), img.RGBAAt(10, 10).A)
}
