package renderers

import (
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectTexture(t *testing.T) {
	white := &Texture{Width: 1, Height: 1}
	logo := &Texture{Width: 64, Height: 64}

	tests := []struct {
		name     string
		image    *Texture
		useImage bool
		want     *Texture
	}{
		{"image requested and loaded", logo, true, logo},
		{"image requested but missing", nil, true, white},
		{"image loaded but not requested", logo, false, white},
		{"nothing loaded", nil, false, white},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.want, selectTexture(white, tt.image, tt.useImage))
		})
	}
}

func TestSDLRendererSourceImage(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.bmp")
	assert.NoError(t, os.WriteFile(bad, []byte("not a bitmap"), 0o644))
	logo := filepath.Join("..", "..", "assets", "SDL_logo.bmp")

	tests := []struct {
		name    string
		options SDLRendererOptions
		want    image.Rectangle
	}{
		{"missing image", SDLRendererOptions{Image: filepath.Join(dir, "missing.bmp"), UseImage: true}, image.Rect(0, 0, 1, 1)},
		{"invalid image", SDLRendererOptions{Image: bad, UseImage: true}, image.Rect(0, 0, 1, 1)},
		{"image not requested", SDLRendererOptions{Image: logo}, image.Rect(0, 0, 1, 1)},
		{"bundled logo", SDLRendererOptions{Image: logo, UseImage: true}, image.Rect(0, 0, 64, 64)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer := &SDLRenderer{log: slog.Default(), options: tt.options}

			img := renderer.sourceImage()
			assert.Equal(t, tt.want, img.Bounds())
			if tt.want.Dx() == 1 {
				assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, img.RGBAAt(0, 0))
			}
		})
	}
}
