package renderers

import (
	"image"
	"image/color"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/firodj/sdl-gl-quad/internal/imaging"
)

// Texture is a GPU resident 2D RGBA texture.
type Texture struct {
	handle uint32
	Width  int32
	Height int32
}

// LoadTexture decodes the bitmap at path and uploads it.
func LoadTexture(path string) (*Texture, error) {
	img, err := imaging.LoadBMP(path)
	if err != nil {
		return nil, err
	}
	return NewTexture(img), nil
}

// NewWhiteTexture creates the 1x1 opaque white texture used when no image
// is bound.
func NewWhiteTexture() *Texture {
	return NewTexture(imaging.Solid(1, 1, color.White))
}

// NewTexture uploads img, which must be packed as imaging.ToRGBA returns it.
func NewTexture(img *image.RGBA) *Texture {
	img = imaging.ToRGBA(img)
	tex := &Texture{
		Width:  int32(img.Rect.Dx()),
		Height: int32(img.Rect.Dy()),
	}

	var lastTexture int32
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &lastTexture)

	gl.GenTextures(1, &tex.handle)
	gl.BindTexture(gl.TEXTURE_2D, tex.handle)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, tex.Width, tex.Height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	gl.BindTexture(gl.TEXTURE_2D, uint32(lastTexture))
	return tex
}

// Bind activates the given texture unit and binds the texture to it.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.handle)
}

// Dispose releases the GPU texture. Calling it twice is harmless.
func (t *Texture) Dispose() {
	if t.handle != 0 {
		gl.DeleteTextures(1, &t.handle)
		t.handle = 0
	}
}
