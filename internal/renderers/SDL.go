package renderers

import (
	"image"
	"image/color"
	"log/slog"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/firodj/sdl-gl-quad/internal/geometry"
	"github.com/firodj/sdl-gl-quad/internal/imaging"
)

// SDLRendererOptions selects the texture drawn by the SDL renderer.
type SDLRendererOptions struct {
	Image    string
	UseImage bool
}

// SDLRenderer draws the quad through the SDL 2D renderer instead of a
// shader program.
type SDLRenderer struct {
	log         *slog.Logger
	quadTexture *sdl.Texture
	sdlRenderer *sdl.Renderer
	options     SDLRendererOptions
}

func NewSDLRenderer(log *slog.Logger, sdlRenderer *sdl.Renderer, options SDLRendererOptions) (*SDLRenderer, error) {
	renderer := &SDLRenderer{
		log:         log,
		sdlRenderer: sdlRenderer,
		options:     options,
	}
	if err := renderer.createDeviceObjects(); err != nil {
		return nil, err
	}
	return renderer, nil
}

func (renderer *SDLRenderer) Dispose() {
	renderer.destroyDeviceObjects()
}

func (renderer *SDLRenderer) destroyQuadTexture() {
	if renderer.quadTexture != nil {
		_ = renderer.quadTexture.Destroy()
		renderer.quadTexture = nil
	}
}

func (renderer *SDLRenderer) sourceImage() *image.RGBA {
	if renderer.options.UseImage && renderer.options.Image != "" {
		img, err := imaging.LoadBMP(renderer.options.Image)
		if err == nil {
			return img
		}
		renderer.log.Warn("Texture not loaded, using white texture", "path", renderer.options.Image, "err", err)
	}
	return imaging.Solid(1, 1, color.White)
}

func (renderer *SDLRenderer) createQuadTexture() error {
	var err error
	img := renderer.sourceImage()
	width, height := img.Rect.Dx(), img.Rect.Dy()

	// ABGR8888 is R,G,B,A in memory on little-endian hosts, matching image.RGBA.
	if renderer.quadTexture, err = renderer.sdlRenderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STATIC, int32(width), int32(height)); err != nil {
		return err
	}

	if err = renderer.quadTexture.Update(nil, unsafe.Pointer(&img.Pix[0]), img.Stride); err != nil {
		return err
	}
	return renderer.quadTexture.SetBlendMode(sdl.BLENDMODE_BLEND)
}

func (renderer *SDLRenderer) destroyDeviceObjects() {
	renderer.destroyQuadTexture()
}

func (renderer *SDLRenderer) createDeviceObjects() error {
	return renderer.createQuadTexture()
}

// PreRender causes the display buffer to be prepared for new output.
func (renderer *SDLRenderer) PreRender(clearColor [4]float32) {
	_ = renderer.sdlRenderer.SetDrawColor(
		uint8(clearColor[0]*255),
		uint8(clearColor[1]*255),
		uint8(clearColor[2]*255),
		uint8(clearColor[3]*255),
	)
	_ = renderer.sdlRenderer.Clear()
}

// Render draws the quad in window coordinates.
func (renderer *SDLRenderer) Render(displaySize [2]float32, framebufferSize [2]float32, quad geometry.Quad) {
	// Avoid rendering when minimized
	fbWidth, fbHeight := framebufferSize[0], framebufferSize[1]
	if (fbWidth <= 0) || (fbHeight <= 0) {
		return
	}

	vertices, indices := sdlGeometry(quad, fbWidth, fbHeight)
	if err := renderer.sdlRenderer.RenderGeometry(renderer.quadTexture, vertices, indices); err != nil {
		renderer.log.Warn("RenderGeometry failed", "err", err)
	}
}

func (renderer *SDLRenderer) PostRender() {
	renderer.sdlRenderer.Present()
}

func sdlGeometry(quad geometry.Quad, width, height float32) ([]sdl.Vertex, []int32) {
	screen := quad.ToScreen(width, height)
	vertices := make([]sdl.Vertex, len(quad.Vertices))
	for i, v := range quad.Vertices {
		vertices[i] = sdl.Vertex{
			Position: sdl.FPoint{X: screen[i].X(), Y: screen[i].Y()},
			Color:    sdl.Color{R: 255, G: 255, B: 255, A: 255},
			TexCoord: sdl.FPoint{X: v.TexCoord.X(), Y: v.TexCoord.Y()},
		}
	}
	indices := make([]int32, len(quad.Indices))
	for i, idx := range quad.Indices {
		indices[i] = int32(idx)
	}
	return vertices, indices
}
