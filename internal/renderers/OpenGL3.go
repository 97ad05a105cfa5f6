package renderers

import (
	"log/slog"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"

	"github.com/firodj/sdl-gl-quad/internal/geometry"
)

// OpenGL3Options selects the assets used by the OpenGL3 renderer.
type OpenGL3Options struct {
	VertexShader   string
	FragmentShader string
	Image          string
	// UseImage binds the decoded image instead of the white texture.
	UseImage bool
	// Viewport is the initial viewport size in pixels.
	Viewport [2]int32
}

// OpenGL3 draws the quad with a shader program on an OpenGL 3.3 core
// context. The context must be current on the calling thread.
type OpenGL3 struct {
	log *slog.Logger

	program *Program
	white   *Texture
	image   *Texture
	bound   *Texture

	vao uint32
	vbo uint32
	ebo uint32
}

// NewOpenGL3 loads the GL entry points, builds the shader program and the
// textures, and sets up the fixed pipeline state.
func NewOpenGL3(log *slog.Logger, opts OpenGL3Options) (*OpenGL3, error) {
	if err := gl.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize OpenGL")
	}
	log.Info("OpenGL initialized",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	program, err := BuildProgram(log, opts.VertexShader, opts.FragmentShader)
	if err != nil {
		return nil, err
	}

	renderer := &OpenGL3{log: log, program: program}
	program.Use()
	checkError(log, "use program")

	if opts.Image != "" {
		if renderer.image, err = LoadTexture(opts.Image); err != nil {
			log.Warn("Texture not loaded, using white texture", "path", opts.Image, "err", err)
		} else {
			log.Debug("Texture loaded", "path", opts.Image, "width", renderer.image.Width, "height", renderer.image.Height)
		}
	}
	renderer.white = NewWhiteTexture()
	renderer.bound = selectTexture(renderer.white, renderer.image, opts.UseImage)
	checkError(log, "load textures")

	renderer.createDeviceObjects()

	gl.Viewport(0, 0, opts.Viewport[0], opts.Viewport[1])
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	checkError(log, "pipeline state")

	return renderer, nil
}

// selectTexture picks the texture to draw with: the image when requested and
// loaded, the white fallback otherwise.
func selectTexture(white, image *Texture, useImage bool) *Texture {
	if useImage && image != nil {
		return image
	}
	return white
}

func (renderer *OpenGL3) createDeviceObjects() {
	gl.GenVertexArrays(1, &renderer.vao)
	gl.BindVertexArray(renderer.vao)

	gl.GenBuffers(1, &renderer.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, renderer.vbo)
	gl.GenBuffers(1, &renderer.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, renderer.ebo)

	gl.VertexAttribPointerWithOffset(renderer.program.Position, geometry.PositionComponents, gl.FLOAT, false,
		geometry.Stride, geometry.PositionOffset)
	gl.EnableVertexAttribArray(renderer.program.Position)
	gl.VertexAttribPointerWithOffset(renderer.program.TexCoord, geometry.TexCoordComponents, gl.FLOAT, false,
		geometry.Stride, geometry.TexCoordOffset)
	gl.EnableVertexAttribArray(renderer.program.TexCoord)

	gl.BindVertexArray(0)
	checkError(renderer.log, "create vertex array")
}

func (renderer *OpenGL3) destroyDeviceObjects() {
	if renderer.vbo != 0 {
		gl.DeleteBuffers(1, &renderer.vbo)
		renderer.vbo = 0
	}
	if renderer.ebo != 0 {
		gl.DeleteBuffers(1, &renderer.ebo)
		renderer.ebo = 0
	}
	if renderer.vao != 0 {
		gl.DeleteVertexArrays(1, &renderer.vao)
		renderer.vao = 0
	}
}

// Dispose releases all GL objects owned by the renderer.
func (renderer *OpenGL3) Dispose() {
	renderer.destroyDeviceObjects()
	if renderer.image != nil {
		renderer.image.Dispose()
	}
	if renderer.white != nil {
		renderer.white.Dispose()
	}
	renderer.program.Dispose()
}

// PreRender clears the colour and depth buffers.
func (renderer *OpenGL3) PreRender(clearColor [4]float32) {
	gl.ClearColor(clearColor[0], clearColor[1], clearColor[2], clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	checkError(renderer.log, "clear")
}

// Render uploads the quad and draws it with one indexed call.
func (renderer *OpenGL3) Render(displaySize [2]float32, framebufferSize [2]float32, quad geometry.Quad) {
	fbWidth, fbHeight := framebufferSize[0], framebufferSize[1]
	if (fbWidth <= 0) || (fbHeight <= 0) {
		return
	}
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	renderer.program.Use()
	gl.BindVertexArray(renderer.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, renderer.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, quad.VertexBytes(), unsafe.Pointer(&quad.Vertices[0]), gl.STREAM_DRAW)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, quad.IndexBytes(), unsafe.Pointer(&quad.Indices[0]), gl.STREAM_DRAW)
	checkError(renderer.log, "upload quad")

	renderer.bound.Bind(0)
	gl.Uniform1i(renderer.program.Sampler, 0)

	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(quad.Indices)), gl.UNSIGNED_SHORT, 0)
	checkError(renderer.log, "draw quad")

	gl.BindVertexArray(0)
}

// PostRender is a no-op; the platform swaps the buffers.
func (renderer *OpenGL3) PostRender() {}
