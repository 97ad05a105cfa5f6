package platforms

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

// SDLClientAPI identifies the render client API the SDL window is set up for.
type SDLClientAPI string

// This is a list of SDLClientAPI constants.
const (
	SDLClientAPIOpenGL3     SDLClientAPI = "OpenGL3"
	SDLClientAPISDLRenderer SDLClientAPI = "SDLRenderer"
)

// SDL implements a platform based on github.com/veandco/go-sdl2 (v2).
type SDL struct {
	log       *slog.Logger
	clientAPI SDLClientAPI

	window    *sdl.Window
	glContext sdl.GLContext
	renderer  *sdl.Renderer

	shouldStop bool
}

// NewSDL attempts to initialize an SDL context. On failure everything
// acquired so far is released before the error is returned.
func NewSDL(log *slog.Logger, clientAPI SDLClientAPI) (*SDL, error) {
	platform := &SDL{
		log:       logger(log),
		clientAPI: clientAPI,
	}

	switch clientAPI {
	case SDLClientAPIOpenGL3, SDLClientAPISDLRenderer:
	default:
		return nil, errors.Errorf("unsupported SDL client API: %q", clientAPI)
	}

	err := sdl.Init(sdl.INIT_EVERYTHING)
	if err != nil {
		sdl.Quit()
		return nil, errors.Wrap(err, "failed to initialize SDL2")
	}

	var windowFlags uint32 = sdl.WINDOW_SHOWN
	if clientAPI == SDLClientAPIOpenGL3 {
		windowFlags |= sdl.WINDOW_OPENGL
		platform.setGLAttributes()
	}

	window, err := sdl.CreateWindow(WindowTitle,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		WindowWidth, WindowHeight, windowFlags)
	if err != nil {
		sdl.Quit()
		return nil, errors.Wrap(err, "failed to create window")
	}
	platform.window = window
	platform.checkSDLError("create window")

	switch clientAPI {
	case SDLClientAPIOpenGL3:
		glContext, err := window.GLCreateContext()
		if err != nil {
			platform.Dispose()
			return nil, errors.Wrap(err, "failed to create OpenGL context")
		}
		platform.glContext = glContext
		if err = window.GLMakeCurrent(glContext); err != nil {
			platform.Dispose()
			return nil, errors.Wrap(err, "failed to set current OpenGL context")
		}
	case SDLClientAPISDLRenderer:
		renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
		if err != nil {
			platform.Dispose()
			return nil, errors.Wrap(err, "failed to create SDL renderer")
		}
		platform.renderer = renderer
	}
	platform.checkSDLError("create context")
	platform.log.Debug("Window created",
		"platform", "sdl", "clientAPI", string(clientAPI), "width", WindowWidth, "height", WindowHeight)

	return platform, nil
}

func (platform *SDL) setGLAttributes() {
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 3)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	_ = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	_ = sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	platform.checkSDLError("set GL attributes")
}

// checkSDLError logs and clears a pending SDL error. Control flow is not
// affected.
func (platform *SDL) checkSDLError(op string) {
	if err := sdl.GetError(); err != nil {
		platform.log.Warn("SDL error", "op", op, "err", err)
		sdl.ClearError()
	}
}

// Dispose cleans up the resources. It is safe on a partially built platform.
func (platform *SDL) Dispose() {
	if platform.renderer != nil {
		_ = platform.renderer.Destroy()
		platform.renderer = nil
	}
	if platform.glContext != nil {
		sdl.GLDeleteContext(platform.glContext)
		platform.glContext = nil
	}
	if platform.window != nil {
		_ = platform.window.Destroy()
		platform.window = nil
	}
	sdl.Quit()
}

// Renderer returns the SDL 2D renderer, nil unless the platform was opened
// with SDLClientAPISDLRenderer.
func (platform *SDL) Renderer() *sdl.Renderer {
	return platform.renderer
}

// ShouldStop returns true if the window is to be closed.
func (platform *SDL) ShouldStop() bool {
	return platform.shouldStop
}

// ProcessEvents handles all pending window events. Only quit requests are
// acted upon.
func (platform *SDL) ProcessEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		platform.processEvent(event)
	}
}

func (platform *SDL) processEvent(event sdl.Event) {
	switch ev := event.(type) {
	case *sdl.QuitEvent:
		platform.shouldStop = true
	case *sdl.WindowEvent:
		if ev.Event == sdl.WINDOWEVENT_CLOSE {
			platform.shouldStop = true
		}
	}
}

// DisplaySize returns the dimension of the display.
func (platform *SDL) DisplaySize() [2]float32 {
	w, h := platform.window.GetSize()
	return [2]float32{float32(w), float32(h)}
}

// FramebufferSize returns the dimension of the framebuffer.
func (platform *SDL) FramebufferSize() [2]float32 {
	if platform.clientAPI == SDLClientAPISDLRenderer {
		w, h, err := platform.renderer.GetOutputSize()
		if err != nil {
			return platform.DisplaySize()
		}
		return [2]float32{float32(w), float32(h)}
	}
	w, h := platform.window.GLGetDrawableSize()
	return [2]float32{float32(w), float32(h)}
}

// PostRender performs a buffer swap.
func (platform *SDL) PostRender() {
	if platform.clientAPI == SDLClientAPIOpenGL3 {
		platform.window.GLSwap()
	}
}
