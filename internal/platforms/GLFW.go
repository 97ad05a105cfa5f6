package platforms

import (
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
)

// GLFW implements a platform based on github.com/go-gl/glfw (v3.3).
// Only the OpenGL3 client API is supported.
type GLFW struct {
	log    *slog.Logger
	window *glfw.Window
}

// NewGLFW attempts to initialize a GLFW context with an OpenGL 3.3 core
// profile window.
func NewGLFW(log *slog.Logger) (*GLFW, error) {
	err := glfw.Init()
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "failed to initialize glfw")
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, 1)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(WindowWidth, WindowHeight, WindowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "failed to create window")
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	platform := &GLFW{log: logger(log), window: window}
	platform.log.Debug("Window created", "platform", "glfw", "width", WindowWidth, "height", WindowHeight)
	return platform, nil
}

// Dispose cleans up the resources.
func (platform *GLFW) Dispose() {
	if platform.window != nil {
		platform.window.Destroy()
		platform.window = nil
	}
	glfw.Terminate()
}

// ShouldStop returns true if the window is to be closed.
func (platform *GLFW) ShouldStop() bool {
	return platform.window.ShouldClose()
}

// ProcessEvents handles all pending window events.
func (platform *GLFW) ProcessEvents() {
	glfw.PollEvents()
}

// DisplaySize returns the dimension of the display.
func (platform *GLFW) DisplaySize() [2]float32 {
	w, h := platform.window.GetSize()
	return [2]float32{float32(w), float32(h)}
}

// FramebufferSize returns the dimension of the framebuffer.
func (platform *GLFW) FramebufferSize() [2]float32 {
	w, h := platform.window.GetFramebufferSize()
	return [2]float32{float32(w), float32(h)}
}

// PostRender performs a buffer swap.
func (platform *GLFW) PostRender() {
	platform.window.SwapBuffers()
}
