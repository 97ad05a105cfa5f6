// Package platforms opens the window and rendering context the renderers
// draw into.
package platforms

import "log/slog"

// Platform covers window handling and presentation.
type Platform interface {
	// ShouldStop is regarded to signal a quit request.
	ShouldStop() bool
	// ProcessEvents drains pending window events.
	ProcessEvents()
	// DisplaySize returns the dimension of the display.
	DisplaySize() [2]float32
	// FramebufferSize returns the dimension of the framebuffer.
	FramebufferSize() [2]float32
	// PostRender presents the back buffer.
	PostRender()
	// Dispose releases the context and window.
	Dispose()
}

// Window geometry shared by every platform.
const (
	WindowTitle  = "Simple rotating texture"
	WindowWidth  = 512
	WindowHeight = 1024
)

func logger(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.Default()
	}
	return log
}
