// Package example sequences a single rendered frame between a platform and
// a renderer.
package example

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/firodj/sdl-gl-quad/internal/geometry"
	"github.com/firodj/sdl-gl-quad/internal/platforms"
)

// Renderer covers rendering the quad.
type Renderer interface {
	// PreRender causes the display buffer to be prepared for new output.
	PreRender(clearColor [4]float32)
	// Render draws the quad.
	Render(displaySize [2]float32, framebufferSize [2]float32, quad geometry.Quad)
	// PostRender finishes the frame on the renderer side.
	PostRender()
	// Dispose releases the renderer's resources.
	Dispose()
}

// QuadHalfExtent places the quad corners at +-0.75 in device coordinates.
const QuadHalfExtent = 0.75

const holdPollInterval = 20 * time.Millisecond

// Options controls Run.
type Options struct {
	Log        *slog.Logger
	ClearColor [4]float32
	// Hold is how long the frame stays on screen before Run returns.
	Hold time.Duration

	Now   func() time.Time
	Sleep func(time.Duration)
}

// DefaultOptions clears to red and holds the frame for five seconds.
func DefaultOptions(log *slog.Logger) Options {
	return Options{
		Log:        log,
		ClearColor: [4]float32{1, 0, 0, 0},
		Hold:       5 * time.Second,
		Now:        time.Now,
		Sleep:      time.Sleep,
	}
}

// Stats is what Run measured.
type Stats struct {
	Frames  uint32
	Elapsed time.Duration
}

// FramesPerSecond averages the frame count over the elapsed time. It is
// zero when no whole millisecond has passed.
func (s Stats) FramesPerSecond() float64 {
	ms := s.Elapsed.Milliseconds()
	if ms <= 0 {
		return 0
	}
	return float64(s.Frames) * 1000 / float64(ms)
}

// Run processes pending events, draws and presents one frame, then holds
// the frame on screen. The frame is drawn even when a quit is already
// pending; only the hold is cut short. Returns once the hold expires or the
// window is closed.
func Run(p platforms.Platform, r Renderer, opts Options) Stats {
	opts = withDefaults(opts)
	start := opts.Now()
	var stats Stats

	p.ProcessEvents()
	r.PreRender(opts.ClearColor)
	r.Render(p.DisplaySize(), p.FramebufferSize(), geometry.NewQuad(QuadHalfExtent))
	r.PostRender()
	p.PostRender()
	stats.Frames++
	opts.Log.Debug("Frame presented")

	hold(p, opts)

	stats.Elapsed = opts.Now().Sub(start)
	return stats
}

func hold(p platforms.Platform, opts Options) {
	deadline := opts.Now().Add(opts.Hold)
	for !p.ShouldStop() {
		remaining := deadline.Sub(opts.Now())
		if remaining <= 0 {
			return
		}
		if remaining > holdPollInterval {
			remaining = holdPollInterval
		}
		opts.Sleep(remaining)
		p.ProcessEvents()
	}
	opts.Log.Info("Quit requested")
}

func withDefaults(opts Options) Options {
	if opts.Log == nil {
		opts.Log = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}
	return opts
}

// Report writes the average frame rate to w regardless of log level.
// Nothing is written when no millisecond has passed.
func Report(w io.Writer, stats Stats) {
	if stats.Elapsed.Milliseconds() > 0 {
		_, _ = fmt.Fprintf(w, "%2.2f frames per second\n", stats.FramesPerSecond())
	}
}
