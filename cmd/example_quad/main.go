package main

import (
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/firodj/sdl-gl-quad/internal/example"
	"github.com/firodj/sdl-gl-quad/internal/platforms"
	"github.com/firodj/sdl-gl-quad/internal/renderers"
)

func init() {
	// Window, context and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		os.Exit(example.ExitCode(err))
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:   "example_quad",
		Usage:  "open a window and draw one textured quad",
		Flags:  flags,
		Action: run,
		// Exit codes are decided in main.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

// run reports the frame rate on every path. Failures are logged and only
// turn into an error, and so a non-zero exit status, with --strict-exit.
func run(ctx *cli.Context) error {
	began := time.Now()
	cfg := configFromFlags(ctx)
	stderr := ctx.App.ErrWriter

	stats, err := execute(stderr, cfg)
	if stats.Frames == 0 {
		stats.Elapsed = time.Since(began)
	}
	example.Report(stderr, stats)

	if err != nil && cfg.StrictExit {
		return err
	}
	return nil
}

func execute(stderr io.Writer, cfg example.Config) (example.Stats, error) {
	log, err := example.NewLogger(stderr, cfg.Verbosity)
	if err != nil {
		log, _ = example.NewLogger(stderr, "info")
		err = example.Fail(example.StageConfig, err)
	} else if err = cfg.Validate(); err != nil {
		err = example.Fail(example.StageConfig, err)
	} else {
		var stats example.Stats
		if stats, err = start(log, cfg); err == nil {
			return stats, nil
		}
	}
	log.Error("Startup failed", "err", err)
	return example.Stats{}, err
}

func start(log *slog.Logger, cfg example.Config) (example.Stats, error) {
	platform, renderer, err := open(log, cfg)
	if err != nil {
		return example.Stats{}, err
	}
	defer platform.Dispose()
	defer renderer.Dispose()

	opts := example.DefaultOptions(log)
	opts.Hold = cfg.Hold
	return example.Run(platform, renderer, opts), nil
}

// open creates the platform and the renderer drawing into it. When the
// renderer cannot be built the platform is released again.
func open(log *slog.Logger, cfg example.Config) (platforms.Platform, example.Renderer, error) {
	if cfg.Platform == example.PlatformGLFW {
		platform, err := platforms.NewGLFW(log)
		if err != nil {
			return nil, nil, example.Fail(example.StagePlatform, err)
		}
		renderer, err := newOpenGL3(log, cfg)
		if err != nil {
			platform.Dispose()
			return nil, nil, example.RendererFailure(err)
		}
		return platform, renderer, nil
	}

	clientAPI := platforms.SDLClientAPIOpenGL3
	if cfg.Renderer == example.RendererSDLRenderer {
		clientAPI = platforms.SDLClientAPISDLRenderer
	}
	platform, err := platforms.NewSDL(log, clientAPI)
	if err != nil {
		return nil, nil, example.Fail(example.StagePlatform, err)
	}

	var renderer example.Renderer
	if clientAPI == platforms.SDLClientAPISDLRenderer {
		renderer, err = renderers.NewSDLRenderer(log, platform.Renderer(), renderers.SDLRendererOptions{
			Image:    cfg.Path(cfg.Image),
			UseImage: cfg.UseImage(),
		})
	} else {
		renderer, err = newOpenGL3(log, cfg)
	}
	if err != nil {
		platform.Dispose()
		return nil, nil, example.RendererFailure(err)
	}
	return platform, renderer, nil
}

func newOpenGL3(log *slog.Logger, cfg example.Config) (*renderers.OpenGL3, error) {
	return renderers.NewOpenGL3(log, renderers.OpenGL3Options{
		VertexShader:   cfg.Path(cfg.VertexShader),
		FragmentShader: cfg.Path(cfg.FragmentShader),
		Image:          cfg.Path(cfg.Image),
		UseImage:       cfg.UseImage(),
		Viewport:       [2]int32{platforms.WindowWidth, platforms.WindowHeight},
	})
}
