package example

import (
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// Names of the supported platforms, renderers and textures.
const (
	PlatformSDL  = "sdl"
	PlatformGLFW = "glfw"

	RendererOpenGL3     = "opengl3"
	RendererSDLRenderer = "sdlrenderer"

	TextureWhite = "white"
	TextureImage = "image"
)

// Default asset file names, looked up in Config.AssetDir.
const (
	DefaultVertexShader   = "vertex-shader-1.vert"
	DefaultFragmentShader = "texture-shader-1.frag"
	DefaultImage          = "SDL_logo.bmp"
)

// Config is the run configuration assembled from the command line.
type Config struct {
	AssetDir       string
	VertexShader   string
	FragmentShader string
	Image          string

	Platform string
	Renderer string
	Texture  string

	Hold      time.Duration
	Verbosity string
	// StrictExit maps each failed stage to its own non-zero exit status.
	// Without it every run exits 0 and failures are only logged.
	StrictExit bool
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		AssetDir:       ".",
		VertexShader:   DefaultVertexShader,
		FragmentShader: DefaultFragmentShader,
		Image:          DefaultImage,
		Platform:       PlatformSDL,
		Renderer:       RendererOpenGL3,
		Texture:        TextureWhite,
		Hold:           5 * time.Second,
		Verbosity:      "info",
	}
}

// Validate rejects unknown names and unsupported combinations.
func (c Config) Validate() error {
	switch c.Platform {
	case PlatformSDL, PlatformGLFW:
	default:
		return errors.Errorf("unknown platform %q", c.Platform)
	}
	switch c.Renderer {
	case RendererOpenGL3, RendererSDLRenderer:
	default:
		return errors.Errorf("unknown renderer %q", c.Renderer)
	}
	if c.Platform == PlatformGLFW && c.Renderer != RendererOpenGL3 {
		return errors.Errorf("platform %s only supports the %s renderer", PlatformGLFW, RendererOpenGL3)
	}
	switch c.Texture {
	case TextureWhite, TextureImage:
	default:
		return errors.Errorf("unknown texture %q", c.Texture)
	}
	if c.Hold < 0 {
		return errors.Errorf("negative hold duration %v", c.Hold)
	}
	if c.VertexShader == "" || c.FragmentShader == "" {
		return errors.New("shader file names must not be empty")
	}
	return nil
}

// Path resolves an asset file name against AssetDir. Absolute names are
// returned unchanged.
func (c Config) Path(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.AssetDir, name)
}

// UseImage reports whether the decoded image should be bound for drawing.
func (c Config) UseImage() bool {
	return c.Texture == TextureImage
}
