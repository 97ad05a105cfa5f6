package main

import (
	"github.com/urfave/cli/v2"

	"github.com/firodj/sdl-gl-quad/internal/example"
)

var defaults = example.DefaultConfig()

var (
	assetDirFlag = &cli.StringFlag{
		Name:    "assets",
		Usage:   "Directory holding the shader and image files",
		Value:   defaults.AssetDir,
		EnvVars: []string{"QUAD_ASSETS"},
	}
	vertexFlag = &cli.StringFlag{
		Name:    "vertex",
		Usage:   "Vertex shader file",
		Value:   defaults.VertexShader,
		EnvVars: []string{"QUAD_VERTEX"},
	}
	fragmentFlag = &cli.StringFlag{
		Name:    "fragment",
		Usage:   "Fragment shader file",
		Value:   defaults.FragmentShader,
		EnvVars: []string{"QUAD_FRAGMENT"},
	}
	imageFlag = &cli.StringFlag{
		Name:    "image",
		Usage:   "Bitmap decoded into the image texture",
		Value:   defaults.Image,
		EnvVars: []string{"QUAD_IMAGE"},
	}
	platformFlag = &cli.StringFlag{
		Name:    "platform",
		Usage:   "Window platform (sdl, glfw)",
		Value:   defaults.Platform,
		EnvVars: []string{"QUAD_PLATFORM"},
	}
	rendererFlag = &cli.StringFlag{
		Name:    "renderer",
		Usage:   "Renderer backend (opengl3, sdlrenderer)",
		Value:   defaults.Renderer,
		EnvVars: []string{"QUAD_RENDERER"},
	}
	textureFlag = &cli.StringFlag{
		Name:    "texture",
		Usage:   "Texture bound for drawing (white, image)",
		Value:   defaults.Texture,
		EnvVars: []string{"QUAD_TEXTURE"},
	}
	holdFlag = &cli.DurationFlag{
		Name:    "hold",
		Usage:   "How long the frame stays on screen",
		Value:   defaults.Hold,
		EnvVars: []string{"QUAD_HOLD"},
	}
	verbosityFlag = &cli.StringFlag{
		Name:    "verbosity",
		Usage:   "Log level (debug, info, warn, error)",
		Value:   defaults.Verbosity,
		EnvVars: []string{"QUAD_VERBOSITY"},
	}
	strictExitFlag = &cli.BoolFlag{
		Name:    "strict-exit",
		Usage:   "Exit with a non-zero status naming the failed stage",
		EnvVars: []string{"QUAD_STRICT_EXIT"},
	}
)

var flags = []cli.Flag{
	assetDirFlag,
	vertexFlag,
	fragmentFlag,
	imageFlag,
	platformFlag,
	rendererFlag,
	textureFlag,
	holdFlag,
	verbosityFlag,
	strictExitFlag,
}

func configFromFlags(ctx *cli.Context) example.Config {
	return example.Config{
		AssetDir:       ctx.String(assetDirFlag.Name),
		VertexShader:   ctx.String(vertexFlag.Name),
		FragmentShader: ctx.String(fragmentFlag.Name),
		Image:          ctx.String(imageFlag.Name),
		Platform:       ctx.String(platformFlag.Name),
		Renderer:       ctx.String(rendererFlag.Name),
		Texture:        ctx.String(textureFlag.Name),
		Hold:           ctx.Duration(holdFlag.Name),
		Verbosity:      ctx.String(verbosityFlag.Name),
		StrictExit:     ctx.Bool(strictExitFlag.Name),
	}
}
