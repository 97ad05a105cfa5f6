package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/firodj/sdl-gl-quad/internal/example"
)

func parseConfig(t *testing.T, args ...string) example.Config {
	t.Helper()
	var cfg example.Config
	app := newApp()
	app.Action = func(ctx *cli.Context) error {
		cfg = configFromFlags(ctx)
		return nil
	}
	require.NoError(t, app.Run(append([]string{"example_quad"}, args...)))
	return cfg
}

func TestConfigFromFlagsDefaults(t *testing.T) {
	assert.Equal(t, example.DefaultConfig(), parseConfig(t))
}

func TestConfigFromFlags(t *testing.T) {
	cfg := parseConfig(t,
		"--assets", "assets",
		"--platform", "glfw",
		"--texture", "image",
		"--hold", "250ms",
		"--verbosity", "debug",
		"--strict-exit",
	)

	assert.Equal(t, "assets", cfg.AssetDir)
	assert.Equal(t, example.PlatformGLFW, cfg.Platform)
	assert.True(t, cfg.UseImage())
	assert.Equal(t, 250*time.Millisecond, cfg.Hold)
	assert.Equal(t, "debug", cfg.Verbosity)
	assert.True(t, cfg.StrictExit)
}

func runApp(args ...string) (string, error) {
	var stderr bytes.Buffer
	app := newApp()
	app.ErrWriter = &stderr
	err := app.Run(append([]string{"example_quad"}, args...))
	return stderr.String(), err
}

func TestFailuresExitZeroByDefault(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown platform", []string{"--platform", "wayland"}, "unknown platform"},
		{"unknown renderer", []string{"--renderer", "vulkan"}, "unknown renderer"},
		{"bad verbosity", []string{"--verbosity", "chatty"}, "invalid verbosity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runApp(tt.args...)
			require.NoError(t, err)
			assert.Equal(t, 0, example.ExitCode(err))
			assert.Contains(t, out, "Startup failed")
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestStrictExitCodes(t *testing.T) {
	out, err := runApp("--platform", "wayland", "--strict-exit")
	require.Error(t, err)
	assert.Equal(t, example.StageConfig.ExitCode(), example.ExitCode(err))
	assert.Contains(t, out, "unknown platform")

	_, err = runApp("--verbosity", "chatty", "--strict-exit")
	require.Error(t, err)
	assert.Equal(t, example.StageConfig.ExitCode(), example.ExitCode(err))
}
