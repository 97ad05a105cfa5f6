package example

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/firodj/sdl-gl-quad/internal/renderers"
)

// Stage is the startup step a failure happened in.
type Stage int

const (
	StageConfig Stage = iota + 1
	StagePlatform
	StageShader
	StageRenderer
)

func (s Stage) String() string {
	switch s {
	case StageConfig:
		return "config"
	case StagePlatform:
		return "platform"
	case StageShader:
		return "shader"
	case StageRenderer:
		return "renderer"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// ExitCode is the process status reported for a failure in s.
func (s Stage) ExitCode() int {
	return int(s)
}

// StageError attaches a Stage to a startup failure.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string { return e.Stage.String() + ": " + e.Err.Error() }
func (e *StageError) Unwrap() error { return e.Err }

// Fail wraps err as a failure of stage. A nil err stays nil.
func Fail(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Err: err}
}

// RendererFailure classifies an error from renderer construction: shader
// build errors map to StageShader, everything else to StageRenderer.
func RendererFailure(err error) error {
	var shaderErr *renderers.ShaderError
	if errors.As(err, &shaderErr) {
		return Fail(StageShader, err)
	}
	return Fail(StageRenderer, err)
}

// ExitCode maps err to a process exit status: 0 for nil, the stage code
// for a StageError and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.Stage.ExitCode()
	}
	return 1
}
