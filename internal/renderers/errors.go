package renderers

import "fmt"

// ShaderStage names the step of program construction that failed.
type ShaderStage string

const (
	StageRead      ShaderStage = "read"
	StageCompile   ShaderStage = "compile"
	StageLink      ShaderStage = "link"
	StageAttribute ShaderStage = "attribute"
)

// ShaderError reports a failed shader program build together with the
// diagnostic text returned by the driver, if any.
type ShaderError struct {
	Stage ShaderStage
	Name  string
	Log   string
	Err   error
}

func (e *ShaderError) Error() string {
	msg := fmt.Sprintf("shader %s %s failed", e.Name, e.Stage)
	if e.Log != "" {
		msg += ":\n" + e.Log
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ShaderError) Unwrap() error { return e.Err }
