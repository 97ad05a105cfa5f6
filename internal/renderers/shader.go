package renderers

import (
	"log/slog"
	"os"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"
)

// Names of the shader inputs the quad renderer feeds.
const (
	PositionAttribute = "a_position"
	TexCoordAttribute = "a_texCoord"
	SamplerUniform    = "s_texture"
)

// Program is a linked vertex+fragment shader pair together with the
// locations of its inputs. A Program value is always fully linked.
type Program struct {
	handle uint32

	Position uint32
	TexCoord uint32
	Sampler  int32
}

// BuildProgram reads the two shader sources from disk and links them.
func BuildProgram(log *slog.Logger, vertexPath, fragmentPath string) (*Program, error) {
	vertexSource, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, &ShaderError{Stage: StageRead, Name: vertexPath, Err: err}
	}
	fragmentSource, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, &ShaderError{Stage: StageRead, Name: fragmentPath, Err: err}
	}
	log.Debug("Shader sources loaded", "vertex", vertexPath, "fragment", fragmentPath)
	return NewProgram(log, string(vertexSource), string(fragmentSource))
}

// NewProgram compiles and links the given sources. On failure every GL
// object created on the way is deleted again.
func NewProgram(log *slog.Logger, vertexSource, fragmentSource string) (*Program, error) {
	vertexShader, err := compileShader(gl.VERTEX_SHADER, "vertex", vertexSource)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertexShader)
	checkError(log, "compile vertex shader")

	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, "fragment", fragmentSource)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragmentShader)
	checkError(log, "compile fragment shader")

	handle := gl.CreateProgram()
	if handle == 0 {
		return nil, &ShaderError{Stage: StageLink, Name: "program", Err: errors.New("glCreateProgram returned 0")}
	}
	gl.AttachShader(handle, vertexShader)
	gl.AttachShader(handle, fragmentShader)
	gl.BindAttribLocation(handle, 0, gl.Str(cSource(PositionAttribute)))
	gl.BindAttribLocation(handle, 1, gl.Str(cSource(TexCoordAttribute)))
	gl.LinkProgram(handle)

	var linked int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &linked)
	if linked == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := readInfoLog(logLength, func(bufSize int32, written *int32, buf *uint8) {
			gl.GetProgramInfoLog(handle, bufSize, written, buf)
		})
		gl.DeleteProgram(handle)
		return nil, &ShaderError{Stage: StageLink, Name: "program", Log: infoLog}
	}
	gl.DetachShader(handle, vertexShader)
	gl.DetachShader(handle, fragmentShader)
	checkError(log, "link program")

	program := &Program{handle: handle}
	position := gl.GetAttribLocation(handle, gl.Str(cSource(PositionAttribute)))
	texCoord := gl.GetAttribLocation(handle, gl.Str(cSource(TexCoordAttribute)))
	if position < 0 || texCoord < 0 {
		program.Dispose()
		return nil, &ShaderError{
			Stage: StageAttribute,
			Name:  "program",
			Err:   errors.Errorf("%s=%d %s=%d", PositionAttribute, position, TexCoordAttribute, texCoord),
		}
	}
	program.Position = uint32(position)
	program.TexCoord = uint32(texCoord)
	program.Sampler = gl.GetUniformLocation(handle, gl.Str(cSource(SamplerUniform)))
	if program.Sampler < 0 {
		log.Warn("Sampler uniform not active", "name", SamplerUniform)
	}

	log.Debug("Shader program linked",
		"handle", handle, "position", program.Position, "texCoord", program.TexCoord, "sampler", program.Sampler)
	return program, nil
}

func compileShader(kind uint32, name, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csources, free := gl.Strs(cSource(source))
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := readInfoLog(logLength, func(bufSize int32, written *int32, buf *uint8) {
			gl.GetShaderInfoLog(shader, bufSize, written, buf)
		})
		gl.DeleteShader(shader)
		return 0, &ShaderError{Stage: StageCompile, Name: name, Log: infoLog}
	}
	return shader, nil
}

// Use makes the program current.
func (p *Program) Use() {
	gl.UseProgram(p.handle)
}

// Dispose deletes the program. Calling it twice is harmless.
func (p *Program) Dispose() {
	if p.handle != 0 {
		gl.DeleteProgram(p.handle)
		p.handle = 0
	}
}
