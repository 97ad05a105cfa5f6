package renderers

import (
	"testing"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeLog(text string) func(int32, *int32, *uint8) {
	return func(bufSize int32, written *int32, buf *uint8) {
		out := unsafe.Slice(buf, bufSize)
		n := copy(out, text)
		*written = int32(n)
	}
}

func TestReadInfoLog(t *testing.T) {
	msg := "0:3(1): error: syntax error\n"
	got := readInfoLog(int32(len(msg)+1), fakeLog(msg+"\x00"))
	assert.Equal(t, "0:3(1): error: syntax error", got)
}

func TestReadInfoLogBoundedByLength(t *testing.T) {
	got := readInfoLog(5, fakeLog("linker exploded"))
	assert.Equal(t, "linke", got)
}

func TestReadInfoLogEmpty(t *testing.T) {
	called := false
	fetch := func(int32, *int32, *uint8) { called = true }

	assert.Equal(t, "", readInfoLog(0, fetch))
	assert.Equal(t, "", readInfoLog(1, fetch))
	assert.False(t, called)
}

func TestCSource(t *testing.T) {
	assert.Equal(t, "void main(){}\x00", cSource("void main(){}"))
	assert.Equal(t, "x\x00", cSource("x\x00"))
}

func TestShaderError(t *testing.T) {
	err := &ShaderError{Stage: StageLink, Name: "program", Log: "undefined symbol"}
	assert.Equal(t, "shader program link failed:\nundefined symbol", err.Error())

	cause := errors.New("no such file")
	wrapped := errors.Wrap(&ShaderError{Stage: StageRead, Name: "a.vert", Err: cause}, "build")
	var se *ShaderError
	require.True(t, errors.As(wrapped, &se))
	assert.Equal(t, StageRead, se.Stage)
	assert.True(t, errors.Is(wrapped, cause))
}

func TestErrorName(t *testing.T) {
	assert.Equal(t, "GL_INVALID_OPERATION", errorName(gl.INVALID_OPERATION))
	assert.Equal(t, "0x1234", errorName(0x1234))
}
