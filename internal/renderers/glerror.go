package renderers

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"
)

func errorName(code uint32) string {
	switch code {
	case gl.NO_ERROR:
		return "GL_NO_ERROR"
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("0x%04x", code)
	}
}

// maxErrorDrain bounds the glGetError loop; a lost context may report
// errors forever.
const maxErrorDrain = 16

// checkError drains pending GL errors and logs each one. It only reports;
// the caller carries on regardless.
func checkError(log *slog.Logger, op string) {
	for i := 0; i < maxErrorDrain; i++ {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			return
		}
		log.Warn("GL error", "op", op, "error", errorName(code))
	}
}
