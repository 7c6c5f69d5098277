package glutil

import (
	"fmt"
	"log"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/pkg/errors"
)

var errorNames = map[uint32]string{
	0x500: `GL_INVALID_ENUM`,
	0x501: `GL_INVALID_VALUE`,
	0x502: `GL_INVALID_OPERATION`,
	0x503: `GL_STACK_OVERFLOW`,
	0x504: `GL_STACK_UNDERFLOW`,
	0x505: `GL_OUT_OF_MEMORY`,
	0x506: `GL_INVALID_FRAMEBUFFER_OPERATION`,
	0x507: `GL_CONTEXT_LOST`,
}

// ErrorName returns the GL_* name of an OpenGL error code.
func ErrorName(code uint32) string {
	if name, ok := errorNames[code]; ok {
		return name
	}
	return fmt.Sprintf("GL_ERROR UNKNOWN: %#x", code)
}

// maxQueuedErrors bounds the drain loop; a lost context can report
// GL_CONTEXT_LOST forever.
const maxQueuedErrors = 16

// CheckError drains the OpenGL error queue and returns nil when it was
// empty.
func CheckError() error {
	var names []string
	for i := 0; i < maxQueuedErrors; i++ {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		names = append(names, ErrorName(code))
	}
	if len(names) == 0 {
		return nil
	}
	return errors.Errorf("GL_ERROR: %s", strings.Join(names, ", "))
}

// EnableDebugOutput forwards driver debug messages to the log. It needs
// a debug context to say anything useful.
func EnableDebugOutput() {
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(debugMessage, nil)
}

func debugMessage(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
	if severity == gl.DEBUG_SEVERITY_NOTIFICATION {
		return
	}
	log.Printf("gl debug: %s (severity %s, type %#x, id %d)", message, severityName(severity), gltype, id)
}

func severityName(severity uint32) string {
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		return "high"
	case gl.DEBUG_SEVERITY_MEDIUM:
		return "medium"
	case gl.DEBUG_SEVERITY_LOW:
		return "low"
	}
	return "notification"
}
