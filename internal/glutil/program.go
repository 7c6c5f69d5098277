package glutil

import (
	"log"
	"strings"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Uniform locations fixed by layout(location = N) in every shader.
const (
	UniformMVP   = 3 // view-projection * model
	UniformModel = 4 // model (world) matrix alone
)

// Program is a linked vertex + fragment shader pair.
type Program struct {
	ID uint32

	// a shader may leave out the model matrix, and the compiler drops
	// unused uniforms
	hasModel bool
}

// NewProgram compiles and links the two sources. Sources need not be
// NUL terminated.
func NewProgram(vertexShaderSource, fragmentShaderSource string) (*Program, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, errors.Wrap(err, "vertex shader")
	}

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return nil, errors.Wrap(err, "fragment shader")
	}

	program := gl.CreateProgram()

	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	// the program keeps what it needs
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {

		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		log.Printf("Failed to link program:\n%s", infoLog)

		gl.DeleteProgram(program)
		return nil, errors.Errorf("failed to link program: %q", strings.TrimRight(infoLog, "\x00"))

	}

	p := &Program{
		ID:       program,
		hasModel: gl.GetUniformLocation(program, gl.Str("model\x00")) == UniformModel,
	}
	return p, nil
}

// MustProgram is NewProgram that panics, for the built-in shaders.
func MustProgram(vertexShaderSource, fragmentShaderSource string) *Program {
	p, err := NewProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		panic(err)
	}
	return p
}

// Use makes p the active program.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// SetMatrices uploads both transforms of a draw. The program must be
// active.
func (p *Program) SetMatrices(mvp, model mgl32.Mat4) {
	gl.UniformMatrix4fv(UniformMVP, 1, false, &mvp[0])
	if p.hasModel {
		gl.UniformMatrix4fv(UniformModel, 1, false, &model[0])
	}
}

// Delete frees the program.
func (p *Program) Delete() {
	gl.DeleteProgram(p.ID)
}

func compileShader(source string, shaderType uint32) (uint32, error) {

	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {

		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		log.Printf("Failed to compile shader:\n%s", infoLog)

		gl.DeleteShader(shader)
		return 0, errors.Errorf("failed to compile shader: %q", strings.TrimRight(infoLog, "\x00"))

	}

	return shader, nil

}
