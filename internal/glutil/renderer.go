package glutil

import (
	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer draws scene graph meshes with one program.
type Renderer struct {
	Program *Program

	// draw calls issued since the last Begin
	Draws int
}

// NewRenderer returns a renderer using p.
func NewRenderer(p *Program) *Renderer {
	return &Renderer{Program: p}
}

// Begin clears the screen and activates the program.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.Program.Use()
	r.Draws = 0
}

// DrawMesh uploads the matrices and draws vao as a triangle list.
func (r *Renderer) DrawMesh(vao uint32, indexCount int32, mvp, model mgl32.Mat4) {
	r.Program.SetMatrices(mvp, model)
	gl.BindVertexArray(vao)
	gl.DrawElements(gl.TRIANGLES, indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	r.Draws++
}

// End unbinds the vertex array.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
}

// Setup sets the fixed pipeline state every exercise shares.
func Setup() {

	// cleared background color = dark gray
	gl.ClearColor(0.163, 0.163, 0.163, 1)

	// do not render pixels hidden behind nearer ones
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)

	// counter-clockwise triangles face the viewer
	gl.FrontFace(gl.CCW)
	gl.Enable(gl.CULL_FACE)

	gl.Disable(gl.MULTISAMPLE)

	// alpha blending
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

}
