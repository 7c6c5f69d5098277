// Package glutil is the thin layer between the scene and OpenGL 4.3:
// uploading meshes, building shader programs, issuing draws.
package glutil

import (
	"github.com/go-gl/gl/v4.3-core/gl"

	"github.com/paperboard/gloom/internal/mesh"
)

const (
	bytesFloat32 = 4 // a float32 is 4 bytes
	bytesUint32  = 4 // a uint32 is 4 bytes
)

// Vertex attribute locations, matched by layout(location = N) in the
// shaders.
const (
	AttribPosition = 0 // vec3
	AttribColor    = 1 // vec4
	AttribNormal   = 2 // vec3
)

// Handle is an uploaded mesh.
type Handle struct {
	VAO        uint32
	IndexCount int32
}

// Layout returns the byte offsets of the color and normal blocks in the
// vertex buffer, and its total size. Positions start at 0.
//
//	| positions (3f each) | colors (4f each) | normals (3f each) |
func Layout(m mesh.Mesh) (colorOffset, normalOffset, total int) {
	colorOffset = len(m.Vertices) * bytesFloat32
	normalOffset = colorOffset + len(m.Colors)*bytesFloat32
	total = normalOffset + len(m.Normals)*bytesFloat32
	return colorOffset, normalOffset, total
}

// Upload copies m into a new vertex array object. The VAO remembers the
// attribute layout and the element buffer, so binding it is all a draw
// needs.
//
// https://www.songho.ca/opengl/gl_vbo.html#create
func Upload(m mesh.Mesh) Handle {
	colorOffset, normalOffset, total := Layout(m)

	var vao, vbo, ibo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	// one buffer, three blocks: initialize but do not copy, then fill each block
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, total, nil, gl.STATIC_DRAW)
	bufferSubData(0, m.Vertices)
	bufferSubData(colorOffset, m.Colors)
	bufferSubData(normalOffset, m.Normals)

	gl.VertexAttribPointer(AttribPosition, mesh.PositionSize, gl.FLOAT, false, 0, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(AttribPosition)
	gl.VertexAttribPointer(AttribColor, mesh.ColorSize, gl.FLOAT, false, 0, gl.PtrOffset(colorOffset))
	gl.EnableVertexAttribArray(AttribColor)
	gl.VertexAttribPointer(AttribNormal, mesh.NormalSize, gl.FLOAT, false, 0, gl.PtrOffset(normalOffset))
	gl.EnableVertexAttribArray(AttribNormal)

	// the element buffer binding is part of the VAO state
	gl.GenBuffers(1, &ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ibo)
	if len(m.Indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*bytesUint32, gl.Ptr(m.Indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return Handle{VAO: vao, IndexCount: m.IndexCount()}
}

func bufferSubData(offset int, data []float32) {
	if len(data) == 0 {
		return
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, offset, len(data)*bytesFloat32, gl.Ptr(data))
}
