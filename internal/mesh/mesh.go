// Package mesh holds vertex data ready to be uploaded to the GPU and the
// procedural and glTF sources that produce it.
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

const (
	PositionSize = 3 // x,y,z
	ColorSize    = 4 // r,g,b,a
	NormalSize   = 3 // x,y,z
)

// Mesh is an indexed triangle list. Vertices, Colors and Normals are
// flat arrays laid out as PositionSize, ColorSize and NormalSize floats
// per vertex. A mesh is not modified once it has been loaded.
type Mesh struct {
	Vertices []float32
	Colors   []float32
	Normals  []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices.
func (m Mesh) VertexCount() int {
	return len(m.Vertices) / PositionSize
}

// IndexCount returns the number of indices, as expected by DrawElements.
func (m Mesh) IndexCount() int32 {
	return int32(len(m.Indices))
}

// TriangleCount returns the number of triangles.
func (m Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Validate checks that the arrays agree with each other.
func (m Mesh) Validate() error {
	if len(m.Vertices)%PositionSize != 0 {
		return errors.Errorf("mesh: %d position floats is not a multiple of %d", len(m.Vertices), PositionSize)
	}
	n := m.VertexCount()
	if len(m.Colors) != n*ColorSize {
		return errors.Errorf("mesh: have %d color floats, want %d", len(m.Colors), n*ColorSize)
	}
	if len(m.Normals) != n*NormalSize {
		return errors.Errorf("mesh: have %d normal floats, want %d", len(m.Normals), n*NormalSize)
	}
	if len(m.Indices)%3 != 0 {
		return errors.Errorf("mesh: %d indices is not a triangle list", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return errors.Errorf("mesh: index %d at %d out of range (%d vertices)", idx, i, n)
		}
	}
	return nil
}

// Merge concatenates meshes into one, rebasing indices.
func Merge(meshes ...Mesh) Mesh {
	var out Mesh
	for _, m := range meshes {
		base := uint32(out.VertexCount())
		out.Vertices = append(out.Vertices, m.Vertices...)
		out.Colors = append(out.Colors, m.Colors...)
		out.Normals = append(out.Normals, m.Normals...)
		for _, idx := range m.Indices {
			out.Indices = append(out.Indices, idx+base)
		}
	}
	return out
}

// Fill sets every vertex color to c.
func (m Mesh) Fill(c mgl32.Vec4) Mesh {
	colors := make([]float32, 0, m.VertexCount()*ColorSize)
	for i := 0; i < m.VertexCount(); i++ {
		colors = append(colors, c[:]...)
	}
	m.Colors = colors
	return m
}
