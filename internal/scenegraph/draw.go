package scenegraph

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Sink receives the draw calls of the draw pass.
type Sink interface {
	// DrawMesh binds the two matrices to the active program and draws
	// indexCount indices of vao as a triangle list.
	//
	// mvp is view-projection * model, model is the world transform alone.
	DrawMesh(vao uint32, indexCount int32, mvp, model mgl32.Mat4)
}

// Draw walks the tree depth-first and submits every drawable node to sink.
// Nodes without a mesh are still descended into.
//
// The handles are not validated.
func Draw(root *Node, viewProjection mgl32.Mat4, sink Sink) {
	if root.Drawable() {
		sink.DrawMesh(root.VAO, root.IndexCount, viewProjection.Mul4(root.world), root.world)
	}
	for _, c := range root.children {
		Draw(c, viewProjection, sink)
	}
}

// Count returns the number of nodes in the tree and how many of them draw.
func Count(root *Node) (nodes, drawables int) {
	nodes = 1
	if root.Drawable() {
		drawables = 1
	}
	for _, c := range root.children {
		n, d := Count(c)
		nodes += n
		drawables += d
	}
	return nodes, drawables
}
