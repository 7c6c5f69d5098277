// Package scenegraph holds a tree of transformable nodes and the two
// passes run over it every frame: the transform update and the draw.
//
//	root (no mesh)
//	  |
//	  +-- body (mesh) -----+-- door (mesh)
//	                       +-- main rotor (mesh)
//	                       +-- tail rotor (mesh)
//
// Every node is owned by exactly one parent. The tree is never checked
// for cycles, so building one is the caller's mistake.
package scenegraph

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Node is one element of the scene graph.
type Node struct {
	Name string

	// translation applied in parent space
	Position mgl32.Vec3

	// radians around local x, y, z; applied x, then y, then z about ReferencePoint
	Rotation mgl32.Vec3

	// pivot for Rotation
	ReferencePoint mgl32.Vec3

	// mesh handle, drawable only when IndexCount > 0
	VAO        uint32
	IndexCount int32

	world    mgl32.Mat4 // recomputed by UpdateTransforms every frame
	children []*Node
}

// New returns an empty node that only groups its children.
func New() *Node {
	return &Node{world: mgl32.Ident4()}
}

// FromMesh returns a drawable node bound to an already uploaded mesh.
func FromMesh(vao uint32, indexCount int32) *Node {
	n := New()
	n.VAO = vao
	n.IndexCount = indexCount
	return n
}

// AddChild appends child and returns it. The child's subtree must not be
// attached anywhere else.
func (n *Node) AddChild(child *Node) *Node {
	n.children = append(n.children, child)
	return child
}

// Children returns the node's children in insertion order.
func (n *Node) Children() []*Node {
	return n.children
}

// Drawable reports whether the node issues a draw call.
func (n *Node) Drawable() bool {
	return n.IndexCount > 0
}

// World returns the transform computed by the last UpdateTransforms.
func (n *Node) World() mgl32.Mat4 {
	return n.world
}

// Fprint writes an indented dump of the tree rooted at root.
func Fprint(w io.Writer, root *Node) error {
	return fprint(w, root, 0)
}

func fprint(w io.Writer, n *Node, depth int) error {
	name := n.Name
	if name == "" {
		name = "<unnamed>"
	}
	mesh := "-"
	if n.Drawable() {
		mesh = fmt.Sprintf("vao=%d indices=%d", n.VAO, n.IndexCount)
	}
	_, err := fmt.Fprintf(w, "%s%s [%s] pos=%v rot=%v ref=%v\n",
		strings.Repeat("  ", depth), name, mesh, n.Position, n.Rotation, n.ReferencePoint)
	if err != nil {
		return err
	}
	for _, c := range n.children {
		if err := fprint(w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}
