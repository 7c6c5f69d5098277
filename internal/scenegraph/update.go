package scenegraph

import (
	"github.com/go-gl/mathgl/mgl32"
)

// LocalTransform builds the node's transform relative to its parent:
//
//	L = T * O' * Rx * Ry * Rz * O
//
// O moves the reference point to the origin, O' moves it back, T is the
// node's position. The rotation order is fixed; changing it changes the
// result.
func LocalTransform(n *Node) mgl32.Mat4 {
	ref := n.ReferencePoint

	origin := mgl32.Translate3D(-ref.X(), -ref.Y(), -ref.Z())
	back := mgl32.Translate3D(ref.X(), ref.Y(), ref.Z())

	rx := mgl32.HomogRotate3DX(n.Rotation.X())
	ry := mgl32.HomogRotate3DY(n.Rotation.Y())
	rz := mgl32.HomogRotate3DZ(n.Rotation.Z())

	translate := mgl32.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z())

	return translate.Mul4(back).Mul4(rx).Mul4(ry).Mul4(rz).Mul4(origin)
}

// UpdateTransforms walks the tree depth-first, pre-order, and stores
// parent * local on every node. Pass mgl32.Ident4() for the true root.
//
// Run it once per frame, after animation has written positions and
// rotations and before Draw.
func UpdateTransforms(root *Node, parent mgl32.Mat4) {
	root.world = parent.Mul4(LocalTransform(root))
	for _, c := range root.children {
		UpdateTransforms(c, root.world)
	}
}
