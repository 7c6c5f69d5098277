package scenegraph

import (
	"bytes"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-5

func assertMat(t *testing.T, want, have mgl32.Mat4) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(have, epsilon), "matrix\nhave %v\nwant %v", have, want)
}

func assertVec(t *testing.T, want, have mgl32.Vec3) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(have, epsilon), "vector\nhave %v\nwant %v", have, want)
}

type drawCall struct {
	vao        uint32
	indexCount int32
	mvp        mgl32.Mat4
	model      mgl32.Mat4
}

type countingSink struct {
	calls []drawCall
}

func (s *countingSink) DrawMesh(vao uint32, indexCount int32, mvp, model mgl32.Mat4) {
	s.calls = append(s.calls, drawCall{vao, indexCount, mvp, model})
}

func TestNew(t *testing.T) {
	n := New()
	assert.False(t, n.Drawable())
	assert.Equal(t, mgl32.Vec3{}, n.Position)
	assert.Equal(t, mgl32.Vec3{}, n.Rotation)
	assert.Equal(t, mgl32.Vec3{}, n.ReferencePoint)
	assert.Empty(t, n.Children())
	assert.Equal(t, mgl32.Ident4(), n.World())

	m := FromMesh(7, 36)
	assert.True(t, m.Drawable())
	assert.Equal(t, uint32(7), m.VAO)
	assert.Equal(t, int32(36), m.IndexCount)

	assert.False(t, FromMesh(7, 0).Drawable())
}

func TestAddChildKeepsOrder(t *testing.T) {
	root := New()
	a := root.AddChild(New())
	b := root.AddChild(New())
	c := root.AddChild(New())
	require.Len(t, root.Children(), 3)
	assert.Same(t, a, root.Children()[0])
	assert.Same(t, b, root.Children()[1])
	assert.Same(t, c, root.Children()[2])
}

func TestLocalTransformPureTranslation(t *testing.T) {
	n := New()
	n.Position = mgl32.Vec3{3, -2, 5}
	UpdateTransforms(n, mgl32.Ident4())

	assertMat(t, mgl32.Translate3D(3, -2, 5), LocalTransform(n))
	assertMat(t, mgl32.Translate3D(3, -2, 5), n.World())
}

func TestLocalTransformRotationOrder(t *testing.T) {
	const rx, ry, rz = 0.3, 1.1, -0.7

	tests := []struct {
		name     string
		rotation mgl32.Vec3
		want     mgl32.Mat4
	}{
		{"x only", mgl32.Vec3{rx, 0, 0}, mgl32.HomogRotate3DX(rx)},
		{"y only", mgl32.Vec3{0, ry, 0}, mgl32.HomogRotate3DY(ry)},
		{"x then y then z", mgl32.Vec3{rx, ry, rz},
			mgl32.HomogRotate3DX(rx).Mul4(mgl32.HomogRotate3DY(ry)).Mul4(mgl32.HomogRotate3DZ(rz))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New()
			n.Position = mgl32.Vec3{1, 2, 3}
			n.Rotation = tt.rotation
			assertMat(t, mgl32.Translate3D(1, 2, 3).Mul4(tt.want), LocalTransform(n))
		})
	}

	// Reversed order must give a different matrix.
	n := New()
	n.Rotation = mgl32.Vec3{rx, ry, rz}
	reversed := mgl32.HomogRotate3DZ(rz).Mul4(mgl32.HomogRotate3DY(ry)).Mul4(mgl32.HomogRotate3DX(rx))
	assert.False(t, reversed.ApproxEqualThreshold(LocalTransform(n), epsilon))
}

func TestReferencePointPivot(t *testing.T) {
	n := New()
	n.ReferencePoint = mgl32.Vec3{1, 0, 0}
	n.Rotation = mgl32.Vec3{0, math.Pi, 0}
	UpdateTransforms(n, mgl32.Ident4())

	world := n.World()
	assertVec(t, mgl32.Vec3{1, 0, 0}, mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, world))

	const d = 2
	assertVec(t, mgl32.Vec3{1 - d, 0, 0}, mgl32.TransformCoordinate(mgl32.Vec3{1 + d, 0, 0}, world))
}

func TestWorldTransformChain(t *testing.T) {
	root := New()
	root.Position = mgl32.Vec3{10, 0, 0}
	root.Rotation = mgl32.Vec3{0, 0.5, 0}

	child := root.AddChild(New())
	child.Position = mgl32.Vec3{0, 4, 0}
	child.Rotation = mgl32.Vec3{0.25, 0, 0}
	child.ReferencePoint = mgl32.Vec3{0, 1, 0}

	grandchild := child.AddChild(FromMesh(1, 3))
	grandchild.Position = mgl32.Vec3{0, 0, -6}
	grandchild.Rotation = mgl32.Vec3{0, 0, 1.2}
	grandchild.ReferencePoint = mgl32.Vec3{2, 0, 1}

	parent := mgl32.Translate3D(0, 0, -50)
	UpdateTransforms(root, parent)

	assertMat(t, parent.Mul4(LocalTransform(root)), root.World())
	assertMat(t, root.World().Mul4(LocalTransform(child)), child.World())
	assertMat(t, child.World().Mul4(LocalTransform(grandchild)), grandchild.World())
	assertMat(t,
		parent.Mul4(LocalTransform(root)).Mul4(LocalTransform(child)).Mul4(LocalTransform(grandchild)),
		grandchild.World())
}

func TestUpdateTransformsFollowsMutation(t *testing.T) {
	root := New()
	child := root.AddChild(New())
	child.Position = mgl32.Vec3{1, 0, 0}

	UpdateTransforms(root, mgl32.Ident4())
	assertVec(t, mgl32.Vec3{1, 0, 0}, mgl32.TransformCoordinate(mgl32.Vec3{}, child.World()))

	root.Position = mgl32.Vec3{0, 0, 5}
	UpdateTransforms(root, mgl32.Ident4())
	assertVec(t, mgl32.Vec3{1, 0, 5}, mgl32.TransformCoordinate(mgl32.Vec3{}, child.World()))
}

func TestDrawSkipsNonDrawable(t *testing.T) {
	root := New()
	group := root.AddChild(New())
	body := group.AddChild(FromMesh(2, 30))
	body.AddChild(FromMesh(3, 12))
	group.AddChild(FromMesh(4, 0))
	root.AddChild(FromMesh(5, 6))

	UpdateTransforms(root, mgl32.Ident4())

	sink := &countingSink{}
	Draw(root, mgl32.Ident4(), sink)

	require.Len(t, sink.calls, 3)
	assert.Equal(t, uint32(2), sink.calls[0].vao)
	assert.Equal(t, int32(30), sink.calls[0].indexCount)
	assert.Equal(t, uint32(3), sink.calls[1].vao)
	assert.Equal(t, uint32(5), sink.calls[2].vao)
}

func TestDrawMatrices(t *testing.T) {
	root := New()
	root.Position = mgl32.Vec3{0, 0, -3}
	mesh := root.AddChild(FromMesh(9, 3))
	mesh.Rotation = mgl32.Vec3{0, 0.4, 0}

	UpdateTransforms(root, mgl32.Ident4())

	viewProjection := mgl32.Perspective(1, 1, 1, 100)
	sink := &countingSink{}
	Draw(root, viewProjection, sink)

	require.Len(t, sink.calls, 1)
	assertMat(t, mesh.World(), sink.calls[0].model)
	assertMat(t, viewProjection.Mul4(mesh.World()), sink.calls[0].mvp)
}

func TestGrandchildTranslation(t *testing.T) {
	root := New()
	a := root.AddChild(New())
	a.Position = mgl32.Vec3{1, 0, 0}
	b := a.AddChild(FromMesh(1, 3))
	b.Position = mgl32.Vec3{0, 1, 0}

	UpdateTransforms(root, mgl32.Ident4())

	assertMat(t, mgl32.Translate3D(1, 1, 0), b.World())
	assertVec(t, mgl32.Vec3{1, 1, 0}, mgl32.TransformCoordinate(mgl32.Vec3{}, b.World()))
	assertVec(t, mgl32.Vec3{3, 2, -4}, mgl32.TransformCoordinate(mgl32.Vec3{2, 1, -4}, b.World()))
}

func TestCount(t *testing.T) {
	root := New()
	body := root.AddChild(FromMesh(1, 6))
	body.AddChild(FromMesh(2, 6))
	body.AddChild(New())

	nodes, drawables := Count(root)
	assert.Equal(t, 4, nodes)
	assert.Equal(t, 2, drawables)
}

func TestFprint(t *testing.T) {
	root := New()
	root.Name = "helicopter"
	body := root.AddChild(FromMesh(3, 42))
	body.Name = "body"
	body.AddChild(New())

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, root))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[0]), "helicopter [-]")
	assert.Contains(t, string(lines[1]), "  body [vao=3 indices=42]")
	assert.Contains(t, string(lines[2]), "    <unnamed> [-]")
}
