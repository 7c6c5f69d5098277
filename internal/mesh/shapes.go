package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// box face
//
//	  -u+v -------- +u+v
//	   |              |
//	   |   normal n   |     u x v = n, so the corners are
//	   |   (to eye)   |     counter-clockwise seen from outside
//	   |              |
//	  -u-v -------- +u-v
type face struct {
	n, u, v mgl32.Vec3
}

var boxFaces = [6]face{
	{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}},  // +x
	{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}}, // -x
	{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}},  // +y
	{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}}, // -y
	{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},  // +z
	{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}}, // -z
}

// Box returns an axis aligned box with flat shaded faces: 4 vertices and
// 2 triangles per face.
//
//	   v6----- v5
//	  /|      /|
//	 v1------v0|
//	 | |     | |
//	 | v7----|-v4
//	 |/      |/
//	 v2------v3
func Box(size, center mgl32.Vec3, color mgl32.Vec4) Mesh {
	half := size.Mul(0.5)
	var m Mesh
	for _, f := range boxFaces {
		// distance from center along each face axis
		hn := absDot(f.n, half)
		hu := f.u.Mul(absDot(f.u, half))
		hv := f.v.Mul(absDot(f.v, half))
		mid := center.Add(f.n.Mul(hn))

		base := uint32(m.VertexCount())
		corners := [4]mgl32.Vec3{
			mid.Sub(hu).Sub(hv),
			mid.Add(hu).Sub(hv),
			mid.Add(hu).Add(hv),
			mid.Sub(hu).Add(hv),
		}
		for _, c := range corners {
			m.Vertices = append(m.Vertices, c[:]...)
			m.Colors = append(m.Colors, color[:]...)
			m.Normals = append(m.Normals, f.n[:]...)
		}
		m.Indices = append(m.Indices,
			base, base+1, base+2, // first triangle
			base, base+2, base+3, // second triangle
		)
	}
	return m
}

func absDot(axis, v mgl32.Vec3) float32 {
	d := axis.Dot(v)
	if d < 0 {
		return -d
	}
	return d
}

// Triangle returns a single triangle a, b, c (counter-clockwise).
func Triangle(a, b, c mgl32.Vec3, color mgl32.Vec4) Mesh {
	n := b.Sub(a).Cross(c.Sub(a)).Normalize()
	var m Mesh
	for _, p := range [3]mgl32.Vec3{a, b, c} {
		m.Vertices = append(m.Vertices, p[:]...)
		m.Colors = append(m.Colors, color[:]...)
		m.Normals = append(m.Normals, n[:]...)
	}
	m.Indices = []uint32{0, 1, 2}
	return m
}

// Fan returns a disc in the z plane made of segments triangles sharing
// the center vertex. Every second wedge is left out when gapped is set,
// which turns the disc into a pinwheel.
func Fan(center mgl32.Vec3, radius float32, segments int, gapped bool, color mgl32.Vec4) Mesh {
	normal := mgl32.Vec3{0, 0, 1}
	var m Mesh
	push := func(p mgl32.Vec3) {
		m.Vertices = append(m.Vertices, p[:]...)
		m.Colors = append(m.Colors, color[:]...)
		m.Normals = append(m.Normals, normal[:]...)
	}

	push(center)
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		push(center.Add(mgl32.Vec3{
			radius * float32(math.Cos(angle)),
			radius * float32(math.Sin(angle)),
			0,
		}))
	}
	step := 1
	if gapped {
		step = 2
	}
	for i := 0; i < segments; i += step {
		next := (i+1)%segments + 1
		m.Indices = append(m.Indices, 0, uint32(i+1), uint32(next))
	}
	return m
}
