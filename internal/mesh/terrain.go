package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	terrainLow  = mgl32.Vec4{0.32, 0.30, 0.28, 1}
	terrainHigh = mgl32.Vec4{0.85, 0.84, 0.80, 1}
)

// Height returns the terrain elevation at x, z for the given amplitude.
// A sum of a few sine waves, so the surface is smooth and repeatable.
func Height(x, z, amplitude float32) float32 {
	fx, fz := float64(x), float64(z)
	h := 0.55*math.Sin(fx*0.045)*math.Cos(fz*0.038) +
		0.30*math.Sin(fx*0.11+fz*0.07) +
		0.15*math.Cos(fx*0.23-fz*0.19)
	return amplitude * float32(h)
}

// Terrain returns a size by size height field centered on the origin,
// split into resolution by resolution cells. Colors go from dark in the
// valleys to bright on the peaks.
//
//	(i,j) ---- (i+1,j)        z
//	  |  \        |           ^
//	  |    \      |           |
//	  |      \    |           +---> x
//	(i,j+1) -- (i+1,j+1)
func Terrain(size float32, resolution int, amplitude float32) Mesh {
	if resolution < 1 {
		resolution = 1
	}
	step := size / float32(resolution)
	start := -size / 2
	row := resolution + 1

	var m Mesh
	m.Vertices = make([]float32, 0, row*row*PositionSize)
	m.Colors = make([]float32, 0, row*row*ColorSize)
	m.Normals = make([]float32, 0, row*row*NormalSize)
	m.Indices = make([]uint32, 0, resolution*resolution*6)

	for j := 0; j < row; j++ {
		for i := 0; i < row; i++ {
			x := start + float32(i)*step
			z := start + float32(j)*step
			y := Height(x, z, amplitude)

			// central differences
			dx := (Height(x+step, z, amplitude) - Height(x-step, z, amplitude)) / (2 * step)
			dz := (Height(x, z+step, amplitude) - Height(x, z-step, amplitude)) / (2 * step)
			n := mgl32.Vec3{-dx, 1, -dz}.Normalize()

			t := float32(0.5)
			if amplitude != 0 {
				t = mgl32.Clamp(0.5+y/(2*amplitude), 0, 1)
			}
			c := terrainLow.Mul(1 - t).Add(terrainHigh.Mul(t))

			m.Vertices = append(m.Vertices, x, y, z)
			m.Colors = append(m.Colors, c[:]...)
			m.Normals = append(m.Normals, n[:]...)
		}
	}

	for j := 0; j < resolution; j++ {
		for i := 0; i < resolution; i++ {
			a := uint32(j*row + i)
			b := uint32((j+1)*row + i)
			c := b + 1
			d := a + 1
			m.Indices = append(m.Indices,
				a, b, c, // facing +y
				a, c, d,
			)
		}
	}
	return m
}

// LoadTerrain reads the terrain from a glTF file, or builds the height
// field when path is empty.
func LoadTerrain(path string, size float32, resolution int, amplitude float32) (Mesh, error) {
	if path == "" {
		return Terrain(size, resolution, amplitude), nil
	}
	return LoadMerged(path)
}
