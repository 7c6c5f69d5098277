package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Mesh names looked up in a helicopter asset.
const (
	PartBody      = "body"
	PartDoor      = "door"
	PartMainRotor = "main_rotor"
	PartTailRotor = "tail_rotor"
)

// TailRotorHub is where the tail rotor is mounted, in helicopter space.
// The tail rotor spins about the x axis through this point.
var TailRotorHub = mgl32.Vec3{0.35, 2.3, 10.4}

// Parts are the separately animated pieces of a helicopter.
type Parts struct {
	Body      Mesh
	Door      Mesh
	MainRotor Mesh
	TailRotor Mesh
}

var (
	hullColor  = mgl32.Vec4{0.20, 0.32, 0.22, 1}
	glassColor = mgl32.Vec4{0.55, 0.70, 0.85, 1}
	skidColor  = mgl32.Vec4{0.15, 0.15, 0.15, 1}
	bladeColor = mgl32.Vec4{0.10, 0.10, 0.10, 1}
	doorColor  = mgl32.Vec4{0.26, 0.40, 0.28, 1}
)

// Helicopter builds a blocky helicopter out of boxes. The nose points to
// -z, the tail to +z, the main rotor mast stands on the y axis.
func Helicopter() Parts {
	body := Merge(
		Box(mgl32.Vec3{2.0, 2.2, 4.6}, mgl32.Vec3{0, 1.7, 0}, hullColor),     // cabin
		Box(mgl32.Vec3{1.6, 1.2, 1.0}, mgl32.Vec3{0, 2.0, -2.7}, glassColor), // canopy
		Box(mgl32.Vec3{0.5, 0.5, 8.0}, mgl32.Vec3{0, 2.3, 6.2}, hullColor),   // tail boom
		Box(mgl32.Vec3{0.2, 1.6, 0.8}, mgl32.Vec3{0, 2.9, 10.2}, hullColor),  // fin
		Box(mgl32.Vec3{0.3, 0.6, 0.3}, mgl32.Vec3{0, 3.1, 0}, hullColor),     // mast
		Box(mgl32.Vec3{0.15, 0.15, 5.0}, mgl32.Vec3{-1.0, 0.1, 0}, skidColor),
		Box(mgl32.Vec3{0.15, 0.15, 5.0}, mgl32.Vec3{1.0, 0.1, 0}, skidColor),
	)

	door := Box(mgl32.Vec3{0.1, 1.6, 1.6}, mgl32.Vec3{1.05, 1.8, 0.2}, doorColor)

	mainRotor := Merge(
		Box(mgl32.Vec3{12.0, 0.06, 0.5}, mgl32.Vec3{0, 3.45, 0}, bladeColor),
		Box(mgl32.Vec3{0.5, 0.06, 12.0}, mgl32.Vec3{0, 3.45, 0}, bladeColor),
	)

	hub := TailRotorHub
	tailRotor := Merge(
		Box(mgl32.Vec3{0.05, 2.2, 0.25}, hub, bladeColor),
		Box(mgl32.Vec3{0.05, 0.25, 2.2}, hub, bladeColor),
	)

	return Parts{Body: body, Door: door, MainRotor: mainRotor, TailRotor: tailRotor}
}

// PartsFromMeshes picks the helicopter parts out of a named mesh set,
// typically the result of LoadGLTF.
func PartsFromMeshes(meshes map[string]Mesh) (Parts, error) {
	var p Parts
	for name, dst := range map[string]*Mesh{
		PartBody:      &p.Body,
		PartDoor:      &p.Door,
		PartMainRotor: &p.MainRotor,
		PartTailRotor: &p.TailRotor,
	} {
		m, ok := meshes[name]
		if !ok {
			return Parts{}, errors.Errorf("helicopter: mesh %q missing", name)
		}
		*dst = m
	}
	return p, nil
}
