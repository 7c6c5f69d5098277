// Package heli assembles a helicopter subtree and poses it over time.
package heli

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/gloom/internal/animation"
	"github.com/paperboard/gloom/internal/mesh"
	"github.com/paperboard/gloom/internal/scenegraph"
)

const (
	mainRotorRPS = 2.5
	tailRotorRPS = 4.0
	doorTravel   = 1.8 // how far the open door slides back
)

// Mesh is an uploaded mesh as the scene graph needs it.
type Mesh struct {
	VAO        uint32
	IndexCount int32
}

// Handles are the uploaded meshes of the four helicopter parts.
type Handles struct {
	Body      Mesh
	Door      Mesh
	MainRotor Mesh
	TailRotor Mesh
}

// Helicopter is a subtree of the scene graph:
//
//	Root (no mesh, carries the flight pose)
//	 `-- Body
//	      |-- Door
//	      |-- MainRotor (spins about y)
//	      `-- TailRotor (spins about x through mesh.TailRotorHub)
type Helicopter struct {
	Root      *scenegraph.Node
	Body      *scenegraph.Node
	Door      *scenegraph.Node
	MainRotor *scenegraph.Node
	TailRotor *scenegraph.Node

	doorOpen bool
}

// New builds the subtree. Attach h.Root to the scene.
func New(name string, parts Handles) *Helicopter {
	h := &Helicopter{Root: scenegraph.New()}
	h.Root.Name = name

	h.Body = h.Root.AddChild(node(name+"/body", parts.Body))
	h.Door = h.Body.AddChild(node(name+"/door", parts.Door))
	h.MainRotor = h.Body.AddChild(node(name+"/main rotor", parts.MainRotor))
	h.TailRotor = h.Body.AddChild(node(name+"/tail rotor", parts.TailRotor))
	h.TailRotor.ReferencePoint = mesh.TailRotorHub

	return h
}

func node(name string, m Mesh) *scenegraph.Node {
	n := scenegraph.FromMesh(m.VAO, m.IndexCount)
	n.Name = name
	return n
}

// Animate poses the helicopter for elapsed time t. offset shifts it along
// the flight path so several helicopters do not overlap, altitude lifts it
// above the ground.
func (h *Helicopter) Animate(t, offset, altitude float32) {
	heading := animation.SimpleHeading(t + offset)

	h.Root.Position = mgl32.Vec3{heading.X, altitude, heading.Z}
	h.Root.Rotation = mgl32.Vec3{heading.Pitch, heading.Yaw, heading.Roll}

	h.MainRotor.Rotation = mgl32.Vec3{0, animation.RotorAngle(t, mainRotorRPS), 0}
	h.TailRotor.Rotation = mgl32.Vec3{animation.RotorAngle(t, tailRotorRPS), 0, 0}
}

// SetDoorOpen slides the door back along the hull, or closes it.
func (h *Helicopter) SetDoorOpen(open bool) {
	h.doorOpen = open
	if open {
		h.Door.Position = mgl32.Vec3{0, 0, doorTravel}
	} else {
		h.Door.Position = mgl32.Vec3{}
	}
}

// DoorOpen reports the door state.
func (h *Helicopter) DoorOpen() bool {
	return h.doorOpen
}
