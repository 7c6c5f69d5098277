package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/gloom/internal/app"
	"github.com/paperboard/gloom/internal/camera"
	"github.com/paperboard/gloom/internal/config"
	"github.com/paperboard/gloom/internal/glutil"
	"github.com/paperboard/gloom/internal/heli"
	"github.com/paperboard/gloom/internal/mesh"
	"github.com/paperboard/gloom/internal/scenegraph"
)

// doorKey opens and closes every door.
const doorKey = glfw.KeyO

func init() {
	// glfw must be on main thread
	runtime.LockOSThread()
}

func main() {

	configPath := flag.String("config", config.DefaultPath, "path to the YAML config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalln("failed to load config:", err)
	}
	cfg.Window.Title = app.Title(cfg, "helicopters")

	// run gameloop
	if err := app.Run(cfg, &helicopters{}); err != nil {
		log.Fatalln(err)
	}

}

// scene graph
//
//	terrain
//	 |-- heli 0 -- body -- door, main rotor, tail rotor
//	 |-- heli 1 -- ...
//	 `-- heli N-1
type helicopters struct {
	cfg      config.Config
	cam      *camera.Camera
	renderer *glutil.Renderer
	root     *scenegraph.Node
	fleet    []*heli.Helicopter

	doorHeld bool
}

func (s *helicopters) Load(cfg config.Config) error {

	s.cfg = cfg

	// create shader program
	s.renderer = glutil.NewRenderer(glutil.MustProgram(glutil.SceneVertexShader, glutil.SceneFragmentShader))

	// terrain is the root
	ground, err := mesh.LoadTerrain(cfg.Scene.TerrainAsset, cfg.Scene.TerrainSize, cfg.Scene.TerrainResolution, cfg.Scene.TerrainAmplitude)
	if err != nil {
		return err
	}
	if err := ground.Validate(); err != nil {
		return err
	}
	h := glutil.Upload(ground)
	s.root = scenegraph.FromMesh(h.VAO, h.IndexCount)
	s.root.Name = "terrain"

	// one upload of the parts, shared by every helicopter
	parts, err := loadParts(cfg.Scene.HelicopterAsset)
	if err != nil {
		return err
	}
	handles := heli.Handles{
		Body:      heli.Mesh(glutil.Upload(parts.Body)),
		Door:      heli.Mesh(glutil.Upload(parts.Door)),
		MainRotor: heli.Mesh(glutil.Upload(parts.MainRotor)),
		TailRotor: heli.Mesh(glutil.Upload(parts.TailRotor)),
	}

	for i := 0; i < cfg.Scene.Helicopters; i++ {
		hc := heli.New(fmt.Sprintf("heli %d", i), handles)
		s.root.AddChild(hc.Root)
		s.fleet = append(s.fleet, hc)
	}

	nodes, drawables := scenegraph.Count(s.root)
	log.Printf("scene graph: %d nodes, %d drawable", nodes, drawables)

	if cfg.Debug.PrintGraph {
		if err := scenegraph.Fprint(os.Stdout, s.root); err != nil {
			return err
		}
	}

	s.cam = camera.New(cfg.Camera.Fov, cfg.Aspect(), cfg.Camera.Near, cfg.Camera.Far)
	s.cam.Position = mgl32.Vec3(cfg.Camera.Start)

	return nil

}

func loadParts(path string) (mesh.Parts, error) {
	if path == "" {
		return mesh.Helicopter(), nil
	}
	meshes, err := mesh.LoadGLTF(path)
	if err != nil {
		return mesh.Parts{}, err
	}
	return mesh.PartsFromMeshes(meshes)
}

func (s *helicopters) Frame(f app.Frame) {

	app.Fly(s.cam, f.Keys, f.Delta, s.cfg.Camera.Speed, s.cfg.Camera.TurnSpeed)

	// toggle the doors once per key press; a skipped snapshot leaves
	// the toggle state alone
	if f.Keys != nil {
		held := false
		for _, key := range f.Keys {
			if key == doorKey {
				held = true
			}
		}
		if held && !s.doorHeld {
			for _, hc := range s.fleet {
				hc.SetDoorOpen(!hc.DoorOpen())
			}
		}
		s.doorHeld = held
	}

	// update pass
	for i, hc := range s.fleet {
		hc.Animate(f.Elapsed, float32(i)*s.cfg.Scene.Spacing, s.cfg.Scene.Altitude)
	}
	scenegraph.UpdateTransforms(s.root, mgl32.Ident4())

	// draw pass
	s.renderer.Begin()
	scenegraph.Draw(s.root, s.cam.ViewProjection(), s.renderer)
	s.renderer.End()

}
