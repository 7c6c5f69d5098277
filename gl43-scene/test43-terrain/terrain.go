package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/gloom/internal/app"
	"github.com/paperboard/gloom/internal/camera"
	"github.com/paperboard/gloom/internal/config"
	"github.com/paperboard/gloom/internal/glutil"
	"github.com/paperboard/gloom/internal/mesh"
	"github.com/paperboard/gloom/internal/scenegraph"
)

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
	cfg.Window.Title = app.Title(cfg, "terrain")

	// run gameloop
	if err := app.Run(cfg, &terrain{}); err != nil {
		log.Fatalln(err)
	}

}

type terrain struct {
	cfg      config.Config
	cam      *camera.Camera
	renderer *glutil.Renderer
	root     *scenegraph.Node
}

func (s *terrain) Load(cfg config.Config) error {

	s.cfg = cfg

	// create shader program
	s.renderer = glutil.NewRenderer(glutil.MustProgram(glutil.SceneVertexShader, glutil.SceneFragmentShader))

	// load or generate the height field
	m, err := mesh.LoadTerrain(cfg.Scene.TerrainAsset, cfg.Scene.TerrainSize, cfg.Scene.TerrainResolution, cfg.Scene.TerrainAmplitude)
	if err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return err
	}
	log.Printf("terrain: %d vertices, %d triangles", m.VertexCount(), m.TriangleCount())

	h := glutil.Upload(m)
	s.root = scenegraph.FromMesh(h.VAO, h.IndexCount)
	s.root.Name = "terrain"

	// the camera starts above the middle of the map
	s.cam = camera.New(cfg.Camera.Fov, cfg.Aspect(), cfg.Camera.Near, cfg.Camera.Far)
	s.cam.Position = mgl32.Vec3(cfg.Camera.Start)

	return nil

}

func (s *terrain) Frame(f app.Frame) {

	app.Fly(s.cam, f.Keys, f.Delta, s.cfg.Camera.Speed, s.cfg.Camera.TurnSpeed)

	scenegraph.UpdateTransforms(s.root, mgl32.Ident4())

	s.renderer.Begin()
	scenegraph.Draw(s.root, s.cam.ViewProjection(), s.renderer)
	s.renderer.End()

}
