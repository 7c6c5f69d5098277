package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/gloom/internal/app"
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
	cfg.Window.Title = app.Title(cfg, "triangles (keys 1-4)")

	// run gameloop
	if err := app.Run(cfg, &triangles{}); err != nil {
		log.Fatalln(err)
	}

}

var (
	white  = mgl32.Vec4{1, 1, 1, 1}
	orange = mgl32.Vec4{1, 0.55, 0.1, 1}
	teal   = mgl32.Vec4{0.1, 0.7, 0.7, 1}
	violet = mgl32.Vec4{0.6, 0.3, 0.9, 1}
)

// the four shapes, in normalized device coordinates
//
//	1: pinwheel, every second wedge of a 12 wedge disc
//	2: a triangle poking through the near and far clip planes
//	3: a counter-clockwise triangle (turn it clockwise and culling hides it)
//	4: a right triangle in the top-left half of the screen
func shapes() []mesh.Mesh {
	return []mesh.Mesh{
		mesh.Fan(mgl32.Vec3{0, 0, 0}, 0.5, 12, true, white),
		mesh.Triangle(mgl32.Vec3{0.6, -0.8, -1.2}, mgl32.Vec3{0, 0.4, 0}, mgl32.Vec3{-0.8, -0.2, 1.2}, orange),
		mesh.Triangle(mgl32.Vec3{0, 0.8, 0}, mgl32.Vec3{-0.8, -0.8, 0}, mgl32.Vec3{0.8, -0.8, 0}, teal),
		mesh.Triangle(mgl32.Vec3{-0.8, 0.8, 0}, mgl32.Vec3{-0.8, -0.8, 0}, mgl32.Vec3{0.8, -0.8, 0}, violet),
	}
}

var selectKeys = []glfw.Key{glfw.Key1, glfw.Key2, glfw.Key3, glfw.Key4}

type triangles struct {
	renderer *glutil.Renderer
	nodes    []*scenegraph.Node
	selected int
}

func (s *triangles) Load(cfg config.Config) error {

	// create shader program
	s.renderer = glutil.NewRenderer(glutil.MustProgram(glutil.FlatVertexShader, glutil.FlatFragmentShader))

	// upload every shape into its own VAO
	for i, m := range shapes() {
		if err := m.Validate(); err != nil {
			return err
		}
		h := glutil.Upload(m)
		n := scenegraph.FromMesh(h.VAO, h.IndexCount)
		scenegraph.UpdateTransforms(n, mgl32.Ident4())
		s.nodes = append(s.nodes, n)
		log.Printf("shape %d: vao %d, %d triangles", i+1, h.VAO, m.TriangleCount())
	}

	s.selected = 2
	return nil

}

func (s *triangles) Frame(f app.Frame) {

	// keyboard
	for _, key := range f.Keys {
		for i, k := range selectKeys {
			if key == k {
				s.selected = i
			}
		}
	}

	// the shapes are already in clip space
	s.renderer.Begin()
	scenegraph.Draw(s.nodes[s.selected], mgl32.Ident4(), s.renderer)
	s.renderer.End()

}
