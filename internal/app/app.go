// Package app runs an exercise: a window, a render thread and the event
// loop feeding it keys.
//
//	main thread                 render thread               watchdog
//	-----------                 -------------               --------
//	glfw.Init, CreateWindow
//	key callback -> Keys  ----> TrySnapshot once a frame
//	WaitEventsTimeout           Scene.Load, then
//	  until closed or           Scene.Frame + SwapBuffers   waits for the render
//	  watchdog says unhealthy     until the window closes   thread; on failure marks
//	                                                        it unhealthy and wakes
//	                                                        the event loop
package app

import (
	"fmt"
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/paperboard/gloom/internal/config"
	"github.com/paperboard/gloom/internal/glutil"
	"github.com/paperboard/gloom/internal/input"
)

// Frame is what a scene gets every frame.
type Frame struct {
	Elapsed float32 // seconds since the first frame
	Delta   float32 // seconds since the previous frame

	// keys held this frame, nil when the key list was busy
	Keys []glfw.Key
}

// Scene is one exercise. Both methods run on the render thread with the
// OpenGL context current.
type Scene interface {
	Load(cfg config.Config) error
	Frame(f Frame)
}

// Run opens the window and blocks until it is closed or the render
// thread fails. It must be called from the main goroutine with the OS
// thread locked.
func Run(cfg config.Config, scene Scene) error {

	// initalize glfw
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize glfw")
	}
	defer glfw.Terminate()

	// use OpenGL v4.3 core with debug output
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)

	// create window handle
	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create window")
	}
	defer window.Destroy()

	keys := input.NewKeys[glfw.Key]()
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			keys.Press(key)
		case glfw.Release:
			keys.Release(key)
		}
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	dog := newWatchdog(glfw.PostEmptyEvent)
	done := make(chan error, 1)
	go func() {
		done <- render(window, cfg, scene, keys)
	}()
	result := make(chan error, 1)
	go func() {
		result <- dog.watch(done)
	}()

	// event loop
	for !window.ShouldClose() && dog.healthy() {
		glfw.WaitEventsTimeout(0.25)
	}

	// stop the render thread if it is still going
	window.SetShouldClose(true)
	return <-result
}

// render owns the OpenGL context for its whole life.
func render(window *glfw.Window, cfg config.Config, scene Scene, keys *input.Keys[glfw.Key]) (err error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("render thread panicked: %v", r)
		}
	}()

	window.MakeContextCurrent()
	defer glfw.DetachCurrentContext()

	// initialize OpenGL
	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize OpenGL")
	}
	log.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	glutil.EnableDebugOutput()
	glutil.Setup()

	if err := scene.Load(cfg); err != nil {
		return errors.Wrap(err, "failed to load scene")
	}

	clock := newClock(time.Now())
	for !window.ShouldClose() {
		elapsed, delta := clock.tick(time.Now())

		// a busy key list costs this frame its input
		held, _ := keys.TrySnapshot()

		scene.Frame(Frame{Elapsed: elapsed, Delta: delta, Keys: held})

		if cfg.Debug.GLErrors {
			if err := glutil.CheckError(); err != nil {
				return err
			}
		}

		// blocks until the next refresh with vsync on
		window.SwapBuffers()
	}
	return nil
}

type clock struct {
	first, last time.Time
}

func newClock(now time.Time) *clock {
	return &clock{first: now, last: now}
}

func (c *clock) tick(now time.Time) (elapsed, delta float32) {
	elapsed = float32(now.Sub(c.first).Seconds())
	delta = float32(now.Sub(c.last).Seconds())
	c.last = now
	return elapsed, delta
}

// watchdog keeps track of the render thread health.
type watchdog struct {
	mu   sync.RWMutex
	ok   bool
	wake func()
}

func newWatchdog(wake func()) *watchdog {
	return &watchdog{ok: true, wake: wake}
}

func (w *watchdog) healthy() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.ok
}

// watch waits for the render thread result. A failure flips the health
// flag and wakes the event loop so it can exit.
func (w *watchdog) watch(done <-chan error) error {
	err := <-done
	if err != nil {
		log.Println("Render thread failed:", err)
		w.mu.Lock()
		w.ok = false
		w.mu.Unlock()
		w.wake()
	}
	return err
}

// Title formats a window title with the exercise name.
func Title(cfg config.Config, exercise string) string {
	return fmt.Sprintf("%s - %s", cfg.Window.Title, exercise)
}
