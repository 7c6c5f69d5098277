package app

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/paperboard/gloom/internal/camera"
)

// Fly moves cam by the held keys:
//
//	W/S  forward/back     Up/Down     look up/down
//	A/D  left/right       Left/Right  turn left/right
//	Q/E  up/down
//
// speed is in units per second, turn in radians per second.
func Fly(cam *camera.Camera, keys []glfw.Key, dt, speed, turn float32) {
	step := dt * speed
	angle := dt * turn
	for _, key := range keys {
		switch key {
		case glfw.KeyW:
			cam.Move(0, 0, step)
		case glfw.KeyS:
			cam.Move(0, 0, -step)
		case glfw.KeyA:
			cam.Move(-step, 0, 0)
		case glfw.KeyD:
			cam.Move(step, 0, 0)
		case glfw.KeyQ:
			cam.Move(0, step, 0)
		case glfw.KeyE:
			cam.Move(0, -step, 0)
		case glfw.KeyUp:
			cam.Turn(-angle, 0)
		case glfw.KeyDown:
			cam.Turn(angle, 0)
		case glfw.KeyLeft:
			cam.Turn(0, -angle)
		case glfw.KeyRight:
			cam.Turn(0, angle)
		}
	}
}
