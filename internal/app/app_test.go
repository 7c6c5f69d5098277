package app

import (
	"testing"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/paperboard/gloom/internal/camera"
	"github.com/paperboard/gloom/internal/config"
)

func TestClock(t *testing.T) {
	start := time.Unix(100, 0)
	c := newClock(start)

	elapsed, delta := c.tick(start.Add(16 * time.Millisecond))
	assert.InDelta(t, 0.016, elapsed, 1e-6)
	assert.InDelta(t, 0.016, delta, 1e-6)

	elapsed, delta = c.tick(start.Add(50 * time.Millisecond))
	assert.InDelta(t, 0.050, elapsed, 1e-6)
	assert.InDelta(t, 0.034, delta, 1e-6)
}

func TestWatchdogHealthyExit(t *testing.T) {
	woken := 0
	dog := newWatchdog(func() { woken++ })

	done := make(chan error, 1)
	done <- nil
	assert.NoError(t, dog.watch(done))
	assert.True(t, dog.healthy())
	assert.Zero(t, woken)
}

func TestWatchdogFailure(t *testing.T) {
	woken := 0
	dog := newWatchdog(func() { woken++ })

	done := make(chan error, 1)
	boom := errors.New("boom")
	done <- boom
	assert.Equal(t, boom, dog.watch(done))
	assert.False(t, dog.healthy())
	assert.Equal(t, 1, woken)
}

func TestFly(t *testing.T) {
	cam := camera.New(1, 1, 1, 100)

	Fly(cam, []glfw.Key{glfw.KeyW, glfw.KeyQ}, 0.5, 10, 1)
	assert.True(t, mgl32.Vec3{0, 5, -5}.ApproxEqualThreshold(cam.Position, 1e-6), "%v", cam.Position)

	Fly(cam, []glfw.Key{glfw.KeyD, glfw.KeyE}, 0.5, 10, 1)
	assert.True(t, mgl32.Vec3{5, 0, -5}.ApproxEqualThreshold(cam.Position, 1e-6), "%v", cam.Position)

	Fly(cam, []glfw.Key{glfw.KeyRight, glfw.KeyDown}, 0.5, 10, 1)
	assert.InDelta(t, 0.5, cam.Yaw, 1e-6)
	assert.InDelta(t, 0.5, cam.Pitch, 1e-6)

	// unbound keys and an empty frame do nothing
	before := *cam
	Fly(cam, []glfw.Key{glfw.KeyZ}, 0.5, 10, 1)
	Fly(cam, nil, 0.5, 10, 1)
	assert.Equal(t, before, *cam)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Gloom - terrain", Title(config.Default(), "terrain"))
}
