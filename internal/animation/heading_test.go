package animation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleHeadingStart(t *testing.T) {
	h := SimpleHeading(0)
	assert.InDelta(t, 0, h.X, 1e-6)
	assert.InDelta(t, 45, h.Z, 1e-5)
	assert.InDelta(t, 0.5, h.Roll, 1e-6)
	assert.Less(t, h.Pitch, float32(0))
}

func TestSimpleHeadingIsPeriodic(t *testing.T) {
	for _, start := range []float32{0, 1.3, 4.2} {
		a := SimpleHeading(start)
		b := SimpleHeading(start + Period)
		assert.InDelta(t, a.X, b.X, 1e-3)
		assert.InDelta(t, a.Z, b.Z, 1e-3)
		assert.InDelta(t, a.Roll, b.Roll, 1e-3)
		assert.InDelta(t, a.Pitch, b.Pitch, 1e-3)
	}
}

func TestSimpleHeadingFacesAlongPath(t *testing.T) {
	const dt = 0.01
	for _, start := range []float32{0.5, 2, 3.7} {
		h := SimpleHeading(start)
		next := SimpleHeading(start + dt)

		// The nose points down -z; rotating it by yaw about y gives the
		// direction of travel.
		s, c := math.Sincos(float64(h.Yaw))
		nose := [2]float64{-s, -c}
		travel := [2]float64{float64(next.X - h.X), float64(next.Z - h.Z)}
		length := math.Hypot(travel[0], travel[1])

		cos := (nose[0]*travel[0] + nose[1]*travel[1]) / length
		assert.Greater(t, cos, 0.99, "t=%v", start)
	}
}

func TestRotorAngle(t *testing.T) {
	assert.InDelta(t, 0, RotorAngle(0, 3), 1e-6)
	assert.InDelta(t, math.Pi, RotorAngle(0.5, 1), 1e-5)
	assert.InDelta(t, math.Pi/2, RotorAngle(1.25, 1), 1e-5)

	for _, tt := range []float32{-3.3, 0.1, 17, 1000.1} {
		a := RotorAngle(tt, 2.5)
		assert.GreaterOrEqual(t, a, float32(0))
		assert.Less(t, a, float32(2*math.Pi))
	}
}
