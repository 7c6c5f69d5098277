// Package animation turns elapsed time into poses.
package animation

import (
	"math"
)

const (
	pathSize     = 15.0
	circuitSpeed = 0.8
	lookAhead    = 0.05 // seconds between the two samples of the path tangent
)

// Heading is a pose on the ground plane plus the three attitude angles,
// in radians.
type Heading struct {
	X, Z  float32
	Roll  float32 // about z
	Pitch float32 // about x
	Yaw   float32 // about y
}

// Period is the time in seconds for one full circuit of SimpleHeading.
const Period = 2 * math.Pi / circuitSpeed

// SimpleHeading flies a figure eight, 30 units wide and 90 long, nose
// along the path, banking into the turns and pitching down with speed.
func SimpleHeading(t float32) Heading {
	tt := float64(t)

	x := pathSize * math.Sin(2*tt*circuitSpeed)
	xNext := pathSize * math.Sin(2*(tt+lookAhead)*circuitSpeed)
	z := 3 * pathSize * math.Cos(tt*circuitSpeed)
	zNext := 3 * pathSize * math.Cos((tt+lookAhead)*circuitSpeed)

	dx, dz := xNext-x, zNext-z

	return Heading{
		X:     float32(x),
		Z:     float32(z),
		Roll:  float32(math.Cos(tt*circuitSpeed) * 0.5),
		Pitch: float32(-0.175 * math.Hypot(dx, dz)),
		Yaw:   float32(math.Pi + math.Atan2(dx, dz)),
	}
}

// RotorAngle returns the angle in [0, 2π) reached after t seconds by a
// rotor turning rps revolutions per second.
func RotorAngle(t, rps float32) float32 {
	a := math.Mod(2*math.Pi*float64(rps)*float64(t), 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	// rounding to float32 may land exactly on 2π
	if f := float32(a); f < 2*math.Pi {
		return f
	}
	return 0
}
