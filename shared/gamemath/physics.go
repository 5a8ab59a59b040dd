package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// JumpVelocity returns the launch speed that peaks at height under a
// constant gravity. gravity must be negative.
func JumpVelocity(height, gravity float64) float64 {
	if height <= 0 || gravity >= 0 {
		return 0
	}
	return math.Sqrt(2 * height * -gravity)
}

// ClampMagnitude scales v down to max length when it is longer.
func ClampMagnitude(v mgl64.Vec2, max float64) mgl64.Vec2 {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Mul(max / l)
}

// Flatten strips the vertical component and renormalises. A vector with no
// planar extent flattens to zero.
func Flatten(v mgl64.Vec3) mgl64.Vec3 {
	p := mgl64.Vec3{v.X(), 0, v.Z()}
	l := p.Len()
	if l < 1e-9 {
		return mgl64.Vec3{}
	}
	return p.Mul(1 / l)
}

// PlanarDirection weights the flattened view basis by the (x=strafe,
// y=forward) input axis.
func PlanarDirection(forward, right mgl64.Vec3, axis mgl64.Vec2) mgl64.Vec3 {
	return Flatten(forward).Mul(axis.Y()).Add(Flatten(right).Mul(axis.X()))
}

// BlendSpeed is the animator speed: input magnitude, halved unless running.
func BlendSpeed(magnitude float64, sprint bool) float64 {
	if sprint && magnitude > 0 {
		return magnitude
	}
	return magnitude * 0.5
}
