package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Axes of the simulation frame: Y up, +Z forward and +X right at yaw 0.
var (
	Up      = mgl64.Vec3{0, 1, 0}
	Forward = mgl64.Vec3{0, 0, 1}
	Right   = mgl64.Vec3{1, 0, 0}
)

// Euler builds the rotation for pitch then yaw in degrees, roll zero.
// Positive pitch looks down.
func Euler(pitch, yaw float64) mgl64.Quat {
	qy := mgl64.QuatRotate(mgl64.DegToRad(yaw), Up)
	qx := mgl64.QuatRotate(mgl64.DegToRad(pitch), Right)
	return qy.Mul(qx).Normalize()
}

// LookRotation returns the roll-free rotation whose forward axis is dir.
// A zero dir yields the identity.
func LookRotation(dir mgl64.Vec3) mgl64.Quat {
	pitch, yaw, ok := Angles(dir)
	if !ok {
		return mgl64.QuatIdent()
	}
	return Euler(pitch, yaw)
}

// Angles decomposes a direction into pitch and yaw in degrees.
func Angles(dir mgl64.Vec3) (pitch, yaw float64, ok bool) {
	if dir.Dot(dir) < 1e-12 {
		return 0, 0, false
	}
	planar := math.Hypot(dir.X(), dir.Z())
	yaw = mgl64.RadToDeg(math.Atan2(dir.X(), dir.Z()))
	pitch = mgl64.RadToDeg(math.Atan2(-dir.Y(), planar))
	return pitch, yaw, true
}

// ForwardOf returns the rotated forward axis.
func ForwardOf(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(Forward)
}

// RightOf returns the rotated right axis.
func RightOf(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(Right)
}

// YawOf returns the heading of q in degrees.
func YawOf(q mgl64.Quat) float64 {
	f := ForwardOf(q)
	return mgl64.RadToDeg(math.Atan2(f.X(), f.Z()))
}

// Slerp interpolates along the shorter arc.
func Slerp(from, to mgl64.Quat, t float64) mgl64.Quat {
	if from.Dot(to) < 0 {
		to = to.Scale(-1)
	}
	return mgl64.QuatSlerp(from, to, t).Normalize()
}
