// Package lookcam turns pointer deltas into camera poses: an orbiting
// follow camera and a directly driven rig.
package lookcam

import (
	"github.com/automoto/thirdperson/mathutil"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// Limits bounds the pitch in degrees.
type Limits struct {
	MinPitch float64
	MaxPitch float64
}

// ViewState is an accumulated yaw and pitch in degrees. Yaw is unbounded so
// smoothing never crosses a wrap.
type ViewState struct {
	Yaw   float64
	Pitch float64
}

// Look accumulates a pointer delta. Moving the pointer up looks up unless
// invertY is set.
func (v *ViewState) Look(delta mgl64.Vec2, sensitivity float64, invertY bool, lim Limits) {
	v.Yaw += delta.X() * sensitivity
	if invertY {
		v.Pitch += delta.Y() * sensitivity
	} else {
		v.Pitch -= delta.Y() * sensitivity
	}
	v.Clamp(lim)
}

// Clamp forces the pitch into the limits.
func (v *ViewState) Clamp(lim Limits) {
	v.Pitch = mathutil.ClampFloat(v.Pitch, lim.MinPitch, lim.MaxPitch)
}

// Rotation returns Euler(pitch, yaw, 0).
func (v ViewState) Rotation() mgl64.Quat {
	return gamemath.Euler(v.Pitch, v.Yaw)
}

// Seed derives a clamped view from an existing rotation.
func Seed(rotation mgl64.Quat, lim Limits) ViewState {
	pitch, yaw, _ := gamemath.Angles(gamemath.ForwardOf(rotation))
	v := ViewState{Yaw: mathutil.WrapAngle(yaw), Pitch: mathutil.WrapAngle(pitch)}
	v.Clamp(lim)
	return v
}

// Pose is a camera transform.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// Forward is the view direction.
func (p Pose) Forward() mgl64.Vec3 { return gamemath.ForwardOf(p.Rotation) }

// Right is the view's right axis.
func (p Pose) Right() mgl64.Vec3 { return gamemath.RightOf(p.Rotation) }

// Origin is the view position; rays through the view centre start here.
func (p Pose) Origin() mgl64.Vec3 { return p.Position }
