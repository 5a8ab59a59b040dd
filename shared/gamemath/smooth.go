package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// SmoothDampVec2 is the vector form of mathutil.SmoothDamp. The overshoot
// guard is done on the whole vector so both components settle together.
func SmoothDampVec2(current, target, velocity mgl64.Vec2, smoothTime, dt float64) (mgl64.Vec2, mgl64.Vec2) {
	if dt <= 0 {
		return current, velocity
	}
	smoothTime = math.Max(0.0001, smoothTime)
	omega := 2 / smoothTime
	x := omega * dt
	decay := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current.Sub(target)
	temp := velocity.Add(change.Mul(omega)).Mul(dt)
	velocity = velocity.Sub(temp.Mul(omega)).Mul(decay)
	out := target.Add(change.Add(temp).Mul(decay))

	if target.Sub(current).Dot(out.Sub(target)) > 0 {
		out = target
		velocity = mgl64.Vec2{}
	}
	return out, velocity
}
