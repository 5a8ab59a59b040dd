// Package mathutil holds small scalar helpers shared by the simulation and
// the playground. Angles are in degrees unless a name says otherwise.
package mathutil

import "math"

// ClampFloat clamps v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Repeat wraps t into [0, length).
func Repeat(t, length float64) float64 {
	return ClampFloat(t-math.Floor(t/length)*length, 0, length)
}

// WrapAngle maps an angle into [-180, 180).
func WrapAngle(a float64) float64 {
	a = Repeat(a+180, 360) - 180
	if a >= 180 {
		a -= 360
	}
	return a
}

// DeltaAngle returns the shortest signed difference from current to target.
func DeltaAngle(current, target float64) float64 {
	d := Repeat(target-current, 360)
	if d > 180 {
		d -= 360
	}
	return d
}

// MoveTowards moves current toward target by at most maxDelta.
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	return current + math.Copysign(maxDelta, target-current)
}

// MoveTowardsAngle is MoveTowards along the shortest arc between two angles.
func MoveTowardsAngle(current, target, maxDelta float64) float64 {
	delta := DeltaAngle(current, target)
	if -maxDelta < delta && delta < maxDelta {
		return target
	}
	return MoveTowards(current, current+delta, maxDelta)
}

// ExpDecay returns the blend factor for an exponential approach at rate per
// second over dt, so that repeated small steps match one large step.
func ExpDecay(rate, dt float64) float64 {
	if rate <= 0 || dt <= 0 {
		return 0
	}
	return 1 - math.Exp(-rate*dt)
}

// SmoothDamp is a critically damped spring toward target. velocity carries
// state between calls and is returned updated.
func SmoothDamp(current, target, velocity, smoothTime, dt float64) (float64, float64) {
	if dt <= 0 {
		return current, velocity
	}
	smoothTime = math.Max(0.0001, smoothTime)
	omega := 2 / smoothTime
	x := omega * dt
	decay := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	temp := (velocity + omega*change) * dt
	velocity = (velocity - omega*temp) * decay
	out := target + (change+temp)*decay

	// no overshoot
	if (target-current > 0) == (out > target) {
		out = target
		velocity = 0
	}
	return out, velocity
}
