package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Hit is the result of a cast.
type Hit struct {
	Point    mgl64.Vec3 // closest point on the hit solid
	Distance float64    // travel along the cast direction
	Solid    *Solid
}

// OverlapSphere reports whether a sphere touches any matching solid.
func (w *World) OverlapSphere(center mgl64.Vec3, radius float64, mask Layer, triggers Triggers) bool {
	r := mgl64.Vec3{radius, radius, radius}
	for _, s := range w.candidates(center.Sub(r), center.Add(r)) {
		if !s.matches(mask, triggers) {
			continue
		}
		p := closestPoint(center, s.Min, s.Max)
		if d := p.Sub(center); d.Dot(d) <= radius*radius {
			return true
		}
	}
	return false
}

// Raycast is a SphereCast with zero radius.
func (w *World) Raycast(origin, dir mgl64.Vec3, maxDistance float64, mask Layer, triggers Triggers) (Hit, bool) {
	return w.SphereCast(origin, dir, 0, maxDistance, mask, triggers)
}

// SphereCast sweeps a sphere from origin along dir and returns the nearest
// matching solid within maxDistance. Solids already overlapping the start
// are ignored.
func (w *World) SphereCast(origin, dir mgl64.Vec3, radius, maxDistance float64, mask Layer, triggers Triggers) (Hit, bool) {
	l := dir.Len()
	if l < 1e-9 || maxDistance <= 0 {
		return Hit{}, false
	}
	dir = dir.Mul(1 / l)
	end := origin.Add(dir.Mul(maxDistance))
	r := mgl64.Vec3{radius, radius, radius}
	lo := minVec(origin, end).Sub(r)
	hi := maxVec(origin, end).Add(r)

	var best Hit
	found := false
	for _, s := range w.candidates(lo, hi) {
		if !s.matches(mask, triggers) {
			continue
		}
		t, ok := rayBox(origin, dir, s.Min.Sub(r), s.Max.Add(r))
		if !ok || t > maxDistance || (found && t >= best.Distance) {
			continue
		}
		center := origin.Add(dir.Mul(t))
		best = Hit{Point: closestPoint(center, s.Min, s.Max), Distance: t, Solid: s}
		found = true
	}
	return best, found
}

// rayBox is the slab test. It fails when the origin is inside the box.
func rayBox(origin, dir, min, max mgl64.Vec3) (float64, bool) {
	tmin, tmax := math.Inf(-1), math.Inf(1)
	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < 1e-12 {
			if origin[i] < min[i] || origin[i] > max[i] {
				return 0, false
			}
			continue
		}
		t1 := (min[i] - origin[i]) / dir[i]
		t2 := (max[i] - origin[i]) / dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmin < 0 {
		return 0, false
	}
	return tmin, true
}

func closestPoint(p, min, max mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		math.Max(min[0], math.Min(p[0], max[0])),
		math.Max(min[1], math.Min(p[1], max[1])),
		math.Max(min[2], math.Min(p[2], max[2])),
	}
}
