package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const skin = 1e-4

// Body is an upright capsule approximated by its bounding box. Position is
// the centre of the feet.
type Body struct {
	Position mgl64.Vec3
	Radius   float64
	Height   float64
	Mask     Layer // layers that block the body

	world    *World
	grounded bool
}

// NewBody places a body in the world.
func NewBody(w *World, position mgl64.Vec3, radius, height float64) *Body {
	return &Body{Position: position, Radius: radius, Height: height, Mask: AllLayers, world: w}
}

// Bounds returns the body's box.
func (b *Body) Bounds() Bounds {
	return BoundsOf(b.min(b.Position), b.max(b.Position))
}

// GroundedHint reports whether the last move with a vertical component
// ended on something below.
func (b *Body) GroundedHint() bool { return b.grounded }

// Move translates the body by delta, resolving the X, Z and Y axes in
// turn against enabled non-trigger solids.
func (b *Body) Move(delta mgl64.Vec3) Touched {
	var t Touched
	if b.world == nil {
		b.Position = b.Position.Add(delta)
		return t
	}

	end := b.Position.Add(delta)
	lo := minVec(b.min(b.Position), b.min(end))
	hi := maxVec(b.max(b.Position), b.max(end))
	solids := b.world.candidates(lo, hi)

	for _, axis := range [...]int{0, 2, 1} {
		d := delta[axis]
		if d == 0 {
			continue
		}
		allowed, hit := b.sweep(solids, axis, d)
		b.Position[axis] += allowed
		if !hit {
			continue
		}
		switch {
		case axis != 1:
			t.Sides = true
		case d < 0:
			t.Below = true
		default:
			t.Above = true
		}
	}

	if delta.Y() != 0 {
		b.grounded = t.Below
	}
	return t
}

// sweep returns how far the body may travel along axis toward d, and
// whether a solid stopped it.
func (b *Body) sweep(solids []*Solid, axis int, d float64) (float64, bool) {
	bmin, bmax := b.min(b.Position), b.max(b.Position)
	allowed := d
	hit := false
	for _, s := range solids {
		if !s.matches(b.Mask, IgnoreTriggers) {
			continue
		}
		if !overlapsExcept(bmin, bmax, s.Min, s.Max, axis) {
			continue
		}
		if d > 0 {
			gap := s.Min[axis] - bmax[axis]
			if gap >= -skin && gap < allowed {
				allowed = math.Max(gap, 0)
				hit = true
			}
		} else {
			gap := s.Max[axis] - bmin[axis]
			if gap <= skin && gap > allowed {
				allowed = math.Min(gap, 0)
				hit = true
			}
		}
	}
	return allowed, hit
}

func (b *Body) min(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{p.X() - b.Radius, p.Y(), p.Z() - b.Radius}
}

func (b *Body) max(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{p.X() + b.Radius, p.Y() + b.Height, p.Z() + b.Radius}
}

// overlapsExcept tests strict overlap on the two axes other than skip.
func overlapsExcept(amin, amax, bmin, bmax mgl64.Vec3, skip int) bool {
	for i := 0; i < 3; i++ {
		if i == skip {
			continue
		}
		if amin[i] >= bmax[i]-skin || amax[i] <= bmin[i]+skin {
			return false
		}
	}
	return true
}

func minVec(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Min(a[0], b[0]), math.Min(a[1], b[1]), math.Min(a[2], b[2])}
}

func maxVec(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Max(a[0], b[0]), math.Max(a[1], b[1]), math.Max(a[2], b[2])}
}
