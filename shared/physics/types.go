package physics

import "github.com/go-gl/mathgl/mgl64"

// Layer is a bitmask of collision layers.
type Layer uint32

const (
	LayerDefault Layer = 1 << iota
	LayerGround
	LayerPlayer
	LayerInteractable

	// AllLayers matches every layer.
	AllLayers Layer = ^Layer(0)
)

// Triggers selects whether trigger volumes take part in a query.
type Triggers uint8

const (
	IgnoreTriggers Triggers = iota
	CollideTriggers
)

// ParseTriggers maps a config string onto a Triggers policy.
func ParseTriggers(s string) (Triggers, bool) {
	switch s {
	case "", "ignore":
		return IgnoreTriggers, true
	case "collide":
		return CollideTriggers, true
	}
	return IgnoreTriggers, false
}

// Touched reports which sides of a body hit geometry during a move.
type Touched struct {
	Below bool
	Above bool
	Sides bool
}

// Merge ORs two reports.
func (t Touched) Merge(o Touched) Touched {
	return Touched{Below: t.Below || o.Below, Above: t.Above || o.Above, Sides: t.Sides || o.Sides}
}

// Bounds is an axis-aligned box.
type Bounds struct {
	Center, Min, Max mgl64.Vec3
}

// BoundsOf builds Bounds from its corners.
func BoundsOf(min, max mgl64.Vec3) Bounds {
	return Bounds{Center: min.Add(max).Mul(0.5), Min: min, Max: max}
}

// Intersects reports whether two boxes overlap with positive volume.
func (b Bounds) Intersects(o Bounds) bool {
	for i := 0; i < 3; i++ {
		if b.Min[i] >= o.Max[i] || b.Max[i] <= o.Min[i] {
			return false
		}
	}
	return true
}
