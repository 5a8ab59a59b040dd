package locomotion

import (
	"github.com/automoto/thirdperson/shared/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// GroundProbe answers whether a body with the given bounds stands on
// walkable ground. Implementations must be free of side effects.
type GroundProbe interface {
	Grounded(b physics.Bounds) bool
}

// SphereProbe tests a small sphere just under the feet, independent of the
// mover's lagged flag.
type SphereProbe struct {
	Query  ShapeQuery
	Offset float64 // distance of the sphere centre below the feet
	Radius float64
	Mask   physics.Layer
}

// Grounded implements GroundProbe.
func (p SphereProbe) Grounded(b physics.Bounds) bool {
	if p.Query == nil {
		return false
	}
	center := mgl64.Vec3{b.Center.X(), b.Min.Y() - p.Offset, b.Center.Z()}
	return p.Query.OverlapSphere(center, p.Radius, p.Mask, physics.IgnoreTriggers)
}

// MoverProbe trusts the mover's own grounded flag.
type MoverProbe struct {
	Mover Mover
}

// Grounded implements GroundProbe.
func (p MoverProbe) Grounded(physics.Bounds) bool {
	return p.Mover != nil && p.Mover.GroundedHint()
}

// GroundMode selects how the probe and the mover's report are combined.
type GroundMode uint8

const (
	// GroundEither is grounded when the probe or the mover says so.
	GroundEither GroundMode = iota
	// GroundProbeOnly uses the probe alone.
	GroundProbeOnly
	// GroundMoverOnly uses the mover's touched-below report alone.
	GroundMoverOnly
)

// ParseGroundMode maps a config string onto a GroundMode.
func ParseGroundMode(s string) (GroundMode, bool) {
	switch s {
	case "", "either":
		return GroundEither, true
	case "probe":
		return GroundProbeOnly, true
	case "mover":
		return GroundMoverOnly, true
	}
	return GroundEither, false
}

func (m GroundMode) String() string {
	switch m {
	case GroundProbeOnly:
		return "probe"
	case GroundMoverOnly:
		return "mover"
	default:
		return "either"
	}
}
