package locomotion

import (
	"github.com/automoto/thirdperson/shared/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// Mover is a collision-aware translator for the character body.
type Mover interface {
	Move(delta mgl64.Vec3) physics.Touched
	Bounds() physics.Bounds
	// GroundedHint is the mover's own grounded flag. It reflects the last
	// vertical move and may lag a physics step behind.
	GroundedHint() bool
}

// ShapeQuery answers overlap queries against the world.
type ShapeQuery interface {
	OverlapSphere(center mgl64.Vec3, radius float64, mask physics.Layer, triggers physics.Triggers) bool
}

// AnimatorSink receives animation parameters. Implementations own the
// damping of float parameters.
type AnimatorSink interface {
	SetFloat(name string, value, damp, dt float64)
	SetBool(name string, value bool)
	ResetTrigger(name string)
	SetTrigger(name string)
}

// View supplies the basis movement input is expressed in.
type View interface {
	Forward() mgl64.Vec3
	Right() mgl64.Vec3
}
