// Package locomotion is the per-frame character controller: planar movement
// relative to a view, facing, grounding and the vertical motion model, with
// results published to an animator.
package locomotion

import (
	"github.com/automoto/thirdperson/mathutil"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/automoto/thirdperson/shared/motion"
	"github.com/automoto/thirdperson/shared/physics"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// Config tunes a Controller.
type Config struct {
	WalkSpeed  float64
	RunSpeed   float64
	TurnRate   float64 // exponential turn-toward rate, 1/s
	GroundMode GroundMode

	SpeedParam    string
	GroundedParam string
	JumpTrigger   string
	SpeedDamp     float64 // smoothing time for the speed parameter

	Motion motion.Config
}

// FrameInput is the raw per-frame control state.
type FrameInput struct {
	Axis        mgl64.Vec2 // x strafe, y forward, each roughly in [-1,1]
	Sprint      bool
	JumpPressed bool
	JumpHeld    bool
}

// Report describes what one Update did.
type Report struct {
	Direction    mgl64.Vec3 // planar unit-ish move direction
	Displacement mgl64.Vec3 // total delta requested from the mover
	Grounded     bool
	Touched      physics.Touched
	Events       motion.Events
	AnimSpeed    float64
}

// Controller drives one character body. It is not safe for concurrent use;
// it is stepped once per frame by its owner.
type Controller struct {
	Config Config

	// Optional collaborators. A nil View moves in world space, a nil
	// Animator skips publication.
	View     View
	Animator AnimatorSink

	mover  Mover
	probe  GroundProbe
	log    *zap.Logger
	motion *motion.Model
	facing mgl64.Quat

	disagree bool // probe and mover differed on the last check
}

// New builds a controller around a mover. probe may be nil, in which case
// grounding comes from the mover alone.
func New(cfg Config, mover Mover, probe GroundProbe, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	if mover == nil {
		log.Warn("locomotion: no mover assigned, controller disabled")
	}
	return &Controller{
		Config: cfg,
		mover:  mover,
		probe:  probe,
		log:    log,
		motion: motion.NewModel(cfg.Motion),
		facing: mgl64.QuatIdent(),
	}
}

// Enabled reports whether the controller has a body to move.
func (c *Controller) Enabled() bool { return c.mover != nil }

// Facing returns the current body rotation.
func (c *Controller) Facing() mgl64.Quat { return c.facing }

// SetFacing snaps the body rotation, e.g. at spawn.
func (c *Controller) SetFacing(q mgl64.Quat) { c.facing = q.Normalize() }

// Reset drops vertical motion and queued jumps and snaps the facing.
func (c *Controller) Reset(facing mgl64.Quat) {
	c.motion = motion.NewModel(c.Config.Motion)
	c.SetFacing(facing)
}

// Motion returns a copy of the vertical motion state.
func (c *Controller) Motion() motion.State { return c.motion.State }

// Update advances the controller by dt seconds.
func (c *Controller) Update(in FrameInput, dt float64) Report {
	var r Report
	if c.mover == nil || dt <= 0 {
		return r
	}
	c.motion.Config = c.Config.Motion

	axis := gamemath.ClampMagnitude(in.Axis, 1)
	r.Direction = c.planarDirection(axis)

	if r.Direction.Dot(r.Direction) > 1e-4 {
		t := mathutil.ExpDecay(c.Config.TurnRate, dt)
		c.facing = gamemath.Slerp(c.facing, gamemath.LookRotation(r.Direction), t)
	}

	speed := c.Config.WalkSpeed
	if in.Sprint {
		speed = c.Config.RunSpeed
	}
	planar := r.Direction.Mul(speed * dt)
	r.Touched = c.mover.Move(planar)

	r.Grounded = c.grounded()

	r.Events = c.motion.Step(motion.Input{
		Grounded:    r.Grounded,
		JumpPressed: in.JumpPressed,
		JumpHeld:    in.JumpHeld,
	}, dt)
	c.logEvents(r.Events)

	vertical := mgl64.Vec3{0, c.motion.State.VelocityY * dt, 0}
	touched := c.mover.Move(vertical)
	if touched.Above && c.motion.State.Rising() {
		c.motion.State.Bump()
	}
	r.Touched = r.Touched.Merge(touched)
	r.Displacement = planar.Add(vertical)

	r.AnimSpeed = gamemath.BlendSpeed(axis.Len(), in.Sprint)
	c.publish(r, dt)
	return r
}

func (c *Controller) planarDirection(axis mgl64.Vec2) mgl64.Vec3 {
	fwd, right := gamemath.Forward, gamemath.Right
	if c.View != nil {
		fwd, right = c.View.Forward(), c.View.Right()
	}
	return gamemath.PlanarDirection(fwd, right, axis)
}

func (c *Controller) grounded() bool {
	hint := c.mover.GroundedHint()
	if c.probe == nil {
		return hint
	}
	probed := c.probe.Grounded(c.mover.Bounds())
	if d := probed != hint; d != c.disagree {
		c.disagree = d
		if d {
			c.log.Debug("locomotion: ground probe disagrees with mover",
				zap.Bool("probe", probed), zap.Bool("mover", hint))
		}
	}
	switch c.Config.GroundMode {
	case GroundProbeOnly:
		return probed
	case GroundMoverOnly:
		return hint
	default:
		return probed || hint
	}
}

func (c *Controller) publish(r Report, dt float64) {
	if c.Animator == nil {
		return
	}
	c.Animator.SetFloat(c.Config.SpeedParam, r.AnimSpeed, c.Config.SpeedDamp, dt)
	c.Animator.SetBool(c.Config.GroundedParam, r.Grounded)
	if r.Events.Has(motion.JumpAccepted) {
		c.Animator.ResetTrigger(c.Config.JumpTrigger)
		c.Animator.SetTrigger(c.Config.JumpTrigger)
	}
}

func (c *Controller) logEvents(ev motion.Events) {
	if ev == 0 {
		return
	}
	s := c.motion.State
	if ev.Has(motion.JumpAccepted) {
		c.log.Debug("jump accepted", zap.Float64("delay", c.Config.Motion.JumpDelay))
	}
	if ev.Has(motion.Liftoff) {
		c.log.Debug("liftoff", zap.Float64("velocity_y", s.VelocityY))
	}
	if ev.Has(motion.JumpDropped) {
		c.log.Debug("queued jump dropped, left ground during wind-up")
	}
}
