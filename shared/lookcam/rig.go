package lookcam

import "github.com/go-gl/mathgl/mgl64"

// RigConfig tunes a Rig.
type RigConfig struct {
	Sensitivity float64
	MinPitch    float64
	MaxPitch    float64
	InvertY     bool
}

// Rig is a camera holder whose rotation follows the pointer directly. The
// owner places it; the character reads its basis to derive facing.
type Rig struct {
	Config RigConfig
	View   ViewState

	pose Pose
}

// NewRig returns a rig looking along seed.
func NewRig(cfg RigConfig, seed ViewState) *Rig {
	seed.Clamp(Limits{MinPitch: cfg.MinPitch, MaxPitch: cfg.MaxPitch})
	return &Rig{Config: cfg, View: seed, pose: Pose{Rotation: seed.Rotation()}}
}

// Update applies a pointer delta and sets the rotation to Euler(pitch, yaw, 0).
func (r *Rig) Update(delta mgl64.Vec2) Pose {
	r.View.Look(delta, r.Config.Sensitivity, r.Config.InvertY, r.Limits())
	r.pose.Rotation = r.View.Rotation()
	return r.pose
}

// Limits returns the configured pitch range.
func (r *Rig) Limits() Limits {
	return Limits{MinPitch: r.Config.MinPitch, MaxPitch: r.Config.MaxPitch}
}

// SetPosition moves the rig without touching its rotation.
func (r *Rig) SetPosition(p mgl64.Vec3) { r.pose.Position = p }

// Pose returns the current pose.
func (r *Rig) Pose() Pose { return r.pose }

// Forward implements locomotion.View.
func (r *Rig) Forward() mgl64.Vec3 { return r.pose.Forward() }

// Right implements locomotion.View.
func (r *Rig) Right() mgl64.Vec3 { return r.pose.Right() }
