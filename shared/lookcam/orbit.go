package lookcam

import (
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// OrbitConfig tunes an Orbit camera.
type OrbitConfig struct {
	Distance     float64
	HeightOffset float64
	Sensitivity  float64
	MinPitch     float64
	MaxPitch     float64
	SmoothTime   float64
	InvertY      bool
}

func (c OrbitConfig) limits() Limits { return Limits{MinPitch: c.MinPitch, MaxPitch: c.MaxPitch} }

// Orbit follows a target from behind and above, smoothing its rotation.
type Orbit struct {
	Config OrbitConfig
	View   ViewState

	current  mgl64.Vec2 // smoothed (pitch, yaw)
	velocity mgl64.Vec2
	pose     Pose
}

// NewOrbit starts an orbit camera settled at seed.
func NewOrbit(cfg OrbitConfig, seed ViewState) *Orbit {
	seed.Clamp(cfg.limits())
	return &Orbit{
		Config:  cfg,
		View:    seed,
		current: mgl64.Vec2{seed.Pitch, seed.Yaw},
		pose:    Pose{Rotation: seed.Rotation()},
	}
}

// Update applies a pointer delta and repositions the camera around target.
func (o *Orbit) Update(delta mgl64.Vec2, target mgl64.Vec3, dt float64) Pose {
	o.View.Look(delta, o.Config.Sensitivity, o.Config.InvertY, o.Config.limits())

	raw := mgl64.Vec2{o.View.Pitch, o.View.Yaw}
	o.current, o.velocity = gamemath.SmoothDampVec2(o.current, raw, o.velocity, o.Config.SmoothTime, dt)

	rotation := gamemath.Euler(o.current.X(), o.current.Y())
	offset := rotation.Rotate(mgl64.Vec3{0, 0, -o.Config.Distance})
	pivot := target.Add(gamemath.Up.Mul(o.Config.HeightOffset))
	position := pivot.Add(offset)

	o.pose = Pose{Position: position, Rotation: lookAt(position, pivot, rotation)}
	return o.pose
}

// Reset settles the camera at seed, dropping any smoothing in flight.
func (o *Orbit) Reset(seed ViewState) {
	seed.Clamp(o.Config.limits())
	o.View = seed
	o.current = mgl64.Vec2{seed.Pitch, seed.Yaw}
	o.velocity = mgl64.Vec2{}
	o.pose.Rotation = seed.Rotation()
}

// Smoothed returns the current smoothed (pitch, yaw).
func (o *Orbit) Smoothed() (pitch, yaw float64) { return o.current.X(), o.current.Y() }

// Pose returns the last computed pose.
func (o *Orbit) Pose() Pose { return o.pose }

// Forward implements locomotion.View.
func (o *Orbit) Forward() mgl64.Vec3 { return o.pose.Forward() }

// Right implements locomotion.View.
func (o *Orbit) Right() mgl64.Vec3 { return o.pose.Right() }

func lookAt(from, to mgl64.Vec3, fallback mgl64.Quat) mgl64.Quat {
	dir := to.Sub(from)
	if dir.Dot(dir) < 1e-12 {
		return fallback
	}
	return gamemath.LookRotation(dir)
}
