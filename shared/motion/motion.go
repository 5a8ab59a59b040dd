// Package motion owns the vertical velocity of a grounded character: gravity
// integration, ground sticking and the jump queue.
package motion

import "github.com/automoto/thirdperson/shared/gamemath"

// Config tunes a Model. Gravity must be negative.
type Config struct {
	Gravity        float64 // units/s², negative
	JumpHeight     float64 // apex height above takeoff
	JumpDelay      float64 // wind-up seconds between accepting a jump and liftoff; 0 jumps on the press frame
	StickVelocity  float64 // downward speed held while grounded
	LiftoffLockout float64 // seconds after liftoff during which sticking is suppressed
}

// State is the per-character vertical motion state. The zero value is an
// airborne body at rest with jumping armed once it lands.
type State struct {
	VelocityY    float64
	Grounded     bool
	GroundedPrev bool
	JumpQueued   bool
	JumpTimer    float64
	JumpArmed    bool
	LockoutTimer float64
}

// Input is what the model needs from the frame.
type Input struct {
	Grounded    bool
	JumpPressed bool // pressed this frame
	JumpHeld    bool
}

// Events reports the edges that happened during one step.
type Events uint8

const (
	JumpAccepted Events = 1 << iota
	Liftoff
	JumpDropped
	Landed
	LeftGround
)

// Has reports whether all bits of e are set.
func (ev Events) Has(e Events) bool { return ev&e == e }

// Model advances a State under a Config.
type Model struct {
	Config Config
	State  State
}

// NewModel returns a model with jumping armed.
func NewModel(cfg Config) *Model {
	return &Model{Config: cfg, State: State{JumpArmed: true}}
}

// Step advances one frame and returns the events it produced.
func (m *Model) Step(in Input, dt float64) Events {
	var ev Events
	m.State, ev = Step(m.State, in, m.Config, dt)
	return ev
}

// Step is the pure form of Model.Step.
func Step(s State, in Input, cfg Config, dt float64) (State, Events) {
	var ev Events

	s.GroundedPrev = s.Grounded
	s.Grounded = in.Grounded
	switch {
	case s.Grounded && !s.GroundedPrev:
		ev |= Landed
	case !s.Grounded && s.GroundedPrev:
		ev |= LeftGround
	}

	if s.Grounded && s.VelocityY < 0 && s.LockoutTimer <= 0 {
		s.VelocityY = cfg.StickVelocity
	}

	if s.Grounded && in.JumpPressed && !s.JumpQueued && s.JumpArmed {
		s.JumpQueued = true
		s.JumpTimer = cfg.JumpDelay
		s.JumpArmed = false
		ev |= JumpAccepted
	}

	s.VelocityY += cfg.Gravity * dt

	if s.JumpQueued {
		s.JumpTimer -= dt
		if s.JumpTimer <= 0 {
			s.JumpQueued = false
			s.JumpTimer = 0
			if s.Grounded {
				s.VelocityY = gamemath.JumpVelocity(cfg.JumpHeight, cfg.Gravity)
				s.LockoutTimer = cfg.LiftoffLockout
				ev |= Liftoff
			} else {
				ev |= JumpDropped
			}
		}
	}

	if s.Grounded && !in.JumpHeld {
		s.JumpArmed = true
	}

	if s.LockoutTimer > 0 && !ev.Has(Liftoff) {
		s.LockoutTimer -= dt
	}

	return s, ev
}

// Rising reports whether the body is moving up.
func (s State) Rising() bool { return s.VelocityY > 0 }

// Bump cancels upward velocity after touching a ceiling.
func (s *State) Bump() {
	if s.VelocityY > 0 {
		s.VelocityY = 0
	}
}
