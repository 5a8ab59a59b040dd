// Package interact aims a shape cast from the view centre, decides whether
// it rests on a reachable interactable and forwards the interact press.
package interact

import (
	"github.com/automoto/thirdperson/shared/physics"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// Hit is a cast result resolved to a scene node.
type Hit struct {
	Point    mgl64.Vec3
	Distance float64
	Surface  Node
}

// Caster casts shapes into the scene.
type Caster interface {
	SphereCast(origin, dir mgl64.Vec3, radius, maxDistance float64, mask physics.Layer, triggers physics.Triggers) (Hit, bool)
	Raycast(origin, dir mgl64.Vec3, maxDistance float64, mask physics.Layer, triggers physics.Triggers) (Hit, bool)
}

// Indicator is the on-screen affordance shown while something is targeted.
type Indicator interface {
	SetVisible(bool)
}

// Ray is the view-centre ray.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// Config tunes a Probe.
type Config struct {
	Reach            float64 // max distance from the player to the hit point
	AimMaxDistance   float64 // max cast length from the view
	UseSphereCast    bool
	SphereRadius     float64
	Mask             physics.Layer
	Triggers         physics.Triggers
	InteractableTag  string
	MaxAncestorDepth int
	Debug            bool
}

// Target is the per-frame probe result. It does not outlive the frame.
type Target struct {
	Hit        Hit
	HasHit     bool
	Distance   float64 // from the player
	Tagged     bool
	InReach    bool
	Actuator   Actuator
	Owner      Node // node carrying the actuator
	Interacted bool
}

// Targeting reports whether an actuator is aimed at and reachable.
func (t Target) Targeting() bool { return t.Actuator != nil }

// Probe is the interaction probe.
type Probe struct {
	Config Config

	caster    Caster
	indicator Indicator
	log       *zap.Logger
	current   Target
	visible   bool
}

// New builds a probe. A nil caster disables it; a nil indicator is allowed.
func New(cfg Config, caster Caster, indicator Indicator, log *zap.Logger) *Probe {
	if log == nil {
		log = zap.NewNop()
	}
	if caster == nil {
		log.Warn("interact: no caster assigned, probe disabled")
	}
	p := &Probe{Config: cfg, caster: caster, indicator: indicator, log: log}
	if indicator != nil {
		indicator.SetVisible(false)
	}
	return p
}

// Current returns the result of the last Update.
func (p *Probe) Current() Target { return p.current }

// Update casts from the view, refreshes the indicator and, when interact
// was pressed this frame, triggers the targeted actuator once.
func (p *Probe) Update(view Ray, player mgl64.Vec3, interactPressed bool) Target {
	p.current = Target{}
	if p.caster == nil {
		return p.current
	}

	var hit Hit
	var ok bool
	if p.Config.UseSphereCast {
		hit, ok = p.caster.SphereCast(view.Origin, view.Direction, p.Config.SphereRadius, p.Config.AimMaxDistance, p.Config.Mask, p.Config.Triggers)
	} else {
		hit, ok = p.caster.Raycast(view.Origin, view.Direction, p.Config.AimMaxDistance, p.Config.Mask, p.Config.Triggers)
	}

	t := Target{Hit: hit, HasHit: ok}
	if ok {
		t.Distance = player.Sub(hit.Point).Len()
		t.Tagged = Tagged(hit.Surface, p.Config.InteractableTag)
		t.InReach = t.Distance <= p.Config.Reach
		if p.Config.Debug {
			p.log.Debug("interact: hit", zap.String("surface", nodeName(hit.Surface)),
				zap.Bool("tagged", t.Tagged), zap.Float64("distance", t.Distance))
		}
		if t.Tagged && t.InReach {
			t.Actuator, t.Owner, _ = FindActuator(hit.Surface, p.Config.MaxAncestorDepth)
			if t.Actuator == nil && p.Config.Debug {
				p.log.Debug("interact: tagged surface has no actuator in its ancestors",
					zap.String("surface", nodeName(hit.Surface)))
			}
		}
	}

	p.setVisible(t.Targeting())

	if t.Targeting() && interactPressed {
		if p.Config.Debug {
			p.log.Debug("interact", zap.String("target", nodeName(t.Owner)))
		}
		t.Actuator.Interact()
		t.Interacted = true
	}

	p.current = t
	return t
}

func (p *Probe) setVisible(v bool) {
	if p.indicator == nil || v == p.visible {
		return
	}
	p.visible = v
	p.indicator.SetVisible(v)
}

func nodeName(n Node) string {
	if n == nil {
		return ""
	}
	return n.Name()
}
