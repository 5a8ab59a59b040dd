// Package door is a two-state swinging door driven by Interact and advanced
// once per frame.
package door

import (
	"fmt"
	"math"
	"strings"

	"github.com/automoto/thirdperson/mathutil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// Phase of the door animation.
type Phase int

const (
	Closed Phase = iota
	Opening
	Open
	Closing
)

func (p Phase) String() string {
	switch p {
	case Closed:
		return "closed"
	case Opening:
		return "opening"
	case Open:
		return "open"
	case Closing:
		return "closing"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Blocker is the collider that stops bodies passing a closed door.
type Blocker interface {
	SetEnabled(bool)
}

// Occupancy reports whether something stands in the doorway.
type Occupancy interface {
	Occupied() bool
}

// Config tunes a Door.
type Config struct {
	OpenAngle float64 // degrees added when opening
	Speed     float64 // degrees per second
	Epsilon   float64 // convergence tolerance in degrees
	Easing    string  // optional ease curve name, empty for constant speed
}

// Door is the actuator state machine.
type Door struct {
	Config    Config
	Blocker   Blocker
	Occupancy Occupancy

	log    *zap.Logger
	name   string
	angle  float64
	target float64
	open   bool
	busy   bool
	phase  Phase

	tween     *gween.Tween
	tweenFrom float64

	blockPending bool
}

// New returns a closed, blocking door at the given local yaw.
func New(name string, cfg Config, angle float64, blocker Blocker, log *zap.Logger) *Door {
	if log == nil {
		log = zap.NewNop()
	}
	d := &Door{
		Config:  cfg,
		Blocker: blocker,
		log:     log,
		name:    name,
		angle:   mathutil.Repeat(angle, 360),
	}
	d.target = d.angle
	if blocker != nil {
		blocker.SetEnabled(true)
	}
	return d
}

// Name is the level object name.
func (d *Door) Name() string { return d.name }

// Angle is the current local yaw in degrees, in [0, 360).
func (d *Door) Angle() float64 { return d.angle }

// Target is the yaw the door is swinging toward.
func (d *Door) Target() float64 { return d.target }

// IsOpen reports the last requested state, including while swinging.
func (d *Door) IsOpen() bool { return d.open }

// Busy reports whether a swing is in progress.
func (d *Door) Busy() bool { return d.busy }

// Phase is the current animation phase.
func (d *Door) Phase() Phase { return d.phase }

// Blocking reports whether the blocker is currently meant to be enabled.
func (d *Door) Blocking() bool {
	return !d.open && !d.busy && !d.blockPending
}

// Interact toggles the door. It is ignored while an animation is running.
func (d *Door) Interact() bool {
	if d.busy {
		return false
	}
	d.open = !d.open
	d.busy = true
	if d.open {
		d.phase = Opening
		d.blockPending = false
		d.target = mathutil.Repeat(d.angle+d.Config.OpenAngle, 360)
		d.setBlocker(false)
	} else {
		d.phase = Closing
		d.target = mathutil.Repeat(d.angle-d.Config.OpenAngle, 360)
	}
	d.tween = nil
	if fn := Ease(d.Config.Easing); fn != nil && d.Config.Speed > 0 {
		delta := mathutil.DeltaAngle(d.angle, d.target)
		d.tweenFrom = d.angle
		d.tween = gween.New(0, float32(delta), float32(math.Abs(delta)/d.Config.Speed), fn)
	}
	d.log.Debug("door: interact", zap.String("door", d.name), zap.Stringer("phase", d.phase),
		zap.Float64("target", d.target))
	return true
}

// Advance steps the animation by dt seconds.
func (d *Door) Advance(dt float64) {
	if !d.busy {
		if d.blockPending && !d.occupied() {
			d.blockPending = false
			d.setBlocker(true)
			d.log.Debug("door: doorway clear, blocking", zap.String("door", d.name))
		}
		return
	}

	if d.tween != nil {
		offset, done := d.tween.Update(float32(dt))
		d.angle = mathutil.Repeat(d.tweenFrom+float64(offset), 360)
		if done {
			d.angle = d.target
		}
	} else {
		d.angle = mathutil.Repeat(mathutil.MoveTowardsAngle(d.angle, d.target, d.Config.Speed*dt), 360)
	}

	if math.Abs(mathutil.DeltaAngle(d.angle, d.target)) > d.Config.Epsilon {
		return
	}

	d.angle = d.target
	d.busy = false
	d.tween = nil
	if d.open {
		d.phase = Open
		return
	}
	d.phase = Closed
	if d.occupied() {
		d.blockPending = true
		d.log.Debug("door: doorway occupied, blocker deferred", zap.String("door", d.name))
		return
	}
	d.setBlocker(true)
}

func (d *Door) occupied() bool {
	return d.Occupancy != nil && d.Occupancy.Occupied()
}

func (d *Door) setBlocker(on bool) {
	if d.Blocker != nil {
		d.Blocker.SetEnabled(on)
	}
}

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inquad":     ease.InQuad,
	"outquad":    ease.OutQuad,
	"inoutquad":  ease.InOutQuad,
	"incubic":    ease.InCubic,
	"outcubic":   ease.OutCubic,
	"inoutcubic": ease.InOutCubic,
	"insine":     ease.InSine,
	"outsine":    ease.OutSine,
	"inoutsine":  ease.InOutSine,
	"outback":    ease.OutBack,
	"outbounce":  ease.OutBounce,
}

// Ease looks up an ease curve by case-insensitive name. Unknown or empty
// names return nil.
func Ease(name string) ease.TweenFunc {
	if name == "" {
		return nil
	}
	return easings[strings.ToLower(name)]
}

// ValidEasing reports whether name is empty or a known curve.
func ValidEasing(name string) bool {
	return name == "" || Ease(name) != nil
}
