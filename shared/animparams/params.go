// Package animparams is an in-memory animator parameter store. It smooths
// float parameters and latches triggers until they are consumed.
package animparams

import "github.com/automoto/thirdperson/mathutil"

type floatParam struct {
	value    float64
	velocity float64
}

// Params holds named float, bool and trigger parameters.
type Params struct {
	floats   map[string]*floatParam
	bools    map[string]bool
	triggers map[string]bool
}

// New returns an empty store.
func New() *Params {
	return &Params{
		floats:   make(map[string]*floatParam),
		bools:    make(map[string]bool),
		triggers: make(map[string]bool),
	}
}

// SetFloat moves name toward value. A damp time of zero or less sets it
// directly.
func (p *Params) SetFloat(name string, value, damp, dt float64) {
	f, ok := p.floats[name]
	if !ok {
		f = &floatParam{}
		p.floats[name] = f
	}
	if damp <= 0 || dt <= 0 {
		f.value, f.velocity = value, 0
		return
	}
	f.value, f.velocity = mathutil.SmoothDamp(f.value, value, f.velocity, damp, dt)
}

func (p *Params) Float(name string) float64 {
	if f, ok := p.floats[name]; ok {
		return f.value
	}
	return 0
}

func (p *Params) SetBool(name string, value bool) { p.bools[name] = value }

func (p *Params) Bool(name string) bool { return p.bools[name] }

func (p *Params) SetTrigger(name string) { p.triggers[name] = true }

func (p *Params) ResetTrigger(name string) { delete(p.triggers, name) }

// Triggered reports whether name is latched.
func (p *Params) Triggered(name string) bool { return p.triggers[name] }

// ConsumeTrigger reports and clears a latched trigger.
func (p *Params) ConsumeTrigger(name string) bool {
	if !p.triggers[name] {
		return false
	}
	delete(p.triggers, name)
	return true
}
