package components

import (
	cfg "github.com/automoto/thirdperson/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputSnapshot is one frame of raw device state.
type InputSnapshot struct {
	Move    mgl64.Vec2 // x right, y forward, magnitude up to 1
	Look    mgl64.Vec2 // pointer delta in pixels, y up
	Actions [cfg.ActionCount]bool
	Method  InputMethod
}

// InputData stores the current and previous frame snapshots.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current    InputSnapshot
	Previous   InputSnapshot
	Suppressed [cfg.ActionCount]bool // ignored until released
}

// Push shifts the current snapshot into previous.
func (d *InputData) Push(s InputSnapshot) {
	for id, sup := range d.Suppressed {
		if sup && !s.Actions[id] {
			d.Suppressed[id] = false
		}
	}
	d.Previous = d.Current
	d.Current = s
}

// Suppress hides an action until it is next released.
func (d *InputData) Suppress(id cfg.ActionID) {
	d.Suppressed[id] = true
}

// Action returns the full ActionState for an action ID.
func (d *InputData) Action(id cfg.ActionID) ActionState {
	if d.Suppressed[id] {
		return ActionState{}
	}
	curr := d.Current.Actions[id]
	prev := d.Previous.Actions[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

var Input = donburi.NewComponentType[InputData]()
