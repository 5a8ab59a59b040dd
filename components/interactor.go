package components

import (
	"github.com/automoto/thirdperson/shared/interact"
	"github.com/yohamta/donburi"
)

type InteractorData struct {
	Probe  *interact.Probe
	Target interact.Target
}

var Interactor = donburi.NewComponentType[InteractorData]()

// IndicatorData is the on-screen hand shown while a door is targeted.
type IndicatorData struct {
	Visible bool
	Toggles int
}

func (i *IndicatorData) SetVisible(v bool) {
	i.Visible = v
	i.Toggles++
}

var Indicator = donburi.NewComponentType[IndicatorData]()
