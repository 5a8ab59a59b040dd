package components

import (
	"github.com/automoto/thirdperson/shared/animparams"
	"github.com/yohamta/donburi"
)

// AnimatorData is the animator parameter sink fed by the controller.
type AnimatorData struct {
	*animparams.Params
	JumpFlash float64 // seconds left on the HUD jump marker
}

var Animator = donburi.NewComponentType[AnimatorData]()
