package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/mathutil"
	"github.com/automoto/thirdperson/systems/factory"
	"github.com/automoto/thirdperson/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDoors advances every door animation and keeps its panel volume
// around the swung leaf.
func UpdateDoors(ecs *ecs.ECS) {
	dt := frameDT(ecs)
	tags.Door.Each(ecs.World, func(e *donburi.Entry) {
		d := components.Door.Get(e)
		if d.Door == nil {
			return
		}
		wasBusy := d.Busy()
		d.Advance(dt)
		if !wasBusy && !d.Busy() {
			return
		}
		if d.Panel != nil {
			min, max := factory.PanelBox(*d, mathutil.DeltaAngle(d.Rest, d.Angle()))
			d.Panel.SetBox(min, max)
		}
	})
}
