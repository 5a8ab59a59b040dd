package factory

import (
	"math"

	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/shared/door"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/automoto/thirdperson/shared/leveldata"
	"github.com/automoto/thirdperson/shared/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// CreateDoor spawns a door entity and its panel child. The door owns the
// blocker and the actuator; the panel is the trigger volume hit by the
// interaction cast and points back at the door through Parent.
func CreateDoor(ecs *ecs.ECS, world *physics.World, d leveldata.Door, log *zap.Logger) *donburi.Entry {
	entry := archetypes.Door.Spawn(ecs)
	panel := archetypes.DoorPanel.Spawn(ecs)

	// The hinge sits at the min corner; the leaf runs along the longer side.
	size := d.Max.Sub(d.Min)
	hinge := d.Min
	leaf := mgl64.Vec3{size.X(), 0, 0}
	if size.Z() > size.X() {
		leaf = mgl64.Vec3{0, 0, size.Z()}
	}

	blocker := world.AddBox(d.Min, d.Max, physics.LayerDefault, false, entry)
	data := components.DoorData{
		Blocker: blocker,
		Hinge:   hinge,
		Closed:  leaf,
		Height:  size.Y(),
		Rest:    d.Angle,
	}
	min, max := PanelBox(data, 0)
	data.Panel = world.AddBox(min, max, physics.LayerInteractable, true, panel)

	dr := door.New(d.Name, DoorConfig(d.OpenAngle, d.Speed, d.Easing), d.Angle, blocker, log)
	dr.Occupancy = bodyOccupancy{world: ecs.World, box: blocker.Bounds()}
	data.Door = dr

	components.Name.SetValue(entry, components.NameData{Name: d.Name})
	components.Door.SetValue(entry, data)

	components.Name.SetValue(panel, components.NameData{Name: d.Name + "/panel"})
	components.Parent.SetValue(panel, components.ParentData{Entry: entry})
	components.Solid.SetValue(panel, components.SolidData{Solid: data.Panel})
	return entry
}

// panelThickness pads the swung leaf so thin doors stay easy to aim at.
const panelThickness = 0.2

// PanelBox returns the box around the leaf swung by swing degrees from
// closed.
func PanelBox(d components.DoorData, swing float64) (mgl64.Vec3, mgl64.Vec3) {
	tip := d.Hinge.Add(gamemath.Euler(0, swing).Rotate(d.Closed))
	pad := panelThickness / 2
	min := mgl64.Vec3{math.Min(d.Hinge.X(), tip.X()) - pad, d.Hinge.Y(), math.Min(d.Hinge.Z(), tip.Z()) - pad}
	max := mgl64.Vec3{math.Max(d.Hinge.X(), tip.X()) + pad, d.Hinge.Y() + d.Height, math.Max(d.Hinge.Z(), tip.Z()) + pad}
	return min, max
}
