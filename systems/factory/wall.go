package factory

import (
	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/shared/leveldata"
	"github.com/automoto/thirdperson/shared/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, world *physics.World, s leveldata.Solid) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	// Link for O(1) lookup from cast hits
	solid := world.AddBox(s.Min, s.Max, layerOf(s.Layer), s.Trigger, wall)

	components.Name.SetValue(wall, components.NameData{Name: s.Name})
	components.Solid.SetValue(wall, components.SolidData{Solid: solid})
	return wall
}
