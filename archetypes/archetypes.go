package archetypes

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	LayerWorld ecs.LayerID = iota
	LayerHUD
)

var (
	Player = newArchetype(
		tags.Player,
		components.Name,
		components.Player,
		components.Body,
		components.Animator,
		components.Interactor,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Name,
		components.Solid,
	)
	Door = newArchetype(
		tags.Door,
		tags.Interactable,
		components.Name,
		components.Door,
	)
	DoorPanel = newArchetype(
		components.Name,
		components.Parent,
		components.Solid,
	)
	Level = newArchetype(
		components.Level,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Input = newArchetype(
		components.Input,
	)
	Indicator = newArchetype(
		components.Indicator,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		LayerWorld,
		append(a.components, cs...)...,
	))
	return e
}
