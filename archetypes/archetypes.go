package archetypes

import (
	"github.com/automoto/swordduel/components"
	"github.com/automoto/swordduel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LayerDefault is the only render layer.
const LayerDefault ecs.LayerID = 0

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	Fighter = newArchetype(
		tags.Fighter,
		components.Fighter,
		components.Object,
		components.PlayerInput,
	)
	Space = newArchetype(
		components.Space,
	)
	Match = newArchetype(
		components.Match,
	)
	Banner = newArchetype(
		components.Banner,
	)
	Arena = newArchetype(
		components.Arena,
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
		LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}
