package factory

import (
	"github.com/automoto/swordduel/archetypes"
	"github.com/automoto/swordduel/arena"
	"github.com/automoto/swordduel/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform adds the arena ground to the world and to the collision
// space.
func CreatePlatform(ecs *ecs.ECS, space *donburi.Entry, platform *arena.Platform) *donburi.Entry {
	entry := archetypes.Platform.Spawn(ecs)
	platform.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: platform.Object})
	components.Space.Get(space).Add(platform.Object)

	return entry
}
