package factory

import (
	"github.com/automoto/swordduel/archetypes"
	"github.com/automoto/swordduel/arena"
	"github.com/automoto/swordduel/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena stores the layout in the arena singleton.
func CreateArena(ecs *ecs.ECS, layout *arena.Layout) *donburi.Entry {
	entry := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(entry, components.ArenaData{
		Layout: layout,
	})
	return entry
}
