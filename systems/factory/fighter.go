package factory

import (
	"github.com/automoto/swordduel/archetypes"
	"github.com/automoto/swordduel/arena"
	"github.com/automoto/swordduel/components"
	cfg "github.com/automoto/swordduel/config"
	"github.com/automoto/swordduel/fighter"
	"github.com/automoto/swordduel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FighterInputConfig binds a fighter to its controls.
type FighterInputConfig struct {
	PlayerIndex   int
	ControlScheme components.ControlSchemeID
	GamepadID     *int
}

// CreateFighter spawns a fighter standing at spawn. Player index 0 is
// player one.
func CreateFighter(ecs *ecs.ECS, space *donburi.Entry, ground fighter.Ground, spawn arena.SpawnPoint, input FighterInputConfig) *donburi.Entry {
	entry := archetypes.Fighter.Spawn(ecs)

	f := fighter.NewWithStats(int(spawn.X), int(spawn.Y), ground, input.PlayerIndex == 0, cfg.FighterStats())
	components.Fighter.SetValue(entry, components.FighterData{
		Fighter:     f,
		PlayerIndex: input.PlayerIndex,
	})

	body := f.Body()
	obj := resolv.NewObject(float64(body.Min.X), float64(body.Min.Y), float64(body.Dx()), float64(body.Dy()))
	obj.AddTags(tags.ResolvFighter)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Space.Get(space).Add(obj)

	components.PlayerInput.SetValue(entry, components.PlayerInputData{
		PlayerIndex:    input.PlayerIndex,
		ControlScheme:  input.ControlScheme,
		BoundGamepadID: input.GamepadID,
	})

	return entry
}

// PairFighters makes a and b each other's opponent.
func PairFighters(a, b *donburi.Entry) {
	components.Fighter.Get(a).Opponent = b
	components.Fighter.Get(b).Opponent = a
}
