package systems

import (
	"log"

	"github.com/automoto/swordduel/components"
	cfg "github.com/automoto/swordduel/config"
	"github.com/automoto/swordduel/fighter"
	"github.com/automoto/swordduel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFighters is the duel driver. Every fighter first takes its stance
// from input, then each pair's swings are resolved together, then all
// fighters advance one tick and are kept inside the arena.
// Must run AFTER UpdatePlayerInput.
func UpdateFighters(ecs *ecs.ECS) {
	minX, maxX := arenaBounds(ecs)

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		in := intentFor(components.PlayerInput.Get(e))
		in.Attack = false
		// Without a swing Drive never needs the opponent.
		_, _ = components.Fighter.Get(e).Fighter.Drive(in, nil)
	})

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		fd := components.Fighter.Get(e)
		if fd.Opponent == nil || !fd.Opponent.Valid() {
			if swings(e) {
				log.Printf("Warning: player %d attack skipped: %v", fd.PlayerIndex+1, fighter.ErrNilOpponent)
			}
			return
		}
		opp := components.Fighter.Get(fd.Opponent)
		// Each pair is resolved once, by its lower player index.
		if opp.PlayerIndex < fd.PlayerIndex {
			return
		}
		if _, _, err := fighter.Clash(fd.Fighter, opp.Fighter, swings(e), swings(fd.Opponent)); err != nil {
			log.Printf("Warning: player %d attack skipped: %v", fd.PlayerIndex+1, err)
		}
	})

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Fighter.Get(e).Fighter
		f.Update()
		f.Confine(minX, maxX)
	})
}

// intentFor maps the player's actions to fighter input. Movement and block
// are held, jump and attack trigger on press.
func intentFor(input *components.PlayerInputData) fighter.Intent {
	return fighter.Intent{
		MoveLeft:  input.Action(components.ActionMoveLeft).Pressed,
		MoveRight: input.Action(components.ActionMoveRight).Pressed,
		Block:     input.Action(components.ActionBlock).Pressed,
		Jump:      input.Action(components.ActionJump).JustPressed,
		Attack:    input.Action(components.ActionAttack).JustPressed,
		Release:   input.AnyReleased(),
	}
}

func swings(e *donburi.Entry) bool {
	return components.PlayerInput.Get(e).Action(components.ActionAttack).JustPressed
}

// arenaBounds returns the horizontal walls of the arena.
func arenaBounds(ecs *ecs.ECS) (int, int) {
	entry, ok := components.Arena.First(ecs.World)
	if !ok {
		return 0, cfg.C.Width
	}
	return 0, components.Arena.Get(entry).Layout.Width
}
