package factory

import (
	"github.com/automoto/swordduel/archetypes"
	"github.com/automoto/swordduel/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMatch creates the match singleton with a zeroed score per player.
func CreateMatch(ecs *ecs.ECS, numPlayers int) *donburi.Entry {
	entry := archetypes.Match.Spawn(ecs)

	scores := make([]components.PlayerScore, numPlayers)
	for i := range scores {
		scores[i].PlayerIndex = i
	}
	components.Match.SetValue(entry, components.MatchData{Scores: scores})

	return entry
}
