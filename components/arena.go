package components

import (
	"github.com/automoto/swordduel/arena"
	"github.com/yohamta/donburi"
)

// ArenaData is the singleton holding the loaded stage.
type ArenaData struct {
	Layout *arena.Layout
}

var Arena = donburi.NewComponentType[ArenaData]()
