package systems

import (
	"log"

	"github.com/automoto/swordduel/components"
	cfg "github.com/automoto/swordduel/config"
	"github.com/automoto/swordduel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMatch scores knockouts and brings fighters back. The frame a fighter
// goes down its opponent gets a KO and it gets a death; it respawns once
// cfg.Respawn.DelayFrames have passed.
// Must run AFTER UpdateFighters.
func UpdateMatch(ecs *ecs.ECS) {
	match := getMatch(ecs)

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		fd := components.Fighter.Get(e)
		ko, respawn := fd.Tick(fd.Fighter.IsDead(), cfg.Respawn.DelayFrames)

		if ko {
			if match != nil {
				recordKO(match, fd)
			}
			ShowBanner(ecs, cfg.HUD.BannerText)
		}
		if respawn {
			fd.Fighter.Respawn()
			x, y := fd.Fighter.RespawnPoint()
			log.Printf("Player %d respawned at (%d, %d)", fd.PlayerIndex+1, x, y)
		}
	})
}

func recordKO(match *components.MatchData, fd *components.FighterData) {
	match.AddDeath(fd.PlayerIndex)
	if fd.Opponent == nil || !fd.Opponent.Valid() {
		log.Printf("Player %d went down", fd.PlayerIndex+1)
		return
	}
	winner := components.Fighter.Get(fd.Opponent).PlayerIndex
	match.AddKO(winner)
	log.Printf("Player %d knocked out player %d (%d-%d)",
		winner+1, fd.PlayerIndex+1,
		match.GetPlayerScore(0).KOs, match.GetPlayerScore(1).KOs)
}

func getMatch(ecs *ecs.ECS) *components.MatchData {
	entry, ok := components.Match.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Match.Get(entry)
}
