package components

import (
	"github.com/automoto/swordduel/fighter"
	"github.com/yohamta/donburi"
)

// FighterData attaches a duel fighter to an entity.
type FighterData struct {
	Fighter     *fighter.Fighter
	PlayerIndex int // 0 or 1
	Opponent    *donburi.Entry

	// Frames left before a knocked out fighter respawns. Zero while alive.
	RespawnTimer int
	// Dead on the previous frame, used to detect the KO edge.
	WasDead bool
}

var Fighter = donburi.NewComponentType[FighterData]()

// Tick advances the knockout bookkeeping by one frame. ko is true on the
// frame the fighter goes down, which starts a countdown of delay frames.
// respawn is true once the countdown has run out; with a zero delay that is
// the KO frame itself. The caller does the actual respawn.
func (d *FighterData) Tick(dead bool, delay int) (ko, respawn bool) {
	if !dead {
		d.WasDead = false
		d.RespawnTimer = 0
		return false, false
	}

	if !d.WasDead {
		d.WasDead = true
		d.RespawnTimer = delay
		ko = true
	} else if d.RespawnTimer > 0 {
		d.RespawnTimer--
	}

	if d.RespawnTimer > 0 {
		return ko, false
	}
	d.WasDead = false
	return ko, true
}
