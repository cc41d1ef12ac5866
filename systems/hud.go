package systems

import (
	"fmt"

	"github.com/automoto/swordduel/components"
	cfg "github.com/automoto/swordduel/config"
	"github.com/automoto/swordduel/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders each player's KO count in its corner of the screen. The
// player ahead is highlighted.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Match.First(ecs.World)
	if !ok {
		return
	}
	match := components.Match.Get(entry)
	face := fonts.Regular.Get()
	margin := int(cfg.HUD.Margin)
	lineHeight := face.Metrics().Height.Ceil()

	leader := match.GetLeader()

	for _, score := range match.Scores {
		label := fmt.Sprintf("P%d  KO %d", score.PlayerIndex+1, score.KOs)
		x := margin
		if score.PlayerIndex%2 == 1 {
			x = screen.Bounds().Dx() - margin - text.BoundString(face, label).Dx()
		}
		y := margin + lineHeight*(1+score.PlayerIndex/2)
		c := cfg.HUD.TextColor
		if score.PlayerIndex == leader {
			c = cfg.HUD.LeaderColor
		}
		text.Draw(screen, label, face, x, y, c)
	}
}
