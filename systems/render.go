package systems

import (
	"image/color"

	"github.com/automoto/swordduel/components"
	cfg "github.com/automoto/swordduel/config"
	"github.com/automoto/swordduel/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// screenRenderer lets a fighter draw itself straight onto the screen.
type screenRenderer struct {
	screen *ebiten.Image
}

func (r screenRenderer) FillRect(x, y, w, h int, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.FillRect(r.screen, float32(x), float32(y), float32(w), float32(h), c, false)
}

// DrawArena fills the background and the ground.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Arena.BackgroundColor)

	entry, ok := components.Arena.First(ecs.World)
	if !ok {
		return
	}
	g := components.Arena.Get(entry).Layout.Ground
	vector.FillRect(screen, float32(g.X), float32(g.Y), float32(g.W), float32(g.H), cfg.Arena.GroundColor, false)
}

// DrawFighters renders every fighter that is still standing.
func DrawFighters(ecs *ecs.ECS, screen *ebiten.Image) {
	r := screenRenderer{screen: screen}
	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		components.Fighter.Get(e).Fighter.Render(r)
	})
}
