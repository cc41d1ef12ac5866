package systems

import (
	"image"
	"image/color"

	"github.com/automoto/swordduel/components"
	cfg "github.com/automoto/swordduel/config"
	"github.com/automoto/swordduel/fighter"
	"github.com/automoto/swordduel/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object and each sword reach when
// hitboxes are switched on. Fighter boxes hang below their Y, so they are
// lifted by the body offset to sit on the drawn body.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.ShowHitboxes {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			y := obj.Y
			c := cfg.Debug.HitboxColor
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255}
			} else if obj.HasTags(tags.ResolvFighter) {
				y -= fighter.BodyOffsetY
			}
			strokeRect(screen, float32(obj.X), float32(y), float32(obj.W), float32(obj.H), c)
		}
	}

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Fighter.Get(e).Fighter
		if f.IsDead() {
			return
		}
		sword := f.SwordBox().Sub(image.Pt(0, fighter.BodyOffsetY))
		strokeRect(screen, float32(sword.Min.X), float32(sword.Min.Y), float32(sword.Dx()), float32(sword.Dy()), cfg.Debug.SwordColor)
	})
}

func strokeRect(screen *ebiten.Image, x, y, w, h float32, c color.Color) {
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
