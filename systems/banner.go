package systems

import (
	"github.com/automoto/swordduel/archetypes"
	"github.com/automoto/swordduel/components"
	cfg "github.com/automoto/swordduel/config"
	"github.com/automoto/swordduel/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// ShowBanner starts the KO banner, restarting it if it is already up.
func ShowBanner(ecs *ecs.ECS, msg string) {
	entry, ok := components.Banner.First(ecs.World)
	if !ok {
		entry = archetypes.Banner.Spawn(ecs)
	}
	components.Banner.SetValue(entry, components.BannerData{
		Text:       msg,
		Tween:      gween.New(-cfg.HUD.BannerSlide, 0, 0.4, ease.OutBack),
		Offset:     -cfg.HUD.BannerSlide,
		TimeToLive: cfg.HUD.BannerFrames,
	})
}

// UpdateBanner advances the slide-in and hides the banner when it expires.
func UpdateBanner(ecs *ecs.ECS) {
	entry, ok := components.Banner.First(ecs.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	if banner.TimeToLive <= 0 {
		return
	}
	banner.TimeToLive--
	if banner.Tween != nil {
		offset, _ := banner.Tween.Update(1 / float32(ebiten.TPS()))
		banner.Offset = offset
	}
}

// DrawBanner renders the KO banner while it is alive.
func DrawBanner(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Banner.First(ecs.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	if banner.TimeToLive <= 0 {
		return
	}

	face := fonts.Title.Get()
	width := text.BoundString(face, banner.Text).Dx()
	x := (screen.Bounds().Dx()-width)/2 + int(banner.Offset)
	text.Draw(screen, banner.Text, face, x, int(cfg.HUD.BannerY), cfg.HUD.BannerColor)
}
