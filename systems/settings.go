package systems

import (
	"log"

	"github.com/automoto/swordduel/components"
	cfg "github.com/automoto/swordduel/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the hitbox and fullscreen toggles and writes them
// to disk when they change. Runs while paused.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	if input.Action(components.GlobalToggleHitboxes).JustPressed {
		settings.ShowHitboxes = !settings.ShowHitboxes
		settings.Dirty = true
		log.Printf("Hitboxes: %v", settings.ShowHitboxes)
	}
	if input.Action(components.GlobalToggleFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		settings.Dirty = true
	}

	if settings.Dirty {
		SaveCurrentSettings(settings)
		settings.Dirty = false
	}
}

// GetOrCreateSettings returns the singleton Settings component. A new one is
// seeded from the command line and whatever was saved last session.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		data := components.SettingsData{
			ShowHitboxes: cfg.Debug.ShowHitboxes,
			Fullscreen:   ebiten.IsFullscreen(),
		}
		if saved, _ := LoadSettings(); saved != nil && !cfg.Debug.ShowHitboxes {
			data.ShowHitboxes = saved.ShowHitboxes
		}
		components.Settings.SetValue(entry, data)
	}
	return components.Settings.Get(entry)
}
