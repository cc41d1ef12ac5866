package components

import "github.com/yohamta/donburi"

// SettingsData holds the toggles that are saved between sessions
type SettingsData struct {
	ShowHitboxes bool
	Fullscreen   bool
	Dirty        bool // Changed since the last save
}

var Settings = donburi.NewComponentType[SettingsData]()
