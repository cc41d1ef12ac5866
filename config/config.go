package config

import (
	"image/color"

	"github.com/automoto/swordduel/fighter"
)

// FighterConfig contains the body and movement tuning of a fighter
type FighterConfig struct {
	// Dimensions
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Movement
	Speed        float64 `yaml:"speed"`
	Acceleration float64 `yaml:"acceleration"`
	JumpVelocity int     `yaml:"jumpVelocity"`
	Gravity      int     `yaml:"gravity"`

	Health int `yaml:"health"`
}

// CombatConfig contains sword and knockback tuning
type CombatConfig struct {
	SwordLength    int `yaml:"swordLength"`
	SwordWidth     int `yaml:"swordWidth"`
	Damage         int `yaml:"damage"`
	KnockbackStep  int `yaml:"knockbackStep"`  // Units slid per knockback frame
	KnockbackTicks int `yaml:"knockbackTicks"` // Frames of knockback
}

// RespawnConfig controls how long a knocked out fighter stays down
type RespawnConfig struct {
	DelayFrames int `yaml:"delayFrames"`
}

// ArenaConfig contains arena presentation values
type ArenaConfig struct {
	LevelPath       string
	BackgroundColor color.RGBA
	GroundColor     color.RGBA
}

// HUDConfig contains the score display and KO banner values
type HUDConfig struct {
	Margin       float64
	TextColor    color.RGBA
	LeaderColor  color.RGBA
	BannerColor  color.RGBA
	BannerText   string
	BannerY      float64
	BannerFrames int // Frames the banner stays on screen
	BannerSlide  float32
}

// PauseConfig contains pause overlay values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
	Hint         string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHitboxes bool
	HitboxColor  color.RGBA
	SwordColor   color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// Global configuration instances
var C *Config
var Fighter FighterConfig
var Combat CombatConfig
var Respawn RespawnConfig
var Arena ArenaConfig
var HUD HUDConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	DarkRed      = color.RGBA{R: 160, G: 20, B: 20, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		Title:  "Sword Duel",
		TPS:    60,
	}

	Fighter = FighterConfig{
		Width:  50,
		Height: 100,

		Speed:        5,
		Acceleration: 0.5,
		JumpVelocity: -15,
		Gravity:      1,

		Health: 100,
	}

	Combat = CombatConfig{
		SwordLength:    50,
		SwordWidth:     10,
		Damage:         10,
		KnockbackStep:  10,
		KnockbackTicks: 10,
	}

	Respawn = RespawnConfig{
		DelayFrames: 90, // 1.5s at 60fps
	}

	Arena = ArenaConfig{
		LevelPath:       "levels/duel.tmx",
		BackgroundColor: color.RGBA{R: 135, G: 206, B: 235, A: 255},
		GroundColor:     color.RGBA{R: 34, G: 139, B: 34, A: 255},
	}

	HUD = HUDConfig{
		Margin:       10,
		TextColor:    Black,
		LeaderColor:  DarkRed,
		BannerColor:  BrightOrange,
		BannerText:   "K.O.",
		BannerY:      200,
		BannerFrames: 60,
		BannerSlide:  120,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Title:        "PAUSED",
		Hint:         "Esc/P: Resume   F1: Hitboxes   F11: Fullscreen",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowHitboxes: false,
		HitboxColor:  Cyan,
		SwordColor:   Magenta,
	}
}

// FighterStats returns the tuning new fighters are built with.
func FighterStats() fighter.Stats {
	return Current().Stats()
}
