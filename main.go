package main

import (
	"flag"
	"log"

	"github.com/automoto/swordduel/config"
	"github.com/automoto/swordduel/fonts"
	"github.com/automoto/swordduel/scenes"
	"github.com/automoto/swordduel/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	scene scenes.Scene
}

func NewGame() (*Game, error) {
	if err := fonts.LoadDefaults(); err != nil {
		return nil, err
	}

	duel, err := scenes.NewDuelScene(config.Arena.LevelPath)
	if err != nil {
		return nil, err
	}
	return &Game{scene: duel}, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding fighter and combat tuning")
	flag.BoolVar(&config.Debug.ShowHitboxes, "hitboxes", config.Debug.ShowHitboxes, "draw collision boxes")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		log.Printf("Loaded tuning from %s", *configPath)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	// InitPersistence logs its own warning; the game runs without saving.
	_ = systems.InitPersistence()
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	game, err := NewGame()
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
