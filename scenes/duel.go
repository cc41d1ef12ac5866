package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/swordduel/archetypes"
	"github.com/automoto/swordduel/arena"
	"github.com/automoto/swordduel/components"
	"github.com/automoto/swordduel/systems"
	"github.com/automoto/swordduel/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Collision grid cell size, matching the arena tiles.
const spaceCellSize = 20

// DuelScene is the two player fight on a single arena.
type DuelScene struct {
	ecs    *ecs.ECS
	layout *arena.Layout
	once   sync.Once
}

// NewDuelScene loads the arena at levelPath. The world itself is built on
// the first Update.
func NewDuelScene(levelPath string) (*DuelScene, error) {
	layout, err := arena.LoadDefault(levelPath)
	if err != nil {
		return nil, fmt.Errorf("load arena: %w", err)
	}
	return &DuelScene{layout: layout}, nil
}

func (ds *DuelScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecs.Update()
}

func (ds *DuelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

func (ds *DuelScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePlayerInput)
	ecs.AddSystem(systems.UpdatePause)

	// Duel systems, frozen while paused
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateFighters))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateMatch))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateObjects))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateBanner))

	// Systems that run even when paused
	ecs.AddSystem(systems.UpdateSettings)

	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawArena)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawFighters)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawDebug)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawHUD)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawBanner)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawPause)

	ds.ecs = ecs

	spaceEntry := factory.CreateSpace(ds.ecs, ds.layout.Width, ds.layout.Height, spaceCellSize, spaceCellSize)

	ground := arena.NewPlatform(ds.layout.Ground)
	factory.CreatePlatform(ds.ecs, spaceEntry, ground)
	factory.CreateArena(ds.ecs, ds.layout)

	// Player one uses the WASD half of the keyboard.
	inputs := []factory.FighterInputConfig{
		{PlayerIndex: 0, ControlScheme: components.ControlSchemeWASD},
		{PlayerIndex: 1, ControlScheme: components.ControlSchemeArrows},
	}
	one := factory.CreateFighter(ds.ecs, spaceEntry, ground, ds.layout.SpawnFor(0), inputs[0])
	two := factory.CreateFighter(ds.ecs, spaceEntry, ground, ds.layout.SpawnFor(1), inputs[1])
	factory.PairFighters(one, two)

	factory.CreateMatch(ds.ecs, len(inputs))

	log.Printf("Duel started on %s (%dx%d)", ds.layout.Name, ds.layout.Width, ds.layout.Height)
}
