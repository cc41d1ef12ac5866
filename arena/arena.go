// Package arena loads the duel stage from a Tiled map. It does not import
// ebitengine, so maps can be loaded in tests.
package arena

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

//go:embed all:levels
var levelFS embed.FS

// Object group names read from the map.
const (
	GroundGroup = "Ground"
	SpawnGroup  = "PlayerSpawn"
)

var (
	ErrNoGround      = errors.New("arena: map has no ground")
	ErrTooFewSpawns  = errors.New("arena: map needs two player spawns")
	ErrEmptyArena    = errors.New("arena: map has no size")
	ErrBadGroundRect = errors.New("arena: ground has no area")
)

// Rect is an axis-aligned rectangle in world units.
type Rect struct {
	X, Y, W, H float64
}

// SpawnPoint is where a fighter starts and respawns. Y is the feet.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Layout is the collision data of one arena.
type Layout struct {
	Name   string
	Width  int
	Height int
	Ground Rect
	Spawns []SpawnPoint // sorted left to right
}

// Load parses a TMX map from fsys. The map needs a Ground object group with
// one rectangle and a PlayerSpawn group with at least two objects.
func Load(fsys fs.FS, path string) (*Layout, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	layout := &Layout{
		Name:   strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Width:  m.Width * m.TileWidth,
		Height: m.Height * m.TileHeight,
	}
	if layout.Width <= 0 || layout.Height <= 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyArena)
	}

	foundGround := false
	for _, og := range m.ObjectGroups {
		switch og.Name {
		case GroundGroup:
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			if o.Width <= 0 || o.Height <= 0 {
				return nil, fmt.Errorf("%s: %w", path, ErrBadGroundRect)
			}
			layout.Ground = Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			foundGround = true
		case SpawnGroup:
			for _, o := range og.Objects {
				layout.Spawns = append(layout.Spawns, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	if !foundGround {
		return nil, fmt.Errorf("%s: %w", path, ErrNoGround)
	}
	if len(layout.Spawns) < 2 {
		return nil, fmt.Errorf("%s: %w", path, ErrTooFewSpawns)
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(layout.Spawns, func(i, j int) bool {
		return layout.Spawns[i].X < layout.Spawns[j].X
	})

	return layout, nil
}

// LoadDefault loads a map embedded in the binary, e.g. "levels/duel.tmx".
func LoadDefault(path string) (*Layout, error) {
	return Load(levelFS, path)
}

// SpawnFor returns the spawn of player, the one whose spawnIndex matches.
// Without a match players fall back to the spawns in left to right order.
func (l *Layout) SpawnFor(player int) SpawnPoint {
	for _, s := range l.Spawns {
		if s.Index == player {
			return s
		}
	}
	return l.Spawns[player%len(l.Spawns)]
}
