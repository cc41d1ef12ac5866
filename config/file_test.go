package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/swordduel/fighter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsMatchFighterDefaults(t *testing.T) {
	assert.Equal(t, fighter.DefaultStats(), FighterStats())
}

func TestParseKeepsUnspecifiedFields(t *testing.T) {
	f, err := Parse([]byte("fighter:\n  speed: 7\ncombat:\n  damage: 25\n"))
	require.NoError(t, err)

	assert.Equal(t, 7.0, f.Fighter.Speed)
	assert.Equal(t, 25, f.Combat.Damage)
	assert.Equal(t, Fighter.Width, f.Fighter.Width)
	assert.Equal(t, Combat.SwordLength, f.Combat.SwordLength)
	assert.Equal(t, Respawn.DelayFrames, f.Respawn.DelayFrames)
}

func TestParseDoesNotApply(t *testing.T) {
	before := Current()
	_, err := Parse([]byte("fighter:\n  speed: 9\n"))
	require.NoError(t, err)
	assert.Equal(t, before, Current())
}

func TestParseRejectsInvalidTuning(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "zero speed", yaml: "fighter:\n  speed: 0\n"},
		{name: "negative width", yaml: "fighter:\n  width: -5\n"},
		{name: "negative respawn delay", yaml: "respawn:\n  delayFrames: -1\n"},
		{name: "zero sword", yaml: "combat:\n  swordLength: 0\n"},
		{name: "zero knockback ticks", yaml: "combat:\n  knockbackTicks: 0\n"},
		{name: "malformed", yaml: "fighter: [1, 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	saved := Current()
	t.Cleanup(saved.Apply)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("combat:\n  knockbackTicks: 4\nrespawn:\n  delayFrames: 30\n"), 0o644))

	require.NoError(t, LoadFile(path))
	assert.Equal(t, 4, Combat.KnockbackTicks)
	assert.Equal(t, 30, Respawn.DelayFrames)
	assert.Equal(t, 4, FighterStats().KnockbackTicks)
}

func TestLoadFileMissing(t *testing.T) {
	err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
