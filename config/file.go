package config

import (
	"fmt"
	"os"

	"github.com/automoto/swordduel/fighter"
	"gopkg.in/yaml.v3"
)

// File is the on-disk tuning override. Sections and fields left out of the
// YAML keep their current values.
//
//	fighter:
//	  speed: 6
//	combat:
//	  damage: 15
//	respawn:
//	  delayFrames: 120
type File struct {
	Fighter FighterConfig `yaml:"fighter"`
	Combat  CombatConfig  `yaml:"combat"`
	Respawn RespawnConfig `yaml:"respawn"`
}

// Current returns the active tuning as a File.
func Current() File {
	return File{
		Fighter: Fighter,
		Combat:  Combat,
		Respawn: Respawn,
	}
}

// Parse overlays data on the active tuning and validates the result without
// applying it.
func Parse(data []byte) (File, error) {
	f := Current()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("failed to parse tuning config: %w", err)
	}
	if err := f.Validate(); err != nil {
		return File{}, fmt.Errorf("invalid tuning config: %w", err)
	}
	return f, nil
}

// LoadFile reads a YAML tuning file and applies it to the global config.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tuning config: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return err
	}
	f.Apply()
	return nil
}

// Stats combines the fighter and combat sections into fighter tuning.
func (f File) Stats() fighter.Stats {
	return fighter.Stats{
		Width:          f.Fighter.Width,
		Height:         f.Fighter.Height,
		Speed:          f.Fighter.Speed,
		Acceleration:   f.Fighter.Acceleration,
		JumpVelocity:   f.Fighter.JumpVelocity,
		Gravity:        f.Fighter.Gravity,
		MaxHealth:      f.Fighter.Health,
		SwordLength:    f.Combat.SwordLength,
		SwordWidth:     f.Combat.SwordWidth,
		AttackDamage:   f.Combat.Damage,
		KnockbackStep:  f.Combat.KnockbackStep,
		KnockbackTicks: f.Combat.KnockbackTicks,
	}
}

// Validate checks that a fighter could be built from the file.
func (f File) Validate() error {
	if err := f.Stats().Validate(); err != nil {
		return err
	}
	if f.Respawn.DelayFrames < 0 {
		return fmt.Errorf("respawn delay must not be negative, got %d", f.Respawn.DelayFrames)
	}
	return nil
}

// Apply replaces the global sections with the file's values.
func (f File) Apply() {
	Fighter = f.Fighter
	Combat = f.Combat
	Respawn = f.Respawn
}
