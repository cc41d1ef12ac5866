package fighter

import "fmt"

// Stats holds the tuning of a fighter. Integer fields are in world units
// per tick.
type Stats struct {
	Width  int
	Height int

	Speed        float64 // max horizontal speed
	Acceleration float64 // speed gained or lost per tick
	JumpVelocity int     // vertical velocity set by a jump, negative is up
	Gravity      int

	MaxHealth int

	SwordLength  int
	SwordWidth   int
	AttackDamage int

	KnockbackStep  int // distance slid per knockback tick
	KnockbackTicks int
}

// DefaultStats returns the standard duel tuning.
func DefaultStats() Stats {
	return Stats{
		Width:          50,
		Height:         100,
		Speed:          5,
		Acceleration:   0.5,
		JumpVelocity:   -15,
		Gravity:        1,
		MaxHealth:      100,
		SwordLength:    50,
		SwordWidth:     10,
		AttackDamage:   10,
		KnockbackStep:  10,
		KnockbackTicks: 10,
	}
}

// Validate reports the first field that would break the fighter's
// invariants.
func (s Stats) Validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("fighter: invalid size %dx%d", s.Width, s.Height)
	case s.Speed <= 0:
		return fmt.Errorf("fighter: speed must be positive, got %v", s.Speed)
	case s.Acceleration <= 0:
		return fmt.Errorf("fighter: acceleration must be positive, got %v", s.Acceleration)
	case s.MaxHealth <= 0:
		return fmt.Errorf("fighter: max health must be positive, got %d", s.MaxHealth)
	case s.SwordLength <= 0 || s.SwordWidth <= 0:
		return fmt.Errorf("fighter: invalid sword %dx%d", s.SwordLength, s.SwordWidth)
	case s.AttackDamage < 0:
		return fmt.Errorf("fighter: attack damage must not be negative, got %d", s.AttackDamage)
	case s.KnockbackStep < 0 || s.KnockbackTicks <= 0:
		return fmt.Errorf("fighter: invalid knockback %d x %d ticks", s.KnockbackStep, s.KnockbackTicks)
	}
	return nil
}
