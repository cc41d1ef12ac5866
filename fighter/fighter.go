// Package fighter implements the duel character: per-tick physics, sword
// attacks, damage with knockback, death and respawn.
//
// A Fighter has no loop of its own. A driver calls Update once per tick and
// any of the action methods (MoveLeft, MoveRight, Jump, Attack, Block, Stop)
// in between. Everything runs on the caller's goroutine.
package fighter

import (
	"errors"
	"math"
)

// ErrNilOpponent is returned by Attack when no opponent is given.
var ErrNilOpponent = errors.New("fighter: nil opponent")

// Ground is the surface a fighter stands on. A fighter whose Y equals
// SurfaceY is standing.
type Ground interface {
	SurfaceY() int
}

// Facing is the side a fighter last moved toward. It decides which side the
// sword extends to.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Fighter is one player character. The zero value is not usable; create
// fighters with New or NewWithStats.
//
// The action flags are independent: a fighter can move, attack and block in
// the same tick. Knockback is the only state that excludes normal movement.
type Fighter struct {
	x, y          int
	width, height int
	stats         Stats

	velocityX float64
	velocityY int
	jumping   bool

	health int
	dead   bool

	attacking   bool
	blocking    bool
	movingLeft  bool
	movingRight bool

	knockedBack        bool
	knockbackDirection int
	knockbackTime      int

	facing Facing

	respawnX, respawnY int
	ground             Ground
	playerOne          bool
}

// New creates a fighter at (x, y) using DefaultStats. The starting position
// is also the respawn anchor.
func New(x, y int, ground Ground, playerOne bool) *Fighter {
	return NewWithStats(x, y, ground, playerOne, DefaultStats())
}

// NewWithStats creates a fighter with custom tuning. It panics if ground is
// nil or the stats are invalid.
func NewWithStats(x, y int, ground Ground, playerOne bool, stats Stats) *Fighter {
	if ground == nil {
		panic("fighter: nil ground")
	}
	if err := stats.Validate(); err != nil {
		panic(err)
	}
	return &Fighter{
		x:         x,
		y:         y,
		width:     stats.Width,
		height:    stats.Height,
		stats:     stats,
		health:    stats.MaxHealth,
		facing:    FacingRight,
		respawnX:  x,
		respawnY:  y,
		ground:    ground,
		playerOne: playerOne,
	}
}

// Update advances the fighter by one tick. A knocked back fighter slides
// and nothing else happens that tick.
func (f *Fighter) Update() {
	if f.dead {
		return
	}

	if f.knockedBack {
		f.x += f.knockbackDirection * f.stats.KnockbackStep
		f.knockbackTime--
		if f.knockbackTime <= 0 {
			f.knockbackTime = 0
			f.knockedBack = false
		}
		return
	}

	// The jump impulse is consumed on the tick after Jump was called.
	if f.jumping {
		f.velocityY = f.stats.JumpVelocity
		f.jumping = false
	}
	f.y += f.velocityY
	f.velocityY += f.stats.Gravity
	if surface := f.ground.SurfaceY(); f.y >= surface {
		f.y = surface
		f.velocityY = 0
	}

	accel, speed := f.stats.Acceleration, f.stats.Speed
	switch {
	case f.movingLeft:
		f.velocityX = math.Max(f.velocityX-accel, -speed)
		f.facing = FacingLeft
	case f.movingRight:
		f.velocityX = math.Min(f.velocityX+accel, speed)
		f.facing = FacingRight
	default:
		f.velocityX = math.Copysign(math.Max(0, math.Abs(f.velocityX)-accel), f.velocityX)
	}

	// Position is integral, so the fractional part of the move is dropped
	// every tick.
	f.x = int(float64(f.x) + f.velocityX)
}

// Attack swings the sword at opponent and reports whether it connected. The
// swing is shown even when it misses. A blocking or already dead opponent
// takes no damage and no knockback.
func (f *Fighter) Attack(opponent *Fighter) (bool, error) {
	if opponent == nil {
		return false, ErrNilOpponent
	}
	if f.dead {
		return false, nil
	}
	f.attacking = true

	if !f.lands(opponent) {
		return false, nil
	}
	f.strike(opponent)
	return true, nil
}

// lands reports whether a swing now would damage opponent.
func (f *Fighter) lands(opponent *Fighter) bool {
	return !opponent.dead && !opponent.blocking && f.InReach(opponent)
}

// strike hits opponent, pushing it away from f.
func (f *Fighter) strike(opponent *Fighter) {
	direction := -1
	if f.x < opponent.x {
		direction = 1
	}
	opponent.ApplyHit(f.stats.AttackDamage, direction)
}

// ApplyHit deals damage and, if the fighter survives, pushes it toward
// direction (+1 right, -1 left) for the configured number of ticks. Hits on
// a dead fighter are ignored.
func (f *Fighter) ApplyHit(damage, direction int) {
	if f.dead {
		return
	}
	f.TakeDamage(damage)
	if f.dead {
		return
	}
	if direction < 0 {
		f.knockbackDirection = -1
	} else {
		f.knockbackDirection = 1
	}
	f.knockedBack = true
	f.knockbackTime = f.stats.KnockbackTicks
}

// Block raises the guard until Stop is called.
func (f *Fighter) Block() {
	if f.dead {
		return
	}
	f.blocking = true
}

func (f *Fighter) MoveLeft() {
	if f.dead || f.knockedBack {
		return
	}
	f.movingLeft = true
	f.movingRight = false
}

func (f *Fighter) MoveRight() {
	if f.dead || f.knockedBack {
		return
	}
	f.movingRight = true
	f.movingLeft = false
}

// Jump queues a jump for the next Update. Only a fighter standing exactly on
// the ground can jump.
func (f *Fighter) Jump() {
	if f.dead || f.y != f.ground.SurfaceY() {
		return
	}
	f.jumping = true
}

// Stop clears the attack, block and movement flags. Knockback and a queued
// jump are left alone.
func (f *Fighter) Stop() {
	if f.dead {
		return
	}
	f.attacking = false
	f.blocking = false
	f.movingLeft = false
	f.movingRight = false
}

// TakeDamage subtracts amount from health. Negative amounts count as zero.
func (f *Fighter) TakeDamage(amount int) {
	if f.dead {
		return
	}
	if amount < 0 {
		amount = 0
	}
	f.health -= amount
	if f.health <= 0 {
		f.health = 0
		f.die()
	}
}

func (f *Fighter) die() {
	f.dead = true
}

// Respawn puts the fighter back on its anchor with full health, no
// velocity, facing right. Movement and knockback are cleared as well so a
// fighter that died mid-slide does not keep sliding.
func (f *Fighter) Respawn() {
	f.x = f.respawnX
	f.y = f.respawnY
	f.health = f.stats.MaxHealth
	f.dead = false
	f.jumping = false
	f.attacking = false
	f.blocking = false
	f.movingLeft = false
	f.movingRight = false
	f.knockedBack = false
	f.knockbackDirection = 0
	f.knockbackTime = 0
	f.velocityX = 0
	f.velocityY = 0
	f.facing = FacingRight
}

// Confine keeps the body between minX and maxX, stopping horizontal
// velocity when it hits either side.
func (f *Fighter) Confine(minX, maxX int) {
	if f.dead {
		return
	}
	if f.x < minX {
		f.x = minX
		f.velocityX = math.Max(f.velocityX, 0)
	}
	if right := maxX - f.width; f.x > right {
		f.x = right
		f.velocityX = math.Min(f.velocityX, 0)
	}
}

func (f *Fighter) X() int                  { return f.x }
func (f *Fighter) Y() int                  { return f.y }
func (f *Fighter) Width() int              { return f.width }
func (f *Fighter) Height() int             { return f.height }
func (f *Fighter) Health() int             { return f.health }
func (f *Fighter) MaxHealth() int          { return f.stats.MaxHealth }
func (f *Fighter) IsDead() bool            { return f.dead }
func (f *Fighter) IsJumping() bool         { return f.jumping }
func (f *Fighter) IsAttacking() bool       { return f.attacking }
func (f *Fighter) IsBlocking() bool        { return f.blocking }
func (f *Fighter) IsMovingLeft() bool      { return f.movingLeft }
func (f *Fighter) IsMovingRight() bool     { return f.movingRight }
func (f *Fighter) IsKnockedBack() bool     { return f.knockedBack }
func (f *Fighter) KnockbackDirection() int { return f.knockbackDirection }
func (f *Fighter) KnockbackTime() int      { return f.knockbackTime }
func (f *Fighter) VelocityX() float64      { return f.velocityX }
func (f *Fighter) VelocityY() int          { return f.velocityY }
func (f *Fighter) Facing() Facing          { return f.facing }
func (f *Fighter) IsPlayerOne() bool       { return f.playerOne }
func (f *Fighter) Stats() Stats            { return f.stats }

// RespawnPoint returns the anchor set at construction.
func (f *Fighter) RespawnPoint() (x, y int) {
	return f.respawnX, f.respawnY
}
