package fighter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriveAttacksOncePerPress(t *testing.T) {
	attacker := newTestFighter(0)
	opponent := newTestFighter(60)

	hit, err := attacker.Drive(Intent{Attack: true}, opponent)
	require.NoError(t, err)
	assert.True(t, hit)

	// Holding the button is not another press.
	hit, err = attacker.Drive(Intent{}, opponent)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.True(t, attacker.IsAttacking(), "sword stays out until released")
	assert.Equal(t, 90, opponent.Health())

	_, err = attacker.Drive(Intent{Release: true}, opponent)
	require.NoError(t, err)
	assert.False(t, attacker.IsAttacking())
}

func TestDriveReleaseReappliesHeldActions(t *testing.T) {
	f := newTestFighter(0)
	opponent := newTestFighter(400)

	_, err := f.Drive(Intent{MoveRight: true, Block: true}, opponent)
	require.NoError(t, err)
	require.True(t, f.IsMovingRight())
	require.True(t, f.IsBlocking())

	// Block released, still walking right.
	_, err = f.Drive(Intent{MoveRight: true, Release: true}, opponent)
	require.NoError(t, err)
	assert.True(t, f.IsMovingRight())
	assert.False(t, f.IsBlocking())
}

func TestDriveLeftWinsOverRight(t *testing.T) {
	f := newTestFighter(0)
	_, err := f.Drive(Intent{MoveLeft: true, MoveRight: true}, newTestFighter(400))
	require.NoError(t, err)
	assert.True(t, f.IsMovingLeft())
	assert.False(t, f.IsMovingRight())
}

func TestDriveJump(t *testing.T) {
	f := newTestFighter(0)
	_, err := f.Drive(Intent{Jump: true}, newTestFighter(400))
	require.NoError(t, err)
	assert.True(t, f.IsJumping())
}

func TestDriveNilOpponent(t *testing.T) {
	f := newTestFighter(0)

	_, err := f.Drive(Intent{MoveLeft: true}, nil)
	assert.NoError(t, err, "no attack, no opponent needed")

	_, err = f.Drive(Intent{Attack: true}, nil)
	assert.ErrorIs(t, err, ErrNilOpponent)
}

func TestInReach(t *testing.T) {
	f := newTestFighter(0)
	assert.True(t, f.InReach(newTestFighter(60)))
	assert.False(t, f.InReach(newTestFighter(100)))
	assert.False(t, f.InReach(nil))
}

func TestClashTradesHits(t *testing.T) {
	a := newTestFighter(0)
	b := newTestFighter(60)
	b.MoveLeft()
	b.Update()
	b.Stop()
	require.Equal(t, FacingLeft, b.Facing())

	aHit, bHit, err := Clash(a, b, true, true)
	require.NoError(t, err)
	assert.True(t, aHit)
	assert.True(t, bHit)
	assert.Equal(t, 90, a.Health())
	assert.Equal(t, 90, b.Health())
	assert.Equal(t, -1, a.KnockbackDirection())
	assert.Equal(t, 1, b.KnockbackDirection())
}

func TestClashLethalTradeKillsBoth(t *testing.T) {
	a := newTestFighter(0)
	b := newTestFighter(60)
	b.MoveLeft()
	b.Update()
	b.Stop()
	a.TakeDamage(90)
	b.TakeDamage(90)

	aHit, bHit, err := Clash(a, b, true, true)
	require.NoError(t, err)
	assert.True(t, aHit)
	assert.True(t, bHit, "the second swing is judged before the first lands")
	assert.True(t, a.IsDead())
	assert.True(t, b.IsDead())
}

func TestClashSingleSwing(t *testing.T) {
	a := newTestFighter(0)
	b := newTestFighter(60)

	aHit, bHit, err := Clash(a, b, true, false)
	require.NoError(t, err)
	assert.True(t, aHit)
	assert.False(t, bHit)
	assert.False(t, b.IsAttacking())
	assert.Equal(t, 100, a.Health())
	assert.Equal(t, 90, b.Health())
}

func TestClashRespectsBlockAndDeath(t *testing.T) {
	a := newTestFighter(0)
	b := newTestFighter(60)
	b.Block()

	aHit, _, err := Clash(a, b, true, false)
	require.NoError(t, err)
	assert.False(t, aHit)
	assert.True(t, a.IsAttacking())
	assert.Equal(t, 100, b.Health())

	b.TakeDamage(100)
	aHit, bHit, err := Clash(a, b, true, true)
	require.NoError(t, err)
	assert.False(t, aHit)
	assert.False(t, bHit)
	assert.False(t, b.IsAttacking(), "a dead fighter does not swing")
}

func TestClashNilOpponent(t *testing.T) {
	_, _, err := Clash(newTestFighter(0), nil, true, false)
	assert.ErrorIs(t, err, ErrNilOpponent)
}
