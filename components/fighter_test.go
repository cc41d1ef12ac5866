package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTickAliveDoesNothing(t *testing.T) {
	var d FighterData
	for i := 0; i < 5; i++ {
		ko, respawn := d.Tick(false, 90)
		assert.False(t, ko)
		assert.False(t, respawn)
	}
	assert.Equal(t, 0, d.RespawnTimer)
}

func TestTickCreditsKOOnce(t *testing.T) {
	var d FighterData
	kos := 0

	ko, respawn := d.Tick(true, 90)
	assert.True(t, ko)
	assert.False(t, respawn)
	assert.Equal(t, 90, d.RespawnTimer)

	for i := 0; i < 50; i++ {
		ko, _ = d.Tick(true, 90)
		if ko {
			kos++
		}
	}
	assert.Zero(t, kos, "staying down is not another knockout")
}

func TestTickRespawnsAfterDelay(t *testing.T) {
	const delay = 5
	var d FighterData

	d.Tick(true, delay)
	for i := 1; i < delay; i++ {
		_, respawn := d.Tick(true, delay)
		assert.False(t, respawn, "frame %d", i)
	}
	_, respawn := d.Tick(true, delay)
	assert.True(t, respawn)
	assert.False(t, d.WasDead)

	// After the respawn the fighter is alive again and a new KO counts.
	_, respawn = d.Tick(false, delay)
	assert.False(t, respawn)
	ko, _ := d.Tick(true, delay)
	assert.True(t, ko)
}

func TestTickZeroDelayRespawnsOnKOFrame(t *testing.T) {
	var d FighterData

	ko, respawn := d.Tick(true, 0)
	assert.True(t, ko)
	assert.True(t, respawn)
	assert.Equal(t, 0, d.RespawnTimer)
}
