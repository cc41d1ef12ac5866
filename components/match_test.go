package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchTally(t *testing.T) {
	var m MatchData
	assert.Equal(t, -2, m.GetLeader())

	m.AddKO(1)
	m.AddDeath(0)
	assert.Len(t, m.Scores, 2, "scores grow to cover the player index")
	assert.Equal(t, 1, m.GetLeader())
	assert.Equal(t, 1, m.GetPlayerScore(0).Deaths)

	m.AddKO(0)
	assert.Equal(t, -1, m.GetLeader(), "equal KOs is a tie")
}

func TestPlayerInputEdges(t *testing.T) {
	var p PlayerInputData
	p.CurrentInput[ActionAttack] = true

	s := p.Action(ActionAttack)
	assert.True(t, s.Pressed)
	assert.True(t, s.JustPressed)
	assert.False(t, p.AnyReleased())

	p.PreviousInput = p.CurrentInput
	p.CurrentInput[ActionAttack] = false
	assert.True(t, p.Action(ActionAttack).JustReleased)
	assert.True(t, p.AnyReleased())
}
