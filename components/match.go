package components

import "github.com/yohamta/donburi"

// PlayerScore tracks a player's match statistics
type PlayerScore struct {
	PlayerIndex int
	KOs         int
	Deaths      int
}

// MatchData stores the running KO tally.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	Scores []PlayerScore
}

var Match = donburi.NewComponentType[MatchData]()

// GetPlayerScore returns the score for a player, creating it if needed
func (m *MatchData) GetPlayerScore(playerIndex int) *PlayerScore {
	for len(m.Scores) <= playerIndex {
		m.Scores = append(m.Scores, PlayerScore{PlayerIndex: len(m.Scores)})
	}
	return &m.Scores[playerIndex]
}

// AddKO increments KO count for a player
func (m *MatchData) AddKO(playerIndex int) {
	m.GetPlayerScore(playerIndex).KOs++
}

// AddDeath increments death count for a player
func (m *MatchData) AddDeath(playerIndex int) {
	m.GetPlayerScore(playerIndex).Deaths++
}

// GetLeader returns the player index with the most KOs (-1 for tie, -2 for no scores)
func (m *MatchData) GetLeader() int {
	if len(m.Scores) == 0 {
		return -2
	}

	maxKOs := -1
	leader := -1
	tied := false

	for _, score := range m.Scores {
		if score.KOs > maxKOs {
			maxKOs = score.KOs
			leader = score.PlayerIndex
			tied = false
		} else if score.KOs == maxKOs {
			tied = true
		}
	}

	if tied {
		return -1
	}
	return leader
}
