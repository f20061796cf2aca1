package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTeam_RecomputeAggregates(t *testing.T) {
	team := Team{ID: 0, Players: []ScoredPlayer{
		{Player: Player{ID: 1}, CompositeScore: 0.6},
		{Player: Player{ID: 2}, CompositeScore: 0.2},
	}}

	team.RecomputeAggregates()
	assert.Equal(t, 2, team.Size)
	assert.InDelta(t, 0.8, team.TotalScore, 1e-12)
	assert.InDelta(t, 0.4, team.AverageScore, 1e-12)

	team.Players = nil
	team.RecomputeAggregates()
	assert.Zero(t, team.Size)
	assert.Zero(t, team.TotalScore)
	assert.Zero(t, team.AverageScore, "empty team average is zero, not NaN")
}

func TestCloneTeams_NoAliasing(t *testing.T) {
	original := []Team{{ID: 0, Players: []ScoredPlayer{{Player: Player{ID: 1}}, {Player: Player{ID: 2}}}}}
	original[0].RecomputeAggregates()

	cloned := CloneTeams(original)
	cloned[0].Players[0] = ScoredPlayer{Player: Player{ID: 99}}

	assert.Equal(t, int64(1), original[0].Players[0].ID)
	assert.Equal(t, int64(99), cloned[0].Players[0].ID)
	assert.Equal(t, original[0].Size, cloned[0].Size)
}

func TestAttributes_Base(t *testing.T) {
	attrs := Attributes{Engagement: 10, ActivityDays: 3, Points: 250, Streak: 4}

	for name, want := range map[string]float64{
		AttrEngagement: 10,
		AttrActivity:   3,
		AttrPoints:     250,
		AttrStreak:     4,
	} {
		got, ok := attrs.Base(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	_, ok := attrs.Base("unknown")
	assert.False(t, ok)
}

func TestInvalidTeamCountError(t *testing.T) {
	err := NewInvalidTeamCountError(1, 5)

	assert.True(t, errors.Is(err, ErrInvalidTeamCount))
	assert.Contains(t, err.Error(), "teams=1")
	assert.Contains(t, err.Error(), "players=5")

	var typed *InvalidTeamCountError
	assert.True(t, errors.As(error(err), &typed))
	assert.Equal(t, 1, typed.TeamCount)
}

func TestDuplicateIDError(t *testing.T) {
	err := &DuplicateIDError{IDs: []int64{3, 7}}
	assert.Contains(t, err.Error(), "[3 7]")
}
