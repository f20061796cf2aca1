package draftengine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roster(n int) []Player {
	players := make([]Player, n)
	for i := range players {
		players[i] = Player{
			ID:   int64(i + 1),
			Name: "player",
			Attributes: Attributes{
				Engagement:   float64(10 * (i + 1)),
				ActivityDays: float64(i + 1),
				Points:       float64(100 * (i + 1)),
				Streak:       float64(i % 5),
			},
		}
	}
	return players
}

func TestEngine_Draft(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)

	result, err := engine.Draft(context.Background(), roster(12), 3)
	require.NoError(t, err)

	assert.Equal(t, 12, result.PlayerCount)
	assert.Len(t, result.Teams, 3)
	for _, team := range result.Teams {
		assert.Equal(t, 4, team.Size)
	}
	require.NotNil(t, result.Fairness)
	assert.NotEmpty(t, result.RunID)
}

func TestEngine_Draft_Deterministic(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)

	first, err := engine.Draft(context.Background(), roster(10), 2)
	require.NoError(t, err)
	second, err := engine.Draft(context.Background(), roster(10), 2)
	require.NoError(t, err)

	assert.Equal(t, first.EffectiveSeed, second.EffectiveSeed)
	for i := range first.Teams {
		for j := range first.Teams[i].Players {
			assert.Equal(t, first.Teams[i].Players[j].ID, second.Teams[i].Players[j].ID)
		}
	}
	assert.NotEqual(t, first.RunID, second.RunID, "run IDs are per-run metadata")
}

func TestEngine_AssignTeamsSeeded(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)

	scored, err := engine.ScorePlayers(context.Background(), roster(8))
	require.NoError(t, err)

	seeded, err := engine.AssignTeamsSeeded(context.Background(), scored, 2, 42)
	require.NoError(t, err)
	unseeded, err := engine.AssignTeams(context.Background(), scored, 2)
	require.NoError(t, err)

	assert.NotEqual(t, unseeded.EffectiveSeed, seeded.EffectiveSeed)
}

func TestEngine_InvalidInputs(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)
	ctx := context.Background()

	_, err = engine.Draft(ctx, nil, 2)
	assert.ErrorIs(t, err, ErrEmptyPopulation)

	scored, err := engine.ScorePlayers(ctx, roster(3))
	require.NoError(t, err)

	_, err = engine.AssignTeams(ctx, scored, 1)
	assert.ErrorIs(t, err, ErrInvalidTeamCount)
	_, err = engine.AssignTeams(ctx, scored, 4)
	assert.ErrorIs(t, err, ErrInvalidTeamCount)

	_, err = engine.EvaluateFairness(nil)
	assert.ErrorIs(t, err, ErrEmptyTeamSet)
}

func TestEngine_OptionValidation(t *testing.T) {
	_, err := New(WithMaxIterations(0))
	assert.Error(t, err, "iteration budget below one must be rejected")
}

func TestEngine_WithoutOptimization(t *testing.T) {
	engine, err := New(WithoutOptimization())
	require.NoError(t, err)

	result, err := engine.Draft(context.Background(), roster(9), 3)
	require.NoError(t, err)
	assert.Zero(t, result.OptimizerIterations)
	assert.Zero(t, result.Improvement)
}

func TestEngine_ExploreSeeds(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)

	scored, err := engine.ScorePlayers(context.Background(), roster(12))
	require.NoError(t, err)

	best, err := engine.ExploreSeeds(context.Background(), scored, 3, []uint32{1, 2, 3, 4})
	require.NoError(t, err)
	require.NotNil(t, best.Fairness)

	for _, seed := range []uint32{1, 2, 3, 4} {
		single, err := engine.AssignTeamsSeeded(context.Background(), scored, 3, seed)
		require.NoError(t, err)
		assert.LessOrEqual(t, single.Fairness.BalanceCoefficient, best.Fairness.BalanceCoefficient)
	}
}
