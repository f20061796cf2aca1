package balance

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-draft/internal/domain"
)

func TestNewEvaluator_RejectsInvalidConfig(t *testing.T) {
	_, err := NewEvaluator(EvaluatorConfig{MaxPossibleVariance: 0})
	require.Error(t, err)
}

func TestEvaluator_EmptyTeamSetFails(t *testing.T) {
	e := newEvaluator(t)
	_, err := e.Evaluate(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyTeamSet)
}

func TestEvaluator_BalanceCoefficient(t *testing.T) {
	e := newEvaluator(t)

	tests := []struct {
		name  string
		teams []domain.Team
		want  float64
	}{
		{
			name:  "identical averages give perfect coefficient",
			teams: teamsOf(t, []float64{0.4, 0.6}, []float64{0.5, 0.5}),
			want:  1.0,
		},
		{
			name: "maximal imbalance floors at zero",
			// Averages 0 and 1: variance 0.25, exactly the ceiling.
			teams: teamsOf(t, []float64{0.0, 0.0}, []float64{1.0, 1.0}),
			want:  0.0,
		},
		{
			name: "intermediate imbalance",
			// Averages 0.25 and 0.75: variance 0.0625, 1 - 0.0625/0.25 = 0.75.
			teams: teamsOf(t, []float64{0.25}, []float64{0.75}),
			want:  0.75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, e.BalanceCoefficient(tt.teams), 1e-12)
		})
	}
}

func TestEvaluator_Evaluate_Statistics(t *testing.T) {
	e := newEvaluator(t)

	// Averages: 0.2, 0.4, 0.6. Mean 0.4, population variance 0.02666...,
	// std dev ~0.1633.
	teams := teamsOf(t,
		[]float64{0.1, 0.3},
		[]float64{0.3, 0.5},
		[]float64{0.5, 0.7},
	)

	report, err := e.Evaluate(teams)
	require.NoError(t, err)

	assert.InDelta(t, math.Sqrt(0.08/3), report.ScoreStdDev, 1e-12)
	assert.InDelta(t, 0.2, report.ScoreRange.Min, 1e-12)
	assert.InDelta(t, 0.6, report.ScoreRange.Max, 1e-12)
	assert.Equal(t, domain.SizeBalance{MinSize: 2, MaxSize: 2, Difference: 0}, report.SizeBalance)
	assert.InDelta(t, 1-(0.08/3)/0.25, report.BalanceCoefficient, 1e-12)
}

func TestEvaluator_Grades(t *testing.T) {
	e := newEvaluator(t)

	tests := []struct {
		name  string
		teams []domain.Team
		want  domain.Grade
	}{
		{
			name:  "excellent needs tiny spread and equal sizes",
			teams: teamsOf(t, []float64{0.50, 0.52}, []float64{0.49, 0.51}),
			want:  domain.GradeExcellent,
		},
		{
			name: "good allows one size difference",
			// Averages equal, sizes 2 and 3.
			teams: teamsOf(t, []float64{0.5, 0.5}, []float64{0.5, 0.5, 0.5}),
			want:  domain.GradeGood,
		},
		{
			name: "fair for moderate spread",
			// Averages 0.4 and 0.7: std dev 0.15.
			teams: teamsOf(t, []float64{0.4}, []float64{0.7}),
			want:  domain.GradeFair,
		},
		{
			name: "poor for wide spread",
			// Averages 0.1 and 0.9: std dev 0.4.
			teams: teamsOf(t, []float64{0.1}, []float64{0.9}),
			want:  domain.GradePoor,
		},
		{
			name: "poor when sizes diverge by more than one",
			// Negligible score spread but sizes 1 and 3.
			teams: teamsOf(t, []float64{0.5}, []float64{0.5, 0.5, 0.5}),
			want:  domain.GradePoor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := e.Evaluate(tt.teams)
			require.NoError(t, err)
			assert.Equal(t, tt.want, report.Grade)
		})
	}
}

func TestEvaluator_JustificationMentionsGradeAndSizes(t *testing.T) {
	e := newEvaluator(t)
	teams := teamsOf(t, []float64{0.5, 0.5}, []float64{0.5, 0.5, 0.5})

	report, err := e.Evaluate(teams)
	require.NoError(t, err)

	assert.Contains(t, report.Justification, string(report.Grade))
	assert.Contains(t, report.Justification, fmt.Sprintf("%v", []int{2, 3}))
}

func TestEvaluator_EvaluateIsIdempotent(t *testing.T) {
	e := newEvaluator(t)
	teams := teamsOf(t, []float64{0.2, 0.8}, []float64{0.4, 0.6})
	snapshot := domain.CloneTeams(teams)

	first, err := e.Evaluate(teams)
	require.NoError(t, err)
	second, err := e.Evaluate(teams)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, teams, "evaluation must not mutate the teams")
}
