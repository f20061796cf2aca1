package balance

import (
	"fmt"
	"math"

	"github.com/ahrav/go-draft/internal/domain"
)

// EvaluatorConfig controls fairness scoring.
type EvaluatorConfig struct {
	// MaxPossibleVariance is the theoretical variance ceiling used to
	// scale the balance coefficient. 0.25 is the maximum variance of
	// values bounded in [0,1].
	MaxPossibleVariance float64 `yaml:"max_possible_variance" json:"max_possible_variance" validate:"gt=0"`
}

// DefaultEvaluatorConfig returns the standard evaluator configuration.
func DefaultEvaluatorConfig() EvaluatorConfig {
	return EvaluatorConfig{MaxPossibleVariance: 0.25}
}

// Grade thresholds on (score standard deviation, size difference).
// These cutoffs are fixed product constants, not tunables.
const (
	excellentStdDev = 0.05
	goodStdDev      = 0.10
	fairStdDev      = 0.20
)

// Evaluator computes partition-level balance metrics. It holds no per-call
// state: every method is a pure function of its input, safe to call
// repeatedly and from the optimizer's inner loop.
type Evaluator struct {
	config EvaluatorConfig
}

// NewEvaluator creates an Evaluator with a validated configuration.
func NewEvaluator(config EvaluatorConfig) (*Evaluator, error) {
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("evaluator configuration validation failed: %w", err)
	}
	return &Evaluator{config: config}, nil
}

// BalanceCoefficient is the optimizer's objective:
// max(0, 1 - variance(teamAverageScores) / MaxPossibleVariance).
// It is 1.0 for perfectly score-balanced teams and decreases toward 0 as
// imbalance grows. An empty team set yields 0.
func (e *Evaluator) BalanceCoefficient(teams []domain.Team) float64 {
	if len(teams) == 0 {
		return 0
	}
	coefficient := 1 - variance(teamAverages(teams))/e.config.MaxPossibleVariance
	return math.Max(0, coefficient)
}

// Evaluate computes the full fairness report for a team set: score spread,
// size balance, balance coefficient, qualitative grade, and a templated
// justification sentence. It never mutates its input and is idempotent.
// An empty team set fails with domain.ErrEmptyTeamSet.
func (e *Evaluator) Evaluate(teams []domain.Team) (*domain.FairnessReport, error) {
	if len(teams) == 0 {
		return nil, domain.ErrEmptyTeamSet
	}

	averages := teamAverages(teams)
	stdDev := math.Sqrt(variance(averages))

	scoreRange := domain.ScoreRange{Min: averages[0], Max: averages[0]}
	for _, avg := range averages[1:] {
		scoreRange.Min = math.Min(scoreRange.Min, avg)
		scoreRange.Max = math.Max(scoreRange.Max, avg)
	}

	sizes := make([]int, len(teams))
	minSize, maxSize := teams[0].Size, teams[0].Size
	for i, t := range teams {
		sizes[i] = t.Size
		if t.Size < minSize {
			minSize = t.Size
		}
		if t.Size > maxSize {
			maxSize = t.Size
		}
	}
	sizeBalance := domain.SizeBalance{
		MinSize:    minSize,
		MaxSize:    maxSize,
		Difference: maxSize - minSize,
	}

	grade := gradeFor(stdDev, sizeBalance.Difference)

	return &domain.FairnessReport{
		ScoreStdDev:        stdDev,
		ScoreRange:         scoreRange,
		SizeBalance:        sizeBalance,
		BalanceCoefficient: e.BalanceCoefficient(teams),
		Grade:              grade,
		Justification: fmt.Sprintf(
			"Balance is %s: team average scores deviate by %.1f%% across team sizes %v.",
			grade, stdDev*100, sizes),
	}, nil
}

// gradeFor maps the score standard deviation and size difference onto the
// fixed qualitative scale.
func gradeFor(stdDev float64, sizeDifference int) domain.Grade {
	switch {
	case stdDev < excellentStdDev && sizeDifference == 0:
		return domain.GradeExcellent
	case stdDev < goodStdDev && sizeDifference <= 1:
		return domain.GradeGood
	case stdDev < fairStdDev && sizeDifference <= 1:
		return domain.GradeFair
	}
	return domain.GradePoor
}

// teamAverages extracts the per-team average composite scores.
func teamAverages(teams []domain.Team) []float64 {
	averages := make([]float64, len(teams))
	for i, t := range teams {
		averages[i] = t.AverageScore
	}
	return averages
}

// variance is the population variance of values; 0 for an empty slice.
func variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return sq / float64(len(values))
}
