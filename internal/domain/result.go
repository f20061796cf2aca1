package domain

import "time"

// Grade is the qualitative fairness classification of an assignment.
type Grade string

// Fairness grades, from best to worst. Thresholds are fixed; see
// the fairness evaluator for the exact cutoffs.
const (
	GradeExcellent Grade = "excellent"
	GradeGood      Grade = "good"
	GradeFair      Grade = "fair"
	GradePoor      Grade = "poor"
)

// ScoreRange is the min/max of per-team average composite scores.
type ScoreRange struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// SizeBalance summarizes team size spread. Difference is MaxSize - MinSize
// and must be ≤ 1 for any valid assignment.
type SizeBalance struct {
	MinSize    int `json:"min_size" yaml:"min_size"`
	MaxSize    int `json:"max_size" yaml:"max_size"`
	Difference int `json:"difference" yaml:"difference"`
}

// FairnessReport is a derived, read-only aggregate over an assignment.
// It is recomputed on demand and never mutates the result it describes.
type FairnessReport struct {
	// ScoreStdDev is the population standard deviation of per-team
	// average composite scores.
	ScoreStdDev float64 `json:"score_std_dev" yaml:"score_std_dev"`

	// ScoreRange is the spread of per-team average scores.
	ScoreRange ScoreRange `json:"score_range" yaml:"score_range"`

	// SizeBalance is the spread of team sizes.
	SizeBalance SizeBalance `json:"size_balance" yaml:"size_balance"`

	// BalanceCoefficient is the optimizer's objective: 1.0 for perfectly
	// score-balanced teams, decreasing toward 0 as imbalance grows.
	BalanceCoefficient float64 `json:"balance_coefficient" yaml:"balance_coefficient"`

	// Grade is the qualitative classification derived from ScoreStdDev
	// and SizeBalance.Difference.
	Grade Grade `json:"grade" yaml:"grade"`

	// Justification is a human-readable sentence explaining the grade.
	// It is purely descriptive and never drives control flow.
	Justification string `json:"justification" yaml:"justification"`
}

// AssignmentResult is the full output of one drafting run. It is created
// once per run and immutable thereafter.
type AssignmentResult struct {
	// RunID uniquely identifies this run (a UUID).
	RunID string `json:"run_id" yaml:"run_id"`

	// Teams holds the final partition, ordered by team ID.
	Teams []Team `json:"teams" yaml:"teams"`

	// PlayerCount is the total number of players assigned.
	PlayerCount int `json:"player_count" yaml:"player_count"`

	// TeamCount is the number of teams requested and produced.
	TeamCount int `json:"team_count" yaml:"team_count"`

	// EffectiveSeed is the seed that actually drove the deterministic
	// sequence generator: the caller seed XOR the data-derived seed, or
	// the data seed alone when no caller seed was supplied.
	EffectiveSeed uint32 `json:"effective_seed" yaml:"effective_seed"`

	// OptimizerIterations is the number of improvement rounds run,
	// zero when optimization was disabled.
	OptimizerIterations int `json:"optimizer_iterations" yaml:"optimizer_iterations"`

	// Improvement is the balance-coefficient delta achieved by the
	// optimizer (final minus initial).
	Improvement float64 `json:"improvement" yaml:"improvement"`

	// Fairness is the report computed over the final teams.
	Fairness *FairnessReport `json:"fairness,omitempty" yaml:"fairness,omitempty"`

	// Timestamp records when this result was created. It is metadata
	// only and plays no part in the assignment itself.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}
