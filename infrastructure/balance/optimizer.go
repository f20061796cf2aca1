package balance

import (
	"fmt"

	"github.com/ahrav/go-draft/internal/domain"
)

// OptimizerConfig controls the swap-search budget.
type OptimizerConfig struct {
	// MaxIterations bounds the number of improvement rounds. It is the
	// sole safety valve against unbounded work: worst-case cost is
	// O(MaxIterations × k² × (n/k)²) per round, so callers with large
	// populations should budget accordingly. Default 100.
	MaxIterations int `yaml:"max_iterations" json:"max_iterations" validate:"min=1"`
}

// DefaultOptimizerConfig returns the standard optimizer configuration.
func DefaultOptimizerConfig() OptimizerConfig {
	return OptimizerConfig{MaxIterations: 100}
}

// OptimizeResult carries the outcome of one optimization run.
type OptimizeResult struct {
	// Teams is the optimized team set.
	Teams []domain.Team

	// Iterations is the number of rounds actually run, including the
	// final round that found no improving swap.
	Iterations int

	// Improvement is the balance-coefficient delta, final minus initial.
	// It is never negative: only strictly improving swaps are accepted.
	Improvement float64
}

// Optimizer improves an initial team assignment by swapping member pairs
// across teams. It only ever exchanges one member for one member, so team
// sizes, and with them the ≤1 size-difference invariant established by the
// builder, are preserved by construction.
type Optimizer struct {
	config    OptimizerConfig
	evaluator *Evaluator
}

// NewOptimizer creates an Optimizer with a validated configuration, using
// the given evaluator's balance coefficient as its objective.
func NewOptimizer(config OptimizerConfig, evaluator *Evaluator) (*Optimizer, error) {
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("optimizer configuration validation failed: %w", err)
	}
	if evaluator == nil {
		return nil, fmt.Errorf("optimizer requires an evaluator")
	}
	return &Optimizer{config: config, evaluator: evaluator}, nil
}

// Optimize runs up to MaxIterations rounds of first-improvement swap
// search. Each round walks team pairs (i<j, ascending) and member pairs
// (ascending indices) in a fixed order, accepting the first swap that
// strictly increases the balance coefficient; the two affected teams'
// aggregates are recomputed immediately so later comparisons in the same
// round see the updated state. A round with no accepted swap means
// convergence and stops the search early.
//
// Acceptance requires strict improvement, so the objective is monotonically
// non-decreasing and the search cannot cycle; the final state is always the
// best seen.
//
// The input slice is cloned; the caller's teams are never mutated.
// An empty team set fails with domain.ErrEmptyTeamSet.
func (o *Optimizer) Optimize(teams []domain.Team) (*OptimizeResult, error) {
	if len(teams) == 0 {
		return nil, domain.ErrEmptyTeamSet
	}

	work := domain.CloneTeams(teams)
	initial := o.evaluator.BalanceCoefficient(work)
	current := initial

	iterations := 0
	for round := 0; round < o.config.MaxIterations; round++ {
		iterations++
		improved := false

		for i := 0; i < len(work); i++ {
			for j := i + 1; j < len(work); j++ {
				for a := 0; a < len(work[i].Players); a++ {
					for b := 0; b < len(work[j].Players); b++ {
						o.swap(work, i, j, a, b)
						candidate := o.evaluator.BalanceCoefficient(work)
						if candidate > current {
							current = candidate
							improved = true
							continue
						}
						o.swap(work, i, j, a, b)
					}
				}
			}
		}

		if !improved {
			break
		}
	}

	return &OptimizeResult{
		Teams:       work,
		Iterations:  iterations,
		Improvement: current - initial,
	}, nil
}

// swap exchanges member a of team i with member b of team j and refreshes
// both teams' aggregates. Calling it twice with the same arguments restores
// the previous state exactly.
func (o *Optimizer) swap(teams []domain.Team, i, j, a, b int) {
	teams[i].Players[a], teams[j].Players[b] = teams[j].Players[b], teams[i].Players[a]
	teams[i].RecomputeAggregates()
	teams[j].RecomputeAggregates()
}
