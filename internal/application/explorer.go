package application

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/ahrav/go-draft/internal/domain"
)

// maxConcurrentRuns bounds the seed-exploration fan-out. Runs are CPU-bound,
// so a modest limit keeps large seed sets from oversubscribing the host.
const maxConcurrentRuns = 8

// Explore runs the full assignment once per candidate seed, in parallel,
// and returns the result with the highest balance coefficient. Each run
// gets its own sequence generator (built inside Assign), so concurrent runs
// share nothing mutable.
//
// The outcome is deterministic for a given seed set: seeds are considered
// in ascending order and a later seed replaces the incumbent only on a
// strictly higher coefficient, so ties go to the lowest seed.
func (p *Pipeline) Explore(
	ctx context.Context,
	players []domain.ScoredPlayer,
	teamCount int,
	seeds []uint32,
) (*domain.AssignmentResult, error) {
	if len(seeds) == 0 {
		return nil, fmt.Errorf("explore requires at least one candidate seed")
	}

	ordered := slices.Clone(seeds)
	slices.Sort(ordered)
	ordered = slices.Compact(ordered)

	results := make([]*domain.AssignmentResult, len(ordered))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRuns)

	for i, seed := range ordered {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := p.Assign(ctx, players, teamCount, &seed)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	best := results[0]
	for _, result := range results[1:] {
		if result.Fairness.BalanceCoefficient > best.Fairness.BalanceCoefficient {
			best = result
		}
	}
	return best, nil
}
