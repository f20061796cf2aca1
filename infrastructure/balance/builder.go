package balance

import (
	"fmt"
	"slices"

	"github.com/ahrav/go-draft/infrastructure/seq"
	"github.com/ahrav/go-draft/internal/domain"
)

// BuilderConfig controls the initial team construction.
type BuilderConfig struct {
	// BandWidth is the score-band threshold: a new band starts whenever a
	// player's composite score differs from the band head's by more than
	// this value. Players within one band are treated as practically tied
	// and shuffled before distribution. Default 0.01, i.e. 1% of the
	// [0,1] score range.
	BandWidth float64 `yaml:"band_width" json:"band_width" validate:"gt=0,lte=1"`
}

// DefaultBuilderConfig returns the standard builder configuration.
func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{BandWidth: 0.01}
}

// Builder performs the initial snake-draft distribution of scored players
// across teams. It owns the working team slice only for the duration of a
// Build call; ownership transfers to the caller on return.
type Builder struct {
	config BuilderConfig
}

// NewBuilder creates a Builder with a validated configuration.
func NewBuilder(config BuilderConfig) (*Builder, error) {
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("builder configuration validation failed: %w", err)
	}
	return &Builder{config: config}, nil
}

// Build partitions players into teamCount teams whose sizes differ by at
// most one, containing every input player exactly once:
//
//  1. Sort by composite score descending.
//  2. Group consecutive players into score bands of width BandWidth.
//  3. Shuffle each band with the generator to erase ordering artifacts a
//     stable sort would otherwise leak into near-ties.
//  4. Walk the concatenated sequence assigning team indices in a snake
//     pattern (0,1,…,k-1,k-1,…,1,0,0,…), so no team accumulates only
//     top-ranked or only bottom-ranked players.
//
// The snake walk visits every team index with frequency ⌊n/k⌋ or ⌈n/k⌉,
// which establishes the ≤1 size-difference invariant directly.
//
// Build fails with domain.ErrEmptyPopulation for an empty input and with a
// domain.InvalidTeamCountError when teamCount < 2 or teamCount exceeds the
// population size.
func (b *Builder) Build(players []domain.ScoredPlayer, teamCount int, gen *seq.Generator) ([]domain.Team, error) {
	if len(players) == 0 {
		return nil, domain.ErrEmptyPopulation
	}
	if teamCount < 2 || teamCount > len(players) {
		return nil, domain.NewInvalidTeamCountError(teamCount, len(players))
	}

	sorted := make([]domain.ScoredPlayer, len(players))
	copy(sorted, players)
	slices.SortStableFunc(sorted, func(a, b domain.ScoredPlayer) int {
		switch {
		case a.CompositeScore > b.CompositeScore:
			return -1
		case a.CompositeScore < b.CompositeScore:
			return 1
		}
		return 0
	})

	ordered := make([]domain.ScoredPlayer, 0, len(sorted))
	for _, band := range b.bands(sorted) {
		ordered = append(ordered, gen.Shuffle(band)...)
	}

	teams := make([]domain.Team, teamCount)
	for i := range teams {
		teams[i].ID = i
	}

	idx, dir := 0, 1
	for _, p := range ordered {
		teams[idx].Players = append(teams[idx].Players, p)
		idx += dir
		if idx == teamCount {
			idx = teamCount - 1
			dir = -1
		} else if idx < 0 {
			idx = 0
			dir = 1
		}
	}

	for i := range teams {
		teams[i].RecomputeAggregates()
	}
	return teams, nil
}

// bands splits a score-descending player sequence into contiguous runs
// whose scores stay within BandWidth of the run's first player.
func (b *Builder) bands(sorted []domain.ScoredPlayer) [][]domain.ScoredPlayer {
	var out [][]domain.ScoredPlayer
	var current []domain.ScoredPlayer
	var head float64

	for _, p := range sorted {
		if len(current) == 0 {
			current = []domain.ScoredPlayer{p}
			head = p.CompositeScore
			continue
		}
		if head-p.CompositeScore > b.config.BandWidth {
			out = append(out, current)
			current = []domain.ScoredPlayer{p}
			head = p.CompositeScore
			continue
		}
		current = append(current, p)
	}
	if len(current) > 0 {
		out = append(out, current)
	}
	return out
}
