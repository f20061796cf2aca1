// Package seq provides the seeded deterministic sequence generator that
// drives tie-break shuffling in the drafting pipeline. The generator is the
// only mutable state in the core: each drafting run owns exactly one
// instance, and instances must never be shared across runs or goroutines.
package seq

import (
	"github.com/ahrav/go-draft/internal/domain"
)

// Generator is a small deterministic pseudo-random engine built on the
// mulberry32 mixing function. The 32-bit state matches the 32-bit effective
// seed contract, and owning the algorithm (rather than delegating to the
// runtime's math/rand) pins the output stream independently of Go version.
//
// Generator is NOT safe for concurrent use. It is used only to break ties
// among near-equal-fitness players, never to decide the coarse partition.
type Generator struct {
	state uint32
}

// New creates a Generator seeded with the given effective seed.
// Equal seeds always produce identical sequences.
func New(seed uint32) *Generator {
	return &Generator{state: seed}
}

// Next advances the generator and returns a float64 in [0, 1).
func (g *Generator) Next() float64 {
	g.state += 0x6D2B79F5
	z := g.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	z ^= z >> 14
	return float64(z) / 4294967296.0
}

// IntBetween returns an integer in [min, max] inclusive, computed as
// floor(Next() * (max-min+1)) + min. min must not exceed max.
func (g *Generator) IntBetween(min, max int) int {
	return int(g.Next()*float64(max-min+1)) + min
}

// Shuffle returns a Fisher–Yates permutation of players driven by
// IntBetween. The input slice is never modified; the permutation is
// applied to a copy.
func (g *Generator) Shuffle(players []domain.ScoredPlayer) []domain.ScoredPlayer {
	out := make([]domain.ScoredPlayer, len(players))
	copy(out, players)
	for i := len(out) - 1; i > 0; i-- {
		j := g.IntBetween(0, i)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Pick returns one uniformly chosen element of players.
// It fails with domain.ErrEmptyInput when players is empty; that condition
// signals a caller logic bug (an empty score band) and should be treated
// as fatal rather than recovered.
func (g *Generator) Pick(players []domain.ScoredPlayer) (domain.ScoredPlayer, error) {
	if len(players) == 0 {
		return domain.ScoredPlayer{}, domain.ErrEmptyInput
	}
	return players[g.IntBetween(0, len(players)-1)], nil
}
