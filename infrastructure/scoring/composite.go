package scoring

import (
	"fmt"

	"github.com/ahrav/go-draft/internal/domain"
)

// Weights holds the fixed weight vector for composite scoring. Weights are
// non-negative and are expected, but not required, to sum to 1; no
// re-normalization is performed, so the caller owns keeping scores in a
// usable range.
type Weights struct {
	// Engagement weights the normalized engagement count.
	Engagement float64 `yaml:"engagement" json:"engagement" validate:"min=0"`

	// Activity weights the normalized activity recency.
	Activity float64 `yaml:"activity" json:"activity" validate:"min=0"`

	// Points weights the normalized point balance.
	Points float64 `yaml:"points" json:"points" validate:"min=0"`

	// Streak weights the normalized streak length.
	Streak float64 `yaml:"streak" json:"streak" validate:"min=0"`

	// Secondary weights extended attributes by name. Extended attributes
	// without an entry here contribute nothing to the score.
	Secondary map[string]float64 `yaml:"secondary,omitempty" json:"secondary,omitempty" validate:"omitempty,dive,min=0"`
}

// DefaultWeights returns the standard weight vector: engagement-heavy,
// summing to 1, with no secondary weights.
func DefaultWeights() Weights {
	return Weights{
		Engagement: 0.4,
		Activity:   0.3,
		Points:     0.2,
		Streak:     0.1,
	}
}

// Validate checks the weight vector against its struct constraints.
func (w Weights) Validate() error {
	if err := validate.Struct(w); err != nil {
		return fmt.Errorf("weight validation failed: %w", err)
	}
	return nil
}

// base returns the weight for one of the four base attributes.
func (w Weights) base(name string) float64 {
	switch name {
	case domain.AttrEngagement:
		return w.Engagement
	case domain.AttrActivity:
		return w.Activity
	case domain.AttrPoints:
		return w.Points
	case domain.AttrStreak:
		return w.Streak
	}
	return 0
}

// Score normalizes the batch and computes one composite score per player:
// score = Σ weight_i * normalized_i. For players carrying extended
// attributes the composite decomposes additively into a primary sub-score
// (base attributes) and a secondary sub-score (extended attributes), with
// Total == Primary + Secondary holding exactly so the contribution of each
// side can be audited later.
//
// robust enables the selective log1p pre-transform (see BaseSelectors).
// Scoring a zero-length batch fails with domain.ErrEmptyPopulation.
func Score(players []domain.Player, weights Weights, robust bool) ([]domain.ScoredPlayer, error) {
	if len(players) == 0 {
		return nil, domain.ErrEmptyPopulation
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}

	baseSel := BaseSelectors(robust)
	extSel := ExtendedSelectors(players)
	norms := Normalize(players, append(append([]Selector{}, baseSel...), extSel...))

	scored := make([]domain.ScoredPlayer, len(players))
	for i, p := range players {
		var primary float64
		for _, sel := range baseSel {
			primary += weights.base(sel.Name) * norms[i][sel.Name]
		}

		var secondary float64
		for _, sel := range extSel {
			secondary += weights.Secondary[sel.Name] * norms[i][sel.Name]
		}

		scored[i] = domain.ScoredPlayer{
			Player:         p,
			CompositeScore: primary + secondary,
			PrimaryScore:   primary,
			SecondaryScore: secondary,
		}
	}
	return scored, nil
}
