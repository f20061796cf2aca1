package scoring

import (
	"math"
	"slices"

	"github.com/ahrav/go-draft/internal/domain"
)

// Selector names one attribute to normalize and knows how to read its raw
// value from a player. Robust selectors get a log1p transform before
// min/max scaling, which compresses heavy-tailed distributions: the
// proportional gap between an outlier and a typical value shrinks while
// rank order is preserved for non-negative inputs.
type Selector struct {
	// Name is the canonical attribute name, used as the key in
	// normalization results.
	Name string

	// Robust enables the log1p pre-transform for this attribute.
	Robust bool

	// Value extracts the raw attribute value from a player.
	Value func(domain.Player) float64
}

// neutralValue is assigned to every player for an attribute with no
// variance in the batch. 0.5 avoids division by zero without biasing the
// distribution toward either end of the [0,1] range.
const neutralValue = 0.5

// BaseSelectors returns selectors for the four base attributes.
// With robust enabled, only the cumulative engagement count and point
// balance get the log1p transform; activity recency and streak length are
// not heavy-tailed enough to warrant it.
func BaseSelectors(robust bool) []Selector {
	return []Selector{
		{Name: domain.AttrEngagement, Robust: robust, Value: func(p domain.Player) float64 { return p.Attributes.Engagement }},
		{Name: domain.AttrActivity, Value: func(p domain.Player) float64 { return p.Attributes.ActivityDays }},
		{Name: domain.AttrPoints, Robust: robust, Value: func(p domain.Player) float64 { return p.Attributes.Points }},
		{Name: domain.AttrStreak, Value: func(p domain.Player) float64 { return p.Attributes.Streak }},
	}
}

// ExtendedSelectors returns one selector per extended attribute name found
// anywhere in the batch, sorted ascending for deterministic iteration.
// Players missing an extended attribute contribute a raw value of 0 for it.
func ExtendedSelectors(players []domain.Player) []Selector {
	names := make(map[string]bool)
	for _, p := range players {
		for name := range p.Attributes.Extended {
			names[name] = true
		}
	}

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	slices.Sort(sorted)

	selectors := make([]Selector, len(sorted))
	for i, name := range sorted {
		selectors[i] = Selector{
			Name:  name,
			Value: func(p domain.Player) float64 { return p.Attributes.Extended[name] },
		}
	}
	return selectors
}

// Normalize maps each selected attribute of each player onto [0,1] using
// batch min/max scaling: (v - min) / (max - min). An attribute with no
// variance in the batch maps every player to the neutral value 0.5.
//
// The result is indexed like players; result[i][sel.Name] is player i's
// normalized value for that attribute. An empty batch yields an empty
// result and no error. Normalize is deterministic and side-effect-free;
// negative raw values are not clamped here (that is a data-source concern).
func Normalize(players []domain.Player, selectors []Selector) []map[string]float64 {
	if len(players) == 0 {
		return nil
	}

	out := make([]map[string]float64, len(players))
	for i := range out {
		out[i] = make(map[string]float64, len(selectors))
	}

	raw := make([]float64, len(players))
	for _, sel := range selectors {
		min, max := math.Inf(1), math.Inf(-1)
		for i, p := range players {
			v := sel.Value(p)
			if sel.Robust {
				v = math.Log1p(v)
			}
			raw[i] = v
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}

		if max == min {
			for i := range players {
				out[i][sel.Name] = neutralValue
			}
			continue
		}

		span := max - min
		for i := range players {
			out[i][sel.Name] = (raw[i] - min) / span
		}
	}
	return out
}
