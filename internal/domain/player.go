// Package domain contains pure, dependency-free domain models and types
// for the team drafting engine.
package domain

// Attribute names for the base scoring inputs. These are the canonical keys
// used by normalization, weighting, and reporting.
const (
	// AttrEngagement is the cumulative engagement count (e.g., games played).
	AttrEngagement = "engagement_count"

	// AttrActivity is the number of days since the player was last active.
	AttrActivity = "recent_activity_days"

	// AttrPoints is the player's cumulative point balance.
	AttrPoints = "point_balance"

	// AttrStreak is the player's current streak length.
	AttrStreak = "streak_length"
)

// Attributes holds the raw numeric inputs for one player. The base four
// attributes are always present; Extended carries optional secondary
// attributes derived upstream (e.g., from interaction logs). All values are
// immutable once loaded.
type Attributes struct {
	// Engagement is the cumulative engagement count.
	Engagement float64 `json:"engagement_count" yaml:"engagement_count"`

	// ActivityDays is the recency of activity, in days.
	ActivityDays float64 `json:"recent_activity_days" yaml:"recent_activity_days"`

	// Points is the cumulative point balance.
	Points float64 `json:"point_balance" yaml:"point_balance"`

	// Streak is the current streak length.
	Streak float64 `json:"streak_length" yaml:"streak_length"`

	// Extended holds optional secondary attributes keyed by name.
	// It is nil when the player carries only the base attributes.
	Extended map[string]float64 `json:"extended,omitempty" yaml:"extended,omitempty"`
}

// Base returns the value of one of the four base attributes by its
// canonical name. The second return value is false for unknown names.
func (a Attributes) Base(name string) (float64, bool) {
	switch name {
	case AttrEngagement:
		return a.Engagement, true
	case AttrActivity:
		return a.ActivityDays, true
	case AttrPoints:
		return a.Points, true
	case AttrStreak:
		return a.Streak, true
	}
	return 0, false
}

// Player represents one schedulable entity to be scored and drafted onto a
// team. The ID must be unique within the working set; uniqueness is a
// validation concern of the data source, not of the core.
type Player struct {
	// ID uniquely identifies this player within the input set.
	ID int64 `json:"id" yaml:"id"`

	// Name is an optional display name used only by reporting.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Attributes holds the raw numeric inputs for scoring.
	Attributes Attributes `json:"attributes" yaml:"attributes"`
}

// ScoredPlayer is a Player with its composite fitness score attached.
// Composite scores are batch-relative: normalization depends on the batch
// min/max, so scores are comparable only within a single scoring run.
type ScoredPlayer struct {
	Player

	// CompositeScore is the weighted sum of normalized attributes,
	// in [0,1] for the default weight configuration.
	CompositeScore float64 `json:"composite_score" yaml:"composite_score"`

	// PrimaryScore is the contribution of the base attributes.
	// CompositeScore == PrimaryScore + SecondaryScore holds exactly.
	PrimaryScore float64 `json:"primary_score" yaml:"primary_score"`

	// SecondaryScore is the contribution of extended attributes,
	// zero when the player carries none.
	SecondaryScore float64 `json:"secondary_score" yaml:"secondary_score"`
}
