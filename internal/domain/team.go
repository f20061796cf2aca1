package domain

// Team is one output partition of the draft: a set of scored players plus
// derived aggregates. Member order within a team carries no meaning.
type Team struct {
	// ID is the zero-based index of this team within the assignment.
	ID int `json:"id" yaml:"id"`

	// Players holds the team's members.
	Players []ScoredPlayer `json:"players" yaml:"players"`

	// Size is the member count, kept in sync by RecomputeAggregates.
	Size int `json:"size" yaml:"size"`

	// TotalScore is the sum of member composite scores.
	TotalScore float64 `json:"total_score" yaml:"total_score"`

	// AverageScore is TotalScore / Size, or 0 for an empty team.
	AverageScore float64 `json:"average_score" yaml:"average_score"`
}

// RecomputeAggregates refreshes Size, TotalScore, and AverageScore from the
// current member list. It must be called after any membership change; the
// optimizer relies on it after every accepted swap.
func (t *Team) RecomputeAggregates() {
	t.Size = len(t.Players)
	var total float64
	for _, p := range t.Players {
		total += p.CompositeScore
	}
	t.TotalScore = total
	if t.Size == 0 {
		t.AverageScore = 0
		return
	}
	t.AverageScore = total / float64(t.Size)
}

// CloneTeams deep-copies a team slice, including member slices, so that
// callers can mutate the copy without aliasing the original. Aggregates are
// carried over unchanged.
func CloneTeams(teams []Team) []Team {
	out := make([]Team, len(teams))
	for i, t := range teams {
		members := make([]ScoredPlayer, len(t.Players))
		copy(members, t.Players)
		out[i] = Team{
			ID:           t.ID,
			Players:      members,
			Size:         t.Size,
			TotalScore:   t.TotalScore,
			AverageScore: t.AverageScore,
		}
	}
	return out
}
