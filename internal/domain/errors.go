package domain

import (
	"errors"
	"fmt"
)

// Errors raised by the drafting core. Each represents a caller-contract
// violation, not a transient failure: none are retryable without changing
// the inputs, and the core never substitutes default behavior for any of
// them. They are raised at the point of detection and propagated unmodified.
var (
	// ErrEmptyPopulation indicates that scoring or partitioning was
	// attempted on zero players.
	ErrEmptyPopulation = errors.New("player population is empty")

	// ErrInvalidTeamCount indicates that the requested team count is
	// below 2 or exceeds the population size.
	ErrInvalidTeamCount = errors.New("invalid team count")

	// ErrEmptyInput indicates that the sequence generator was asked to
	// pick from an empty list. This is a caller logic bug and should be
	// treated as fatal rather than recovered.
	ErrEmptyInput = errors.New("cannot pick from empty input")

	// ErrEmptyTeamSet indicates that fairness evaluation was requested
	// for an empty team list, i.e. before any assignment happened.
	ErrEmptyTeamSet = errors.New("team set is empty")
)

// InvalidTeamCountError wraps ErrInvalidTeamCount with the offending values
// so that the boundary layer can tell the operator what to fix.
type InvalidTeamCountError struct {
	// TeamCount is the requested number of teams.
	TeamCount int

	// PlayerCount is the size of the population being partitioned.
	PlayerCount int
}

// Error implements the error interface for InvalidTeamCountError.
func (e *InvalidTeamCountError) Error() string {
	return fmt.Sprintf("invalid team count: teams=%d, players=%d (need 2 <= teams <= players)",
		e.TeamCount, e.PlayerCount)
}

// Unwrap returns ErrInvalidTeamCount, supporting errors.Is checks.
func (e *InvalidTeamCountError) Unwrap() error { return ErrInvalidTeamCount }

// NewInvalidTeamCountError creates an InvalidTeamCountError for the given
// team count and population size.
func NewInvalidTeamCountError(teamCount, playerCount int) *InvalidTeamCountError {
	return &InvalidTeamCountError{TeamCount: teamCount, PlayerCount: playerCount}
}

// DuplicateIDError reports player IDs that appear more than once in an
// input set. It is raised by data sources, not by the core, which assumes
// validated input.
type DuplicateIDError struct {
	// IDs lists each duplicated identifier once.
	IDs []int64
}

// Error implements the error interface for DuplicateIDError.
func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate player IDs: %v", e.IDs)
}
