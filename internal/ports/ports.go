// Package ports defines the core interfaces that form the contract between
// the domain/application layers and the infrastructure layer.
// These interfaces enable dependency inversion and make the system testable.
package ports

import (
	"context"
	"time"

	"github.com/ahrav/go-draft/internal/domain"
)

// DataSource supplies validated players to the drafting pipeline.
// Implementations own file parsing and input validation: returned players
// must carry unique IDs, all required numeric fields, and non-negative
// attribute values (negatives pre-clamped). The core performs no file I/O
// and trusts this contract, rechecking only population-size and team-count
// boundaries.
type DataSource interface {
	// Load reads and validates the full player set.
	// It returns an error for malformed rows, missing columns, or
	// duplicate IDs, naming the offending rows so the operator can fix
	// the input rather than guess.
	Load(ctx context.Context) ([]domain.Player, error)
}

// Assigner produces a complete team assignment from scored players.
// The application pipeline implements it; middleware decorates it with
// tracing and metrics without the caller noticing.
type Assigner interface {
	// Assign partitions the scored players into teamCount teams.
	// callerSeed may be nil, in which case the effective seed is derived
	// purely from the player IDs. Implementations must be deterministic:
	// identical inputs always yield identical team membership.
	Assign(ctx context.Context, players []domain.ScoredPlayer, teamCount int, callerSeed *uint32) (*domain.AssignmentResult, error)
}

// Reporter renders an assignment result for human or machine consumption.
// The core prescribes no format; console tables, CSV, and JSON are all
// legitimate implementations.
type Reporter interface {
	// Report writes a rendering of the result to the reporter's sink.
	Report(ctx context.Context, result *domain.AssignmentResult) error
}

// MetricsCollector defines the interface for collecting operational metrics.
// Implementations should integrate with observability platforms like
// Prometheus, OpenTelemetry, or custom monitoring solutions.
type MetricsCollector interface {
	// RecordLatency records the execution time of an operation.
	// The labels map provides additional context for the metric.
	RecordLatency(operation string, duration time.Duration, labels map[string]string)

	// RecordCounter increments a counter metric.
	// This is useful for tracking events like completed runs or errors.
	RecordCounter(metric string, value float64, labels map[string]string)

	// RecordGauge sets the current value of a gauge metric.
	// This is useful for tracking values like the latest balance
	// coefficient.
	RecordGauge(metric string, value float64, labels map[string]string)

	// RecordHistogram records a value in a histogram.
	// This is useful for tracking distributions like optimizer
	// iteration counts.
	RecordHistogram(metric string, value float64, labels map[string]string)
}
