// Package draftengine is the public facade for the drafting library. It
// wraps the internal pipeline behind a small, stable API and re-exports
// the domain types callers need, so external code never reaches into
// internal packages.
package draftengine

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/ahrav/go-draft/infrastructure/middleware"
	"github.com/ahrav/go-draft/internal/application"
	"github.com/ahrav/go-draft/internal/domain"
)

// Re-exported domain types. Aliases keep the facade and the internal
// packages structurally identical, so values flow through without
// conversion.
type (
	// Player is a raw participant with observable activity attributes.
	Player = domain.Player

	// Attributes holds the measurable inputs to composite scoring.
	Attributes = domain.Attributes

	// ScoredPlayer is a player annotated with composite score components.
	ScoredPlayer = domain.ScoredPlayer

	// Team is one partition of the scored population.
	Team = domain.Team

	// AssignmentResult is the full outcome of a drafting run.
	AssignmentResult = domain.AssignmentResult

	// FairnessReport grades how balanced a set of teams is.
	FairnessReport = domain.FairnessReport

	// Config is the complete engine configuration.
	Config = application.Config
)

// Sentinel errors callers can match with errors.Is.
var (
	ErrEmptyPopulation  = domain.ErrEmptyPopulation
	ErrInvalidTeamCount = domain.ErrInvalidTeamCount
	ErrEmptyTeamSet     = domain.ErrEmptyTeamSet
)

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() Config { return application.DefaultConfig() }

// Engine is the top-level entry point: score a population, draft it into
// teams, and grade the result. An Engine is immutable after construction
// and safe for concurrent use.
type Engine struct {
	pipeline *application.Pipeline
	config   Config
}

// Option customizes engine construction.
type Option func(*engineOptions)

type engineOptions struct {
	config       Config
	pipelineOpts []application.Option
}

// WithConfig replaces the default configuration wholesale.
func WithConfig(config Config) Option {
	return func(o *engineOptions) { o.config = config }
}

// WithRobustScoring enables the log1p pre-transform for heavy-tailed
// attributes before normalization.
func WithRobustScoring() Option {
	return func(o *engineOptions) { o.config.RobustScoring = true }
}

// WithoutOptimization skips the swap-refinement stage; teams keep their
// initial snake-draft composition.
func WithoutOptimization() Option {
	return func(o *engineOptions) { o.config.Optimize = false }
}

// WithMaxIterations caps the optimizer's swap-search rounds.
func WithMaxIterations(n int) Option {
	return func(o *engineOptions) { o.config.Optimizer.MaxIterations = n }
}

// WithPrometheusMetrics registers drafting metrics with reg and wires the
// collector into the engine. Pass nil to use the global registry.
func WithPrometheusMetrics(reg prometheus.Registerer) Option {
	return func(o *engineOptions) {
		o.pipelineOpts = append(o.pipelineOpts,
			application.WithMetrics(middleware.NewPrometheusMetrics(reg)))
	}
}

// WithTracer emits one OpenTelemetry span per drafting stage.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *engineOptions) {
		o.pipelineOpts = append(o.pipelineOpts, application.WithTracer(tracer))
	}
}

// New constructs an Engine, validating the effective configuration.
func New(opts ...Option) (*Engine, error) {
	options := engineOptions{config: application.DefaultConfig()}
	for _, opt := range opts {
		opt(&options)
	}

	pipeline, err := application.NewPipeline(options.config, options.pipelineOpts...)
	if err != nil {
		return nil, err
	}
	return &Engine{pipeline: pipeline, config: options.config}, nil
}

// ScorePlayers computes batch-relative composite scores for the population.
func (e *Engine) ScorePlayers(ctx context.Context, players []Player) ([]ScoredPlayer, error) {
	return e.pipeline.ScorePlayers(ctx, players)
}

// AssignTeams drafts the scored population into teamCount teams using a
// seed derived from the player IDs. The same population always produces
// the same teams.
func (e *Engine) AssignTeams(ctx context.Context, players []ScoredPlayer, teamCount int) (*AssignmentResult, error) {
	return e.pipeline.Assign(ctx, players, teamCount, nil)
}

// AssignTeamsSeeded drafts with an explicit caller seed, which is combined
// with the data-derived seed. Different seeds reshuffle only within score
// bands; the draft stays score-balanced.
func (e *Engine) AssignTeamsSeeded(ctx context.Context, players []ScoredPlayer, teamCount int, seed uint32) (*AssignmentResult, error) {
	return e.pipeline.Assign(ctx, players, teamCount, &seed)
}

// Draft is the one-call path: score raw players, then assign them.
func (e *Engine) Draft(ctx context.Context, players []Player, teamCount int) (*AssignmentResult, error) {
	scored, err := e.pipeline.ScorePlayers(ctx, players)
	if err != nil {
		return nil, err
	}
	return e.pipeline.Assign(ctx, scored, teamCount, nil)
}

// EvaluateFairness re-grades an existing result without mutating it.
func (e *Engine) EvaluateFairness(result *AssignmentResult) (*FairnessReport, error) {
	return e.pipeline.EvaluateFairness(result)
}

// ExploreSeeds runs the draft once per seed and returns the result with
// the highest balance coefficient, breaking ties toward the lowest seed.
func (e *Engine) ExploreSeeds(ctx context.Context, players []ScoredPlayer, teamCount int, seeds []uint32) (*AssignmentResult, error) {
	return e.pipeline.Explore(ctx, players, teamCount, seeds)
}
