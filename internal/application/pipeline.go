package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/ahrav/go-draft/infrastructure/balance"
	"github.com/ahrav/go-draft/infrastructure/scoring"
	"github.com/ahrav/go-draft/infrastructure/seq"
	"github.com/ahrav/go-draft/internal/domain"
	"github.com/ahrav/go-draft/internal/ports"
)

var _ ports.Assigner = (*Pipeline)(nil)

// Pipeline is the orchestrating run: raw players in, assignment result out.
// It owns no mutable state across calls; each Assign constructs its own
// sequence generator once the effective seed is known and passes it down
// explicitly, so a single Pipeline may serve concurrent runs.
type Pipeline struct {
	config    Config
	builder   *balance.Builder
	optimizer *balance.Optimizer
	evaluator *balance.Evaluator
	metrics   ports.MetricsCollector
	tracer    trace.Tracer
}

// Option customizes pipeline construction.
type Option func(*Pipeline)

// WithMetrics attaches a metrics collector for stage latencies, run
// counters, and balance gauges. Without it, metrics are discarded.
func WithMetrics(collector ports.MetricsCollector) Option {
	return func(p *Pipeline) {
		if collector != nil {
			p.metrics = collector
		}
	}
}

// WithTracer attaches an OpenTelemetry tracer emitting one span per
// pipeline stage. Without it, a no-op tracer is used.
func WithTracer(tracer trace.Tracer) Option {
	return func(p *Pipeline) {
		if tracer != nil {
			p.tracer = tracer
		}
	}
}

// NewPipeline creates a Pipeline from a validated configuration.
func NewPipeline(config Config, opts ...Option) (*Pipeline, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	builder, err := balance.NewBuilder(config.Builder)
	if err != nil {
		return nil, err
	}
	evaluator, err := balance.NewEvaluator(config.Evaluator)
	if err != nil {
		return nil, err
	}
	optimizer, err := balance.NewOptimizer(config.Optimizer, evaluator)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		config:    config,
		builder:   builder,
		optimizer: optimizer,
		evaluator: evaluator,
		metrics:   noopMetrics{},
		tracer:    noop.NewTracerProvider().Tracer("go-draft"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// ScorePlayers normalizes the batch and computes composite scores using the
// pipeline's weight configuration. Scores are batch-relative; see the
// scoring package for the portability caveat.
func (p *Pipeline) ScorePlayers(ctx context.Context, players []domain.Player) ([]domain.ScoredPlayer, error) {
	_, span := p.tracer.Start(ctx, "score_players",
		trace.WithAttributes(attribute.Int("player_count", len(players))))
	defer span.End()

	start := time.Now()
	scored, err := scoring.Score(players, p.config.Weights, p.config.RobustScoring)
	p.metrics.RecordLatency("score_players", time.Since(start), nil)
	if err != nil {
		return nil, fmt.Errorf("scoring failed: %w", err)
	}
	return scored, nil
}

// Assign is the main entry point: it partitions scored players into
// teamCount teams. callerSeed is optional; when nil the effective seed is
// derived purely from the player IDs, so the same population always drafts
// the same teams. The result is fully determined by (players, teamCount,
// callerSeed); no system randomness or wall-clock time influences
// membership.
func (p *Pipeline) Assign(
	ctx context.Context,
	players []domain.ScoredPlayer,
	teamCount int,
	callerSeed *uint32,
) (*domain.AssignmentResult, error) {
	if len(players) == 0 {
		return nil, domain.ErrEmptyPopulation
	}
	if teamCount < 2 || teamCount > len(players) {
		return nil, domain.NewInvalidTeamCountError(teamCount, len(players))
	}

	ids := make([]int64, len(players))
	for i, player := range players {
		ids[i] = player.ID
	}
	effectiveSeed := seq.EffectiveSeed(callerSeed, seq.DeriveDataSeed(ids))

	ctx, span := p.tracer.Start(ctx, "assign_teams", trace.WithAttributes(
		attribute.Int("player_count", len(players)),
		attribute.Int("team_count", teamCount),
		attribute.Int64("effective_seed", int64(effectiveSeed)),
	))
	defer span.End()

	gen := seq.New(effectiveSeed)

	start := time.Now()
	teams, err := p.builder.Build(players, teamCount, gen)
	p.metrics.RecordLatency("build_teams", time.Since(start), nil)
	if err != nil {
		return nil, fmt.Errorf("initial build failed: %w", err)
	}

	var iterations int
	var improvement float64
	if p.config.Optimize {
		_, optSpan := p.tracer.Start(ctx, "optimize_teams")
		start = time.Now()
		outcome, err := p.optimizer.Optimize(teams)
		p.metrics.RecordLatency("optimize_teams", time.Since(start), nil)
		optSpan.End()
		if err != nil {
			return nil, fmt.Errorf("optimization failed: %w", err)
		}
		teams = outcome.Teams
		iterations = outcome.Iterations
		improvement = outcome.Improvement
		p.metrics.RecordHistogram("optimizer_iterations", float64(iterations), nil)
	}

	report, err := p.evaluator.Evaluate(teams)
	if err != nil {
		return nil, fmt.Errorf("fairness evaluation failed: %w", err)
	}

	p.metrics.RecordCounter("assignments_total", 1, map[string]string{"grade": string(report.Grade)})
	p.metrics.RecordGauge("balance_coefficient", report.BalanceCoefficient, nil)

	return &domain.AssignmentResult{
		RunID:               uuid.NewString(),
		Teams:               teams,
		PlayerCount:         len(players),
		TeamCount:           teamCount,
		EffectiveSeed:       effectiveSeed,
		OptimizerIterations: iterations,
		Improvement:         improvement,
		Fairness:            report,
		Timestamp:           time.Now().UTC(),
	}, nil
}

// EvaluateFairness recomputes the fairness report for an existing result.
// It is idempotent and never mutates the result it describes.
func (p *Pipeline) EvaluateFairness(result *domain.AssignmentResult) (*domain.FairnessReport, error) {
	if result == nil {
		return nil, domain.ErrEmptyTeamSet
	}
	return p.evaluator.Evaluate(result.Teams)
}

// noopMetrics discards all measurements. It keeps the hot path free of nil
// checks when no collector is configured.
type noopMetrics struct{}

func (noopMetrics) RecordLatency(string, time.Duration, map[string]string) {}
func (noopMetrics) RecordCounter(string, float64, map[string]string)       {}
func (noopMetrics) RecordGauge(string, float64, map[string]string)         {}
func (noopMetrics) RecordHistogram(string, float64, map[string]string)     {}
