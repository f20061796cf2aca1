package middleware

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ahrav/go-draft/internal/domain"
	"github.com/ahrav/go-draft/internal/ports"
)

var _ ports.Assigner = (*TracedAssigner)(nil)

// TracedAssigner decorates an Assigner with an OpenTelemetry span per run,
// recording the request shape on entry and the fairness outcome on exit.
// Tracing is observation only: it never influences the assignment, which
// stays fully determined by its inputs.
type TracedAssigner struct {
	next   ports.Assigner
	tracer trace.Tracer
}

// NewTracedAssigner wraps next with tracing using the given tracer.
func NewTracedAssigner(next ports.Assigner, tracer trace.Tracer) *TracedAssigner {
	return &TracedAssigner{next: next, tracer: tracer}
}

// Assign implements ports.Assigner.
func (t *TracedAssigner) Assign(
	ctx context.Context,
	players []domain.ScoredPlayer,
	teamCount int,
	callerSeed *uint32,
) (*domain.AssignmentResult, error) {
	ctx, span := t.tracer.Start(ctx, "draft.assign", trace.WithAttributes(
		attribute.Int("draft.player_count", len(players)),
		attribute.Int("draft.team_count", teamCount),
		attribute.Bool("draft.caller_seed_present", callerSeed != nil),
	))
	defer span.End()

	result, err := t.next.Assign(ctx, players, teamCount, callerSeed)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int64("draft.effective_seed", int64(result.EffectiveSeed)),
		attribute.String("draft.grade", string(result.Fairness.Grade)),
		attribute.Float64("draft.balance_coefficient", result.Fairness.BalanceCoefficient),
		attribute.Int("draft.optimizer_iterations", result.OptimizerIterations),
	)
	return result, nil
}
