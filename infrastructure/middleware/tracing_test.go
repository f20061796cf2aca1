package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/ahrav/go-draft/internal/domain"
)

type stubAssigner struct {
	result *domain.AssignmentResult
	err    error
}

func (s *stubAssigner) Assign(
	_ context.Context, _ []domain.ScoredPlayer, _ int, _ *uint32,
) (*domain.AssignmentResult, error) {
	return s.result, s.err
}

func TestTracedAssigner_PassesThroughResult(t *testing.T) {
	want := &domain.AssignmentResult{
		RunID:         "run-1",
		EffectiveSeed: 33,
		Fairness:      &domain.FairnessReport{Grade: domain.GradeGood, BalanceCoefficient: 0.9},
	}
	traced := NewTracedAssigner(&stubAssigner{result: want}, noop.NewTracerProvider().Tracer("test"))

	got, err := traced.Assign(context.Background(), nil, 2, nil)
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestTracedAssigner_PropagatesError(t *testing.T) {
	traced := NewTracedAssigner(
		&stubAssigner{err: domain.ErrEmptyPopulation},
		noop.NewTracerProvider().Tracer("test"))

	_, err := traced.Assign(context.Background(), nil, 2, nil)
	assert.True(t, errors.Is(err, domain.ErrEmptyPopulation))
}
