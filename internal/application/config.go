// Package application orchestrates the drafting pipeline: scoring, initial
// snake-draft construction, swap optimization, and fairness evaluation.
// It wires the infrastructure components together with explicit parameters;
// there is no container-resolved or ambient state.
package application

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/ahrav/go-draft/infrastructure/balance"
	"github.com/ahrav/go-draft/infrastructure/scoring"
)

// Package-level validator instance for configuration validation.
var validate = validator.New()

// Config is the complete pipeline configuration. All fields are immutable
// once the pipeline is constructed; concurrent runs share it safely.
type Config struct {
	// Weights is the composite-scoring weight vector.
	Weights scoring.Weights `yaml:"weights"`

	// RobustScoring enables the log1p pre-transform for the heavy-tailed
	// attributes (engagement count and point balance) before min/max
	// normalization.
	RobustScoring bool `yaml:"robust_scoring"`

	// Builder configures score banding for the initial distribution.
	Builder balance.BuilderConfig `yaml:"builder"`

	// Optimizer configures the swap-search budget.
	Optimizer balance.OptimizerConfig `yaml:"optimizer"`

	// Evaluator configures the balance-coefficient scaling.
	Evaluator balance.EvaluatorConfig `yaml:"evaluator"`

	// Optimize toggles the swap-optimization stage. The initial build
	// already guarantees the size invariant; disabling optimization only
	// skips score-balance refinement.
	Optimize bool `yaml:"optimize"`
}

// DefaultConfig returns the standard pipeline configuration: default
// weights, robust scoring off, optimization on, and the component defaults
// for banding, iteration budget, and variance ceiling.
func DefaultConfig() Config {
	return Config{
		Weights:   scoring.DefaultWeights(),
		Builder:   balance.DefaultBuilderConfig(),
		Optimizer: balance.DefaultOptimizerConfig(),
		Evaluator: balance.DefaultEvaluatorConfig(),
		Optimize:  true,
	}
}

// Validate checks the full configuration, delegating struct-tag validation
// to each component's constraints.
func (c Config) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if err := validate.Struct(c.Builder); err != nil {
		return fmt.Errorf("builder configuration validation failed: %w", err)
	}
	if err := validate.Struct(c.Optimizer); err != nil {
		return fmt.Errorf("optimizer configuration validation failed: %w", err)
	}
	if err := validate.Struct(c.Evaluator); err != nil {
		return fmt.Errorf("evaluator configuration validation failed: %w", err)
	}
	return nil
}
