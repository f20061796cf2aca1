// Package balance implements the fairness-constrained partitioning core:
// the snake-draft team builder, the swap-based optimizer, and the fairness
// evaluator that serves as the optimizer's objective. Everything here is
// single-threaded, CPU-bound, deterministic computation; the only source of
// randomness is the seeded sequence generator handed to the builder.
package balance

import (
	"github.com/go-playground/validator/v10"
)

// Package-level validator instance for configuration validation.
// Uses go-playground/validator v10 for struct tag-based validation.
var validate = validator.New()
