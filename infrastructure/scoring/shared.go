// Package scoring turns raw player attributes into comparable composite
// fitness scores. Normalization is batch-relative: scores produced from one
// batch are not portable to runs over a different population.
package scoring

import (
	"github.com/go-playground/validator/v10"
)

// Package-level validator instance for configuration validation.
// Uses go-playground/validator v10 for struct tag-based validation.
var validate = validator.New()
