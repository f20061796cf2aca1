package reporting

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ahrav/go-draft/internal/domain"
	"github.com/ahrav/go-draft/internal/ports"
)

var _ ports.Reporter = (*YAMLReporter)(nil)

// YAMLReporter writes the full assignment result as a YAML document,
// convenient for feeding into configuration-driven downstream tooling.
type YAMLReporter struct {
	w io.Writer
}

// NewYAMLReporter creates a YAMLReporter writing to w.
func NewYAMLReporter(w io.Writer) *YAMLReporter {
	return &YAMLReporter{w: w}
}

// Report implements ports.Reporter.
func (r *YAMLReporter) Report(_ context.Context, result *domain.AssignmentResult) error {
	if result == nil {
		return domain.ErrEmptyTeamSet
	}

	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encode assignment: %w", err)
	}
	return enc.Close()
}
