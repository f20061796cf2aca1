package reporting

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ahrav/go-draft/internal/domain"
	"github.com/ahrav/go-draft/internal/ports"
)

var _ ports.Reporter = (*JSONReporter)(nil)

// JSONReporter emits the full assignment result as indented JSON, the
// machine-readable counterpart to the console rendering.
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a JSONReporter writing to w.
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// Report implements ports.Reporter.
func (r *JSONReporter) Report(_ context.Context, result *domain.AssignmentResult) error {
	if result == nil {
		return domain.ErrEmptyTeamSet
	}

	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}
