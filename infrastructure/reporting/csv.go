package reporting

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ahrav/go-draft/internal/domain"
	"github.com/ahrav/go-draft/internal/ports"
)

var _ ports.Reporter = (*CSVReporter)(nil)

// CSVReporter writes one row per player: team, player ID, name, and the
// composite score with its primary/secondary decomposition.
type CSVReporter struct {
	w io.Writer
}

// NewCSVReporter creates a CSVReporter writing to w.
func NewCSVReporter(w io.Writer) *CSVReporter {
	return &CSVReporter{w: w}
}

// Report implements ports.Reporter.
func (r *CSVReporter) Report(_ context.Context, result *domain.AssignmentResult) error {
	if result == nil {
		return domain.ErrEmptyTeamSet
	}

	writer := csv.NewWriter(r.w)
	header := []string{"team", "player_id", "name", "composite_score", "primary_score", "secondary_score"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, team := range result.Teams {
		for _, p := range team.Players {
			record := []string{
				strconv.Itoa(team.ID + 1),
				strconv.FormatInt(p.ID, 10),
				p.Name,
				strconv.FormatFloat(p.CompositeScore, 'f', 6, 64),
				strconv.FormatFloat(p.PrimaryScore, 'f', 6, 64),
				strconv.FormatFloat(p.SecondaryScore, 'f', 6, 64),
			}
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("write player %d: %w", p.ID, err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}
