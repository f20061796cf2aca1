package reporting

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ahrav/go-draft/internal/domain"
	"github.com/ahrav/go-draft/internal/ports"
)

var _ ports.Reporter = (*ConsoleReporter)(nil)

// histogramBins is the fixed bin count for the composite-score histogram
// shown in the stats block.
const histogramBins = 10

// ConsoleReporter renders an assignment as aligned text tables, suitable
// for terminals. Large numbers are grouped per locale conventions.
type ConsoleReporter struct {
	w         io.Writer
	printer   *message.Printer
	withStats bool
}

// NewConsoleReporter creates a ConsoleReporter writing to w. When
// withStats is set, a descriptive-statistics block (score spread,
// histogram, Gini coefficient) follows the team tables.
func NewConsoleReporter(w io.Writer, withStats bool) *ConsoleReporter {
	return &ConsoleReporter{
		w:         w,
		printer:   message.NewPrinter(language.English),
		withStats: withStats,
	}
}

// Report implements ports.Reporter.
func (r *ConsoleReporter) Report(_ context.Context, result *domain.AssignmentResult) error {
	if result == nil {
		return domain.ErrEmptyTeamSet
	}

	r.printer.Fprintf(r.w, "Assignment %s: %d players across %d teams (seed %d)\n\n",
		result.RunID, result.PlayerCount, result.TeamCount, result.EffectiveSeed)

	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TEAM\tSIZE\tTOTAL\tAVERAGE")
	for _, team := range result.Teams {
		fmt.Fprintf(tw, "%d\t%d\t%.4f\t%.4f\n",
			team.ID+1, team.Size, team.TotalScore, team.AverageScore)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("render team table: %w", err)
	}

	for _, team := range result.Teams {
		fmt.Fprintf(r.w, "\nTeam %d:\n", team.ID+1)
		mw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(mw, "  ID\tNAME\tSCORE")
		for _, p := range team.Players {
			fmt.Fprintf(mw, "  %d\t%s\t%.4f\n", p.ID, p.Name, p.CompositeScore)
		}
		if err := mw.Flush(); err != nil {
			return fmt.Errorf("render team %d: %w", team.ID, err)
		}
	}

	if result.Fairness != nil {
		fmt.Fprintf(r.w, "\nFairness: %s (coefficient %.4f, score stddev %.4f, size spread %d)\n",
			result.Fairness.Grade,
			result.Fairness.BalanceCoefficient,
			result.Fairness.ScoreStdDev,
			result.Fairness.SizeBalance.Difference)
		fmt.Fprintf(r.w, "%s\n", result.Fairness.Justification)
	}

	if result.OptimizerIterations > 0 {
		r.printer.Fprintf(r.w, "Optimizer: %d iterations, +%.4f balance improvement\n",
			result.OptimizerIterations, result.Improvement)
	}

	if r.withStats {
		r.stats(result)
	}
	return nil
}

// stats renders the descriptive-statistics block over all composite scores.
func (r *ConsoleReporter) stats(result *domain.AssignmentResult) {
	var scores []float64
	for _, team := range result.Teams {
		for _, p := range team.Players {
			scores = append(scores, p.CompositeScore)
		}
	}

	fmt.Fprintf(r.w, "\nScore distribution (stddev %.4f, Gini %.4f):\n",
		StdDev(scores), Gini(scores))
	for i, n := range Histogram(scores, histogramBins) {
		low := float64(i) / histogramBins
		high := float64(i+1) / histogramBins
		fmt.Fprintf(r.w, "  [%.1f-%.1f) %s\n", low, high, bar(n))
	}
}

// bar renders a tiny horizontal bar for histogram rows.
func bar(n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = '#'
	}
	return string(out)
}
