package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ahrav/go-draft/infrastructure/reporting"
	"github.com/ahrav/go-draft/internal/domain"
	"github.com/ahrav/go-draft/sdk/draftengine"
)

var (
	statsInput  string
	statsOutput string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show score distribution statistics for a roster",
	Long: `Stats scores the roster and prints descriptive statistics of the
composite-score distribution: spread, a histogram, and the Gini
concentration coefficient. Useful for judging how balanceable a roster
is before drafting it.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsInput, "input", "i", "", "roster CSV file (required)")
	statsCmd.Flags().StringVarP(&statsOutput, "output", "o", "", "write output to file instead of stdout")
	_ = statsCmd.MarkFlagRequired("input")
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	players, err := loadRoster(ctx, statsInput)
	if err != nil {
		return err
	}

	engine, err := draftengine.New(cfg.engineOptions()...)
	if err != nil {
		return err
	}
	scored, err := engine.ScorePlayers(ctx, players)
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(statsOutput)
	if err != nil {
		return err
	}
	defer closeOut()

	return writeStats(out, scored)
}

func writeStats(w io.Writer, scored []domain.ScoredPlayer) error {
	scores := make([]float64, len(scored))
	for i, p := range scored {
		scores[i] = p.CompositeScore
	}

	sorted := append([]float64(nil), scores...)
	sort.Float64s(sorted)
	min, max := sorted[0], sorted[len(sorted)-1]
	median := sorted[len(sorted)/2]
	if len(sorted)%2 == 0 {
		median = (sorted[len(sorted)/2-1] + sorted[len(sorted)/2]) / 2
	}

	fmt.Fprintf(w, "Roster: %d players\n", len(scored))
	fmt.Fprintf(w, "Composite score: min %.4f, median %.4f, max %.4f\n", min, median, max)
	fmt.Fprintf(w, "Spread: stddev %.4f, Gini %.4f\n\n", reporting.StdDev(scores), reporting.Gini(scores))

	fmt.Fprintln(w, "Distribution:")
	const bins = 10
	for i, n := range reporting.Histogram(scores, bins) {
		low := float64(i) / bins
		high := float64(i+1) / bins
		fmt.Fprintf(w, "  [%.1f-%.1f) %s\n", low, high, strings.Repeat("#", n))
	}
	return nil
}
