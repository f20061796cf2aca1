package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ahrav/go-draft/internal/domain"
	"github.com/ahrav/go-draft/sdk/draftengine"
)

var (
	scoreInput  string
	scoreFormat string
	scoreOutput string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a roster without assigning teams",
	Long: `Score computes batch-relative composite scores for every player in
the roster. Scores are only comparable within a single roster.

Examples:
  teamdraft score --input roster.csv
  teamdraft score --input roster.csv --format json`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreInput, "input", "i", "", "roster CSV file (required)")
	scoreCmd.Flags().StringVarP(&scoreFormat, "format", "f", "", "output format: console, csv, json, or yaml")
	scoreCmd.Flags().StringVarP(&scoreOutput, "output", "o", "", "write output to file instead of stdout")
	_ = scoreCmd.MarkFlagRequired("input")
}

func runScore(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	players, err := loadRoster(ctx, scoreInput)
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

	logger.Info("scoring complete", "players", len(scored), "robust", cfg.Robust)

	out, closeOut, err := openOutput(scoreOutput)
	if err != nil {
		return err
	}
	defer closeOut()

	switch resolveFormat(scoreFormat) {
	case "console":
		return writeScoreTable(out, scored)
	case "csv":
		return writeScoreCSV(out, scored)
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(scored)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(scored); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want console, csv, json, or yaml)", resolveFormat(scoreFormat))
	}
}

func writeScoreTable(w io.Writer, scored []domain.ScoredPlayer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCOMPOSITE\tPRIMARY\tSECONDARY")
	for _, p := range scored {
		fmt.Fprintf(tw, "%d\t%s\t%.4f\t%.4f\t%.4f\n",
			p.ID, p.Name, p.CompositeScore, p.PrimaryScore, p.SecondaryScore)
	}
	return tw.Flush()
}

func writeScoreCSV(w io.Writer, scored []domain.ScoredPlayer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"player_id", "name", "composite_score", "primary_score", "secondary_score"}); err != nil {
		return err
	}
	for _, p := range scored {
		record := []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			strconv.FormatFloat(p.CompositeScore, 'f', 6, 64),
			strconv.FormatFloat(p.PrimaryScore, 'f', 6, 64),
			strconv.FormatFloat(p.SecondaryScore, 'f', 6, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
