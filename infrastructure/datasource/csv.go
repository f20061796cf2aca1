// Package datasource provides roster ingestion adapters implementing
// ports.DataSource. Adapters own input validation: the drafting core
// assumes players with unique IDs and non-negative attribute values.
package datasource

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/ahrav/go-draft/internal/domain"
	"github.com/ahrav/go-draft/internal/ports"
)

var _ ports.DataSource = (*CSVSource)(nil)

// Canonical roster columns. Header matching is case-insensitive and
// tolerant of small typos: after normalization, a header within levenshtein
// distance 2 of a canonical name is accepted (e.g. "engagment_count").
// Unrecognized numeric columns become extended attributes.
const (
	columnID   = "id"
	columnName = "name"

	// maxHeaderDistance is the edit-distance budget for fuzzy header
	// resolution. 2 absorbs common typos without conflating distinct
	// short names.
	maxHeaderDistance = 2
)

// requiredColumns are the numeric columns every roster must provide,
// keyed by canonical attribute name.
var requiredColumns = []string{
	domain.AttrEngagement,
	domain.AttrActivity,
	domain.AttrPoints,
	domain.AttrStreak,
}

// CSVSource loads players from a roster CSV file. The first row must be a
// header; every subsequent row is one player.
type CSVSource struct {
	path string
}

// NewCSVSource creates a CSVSource for the given file path.
func NewCSVSource(path string) (*CSVSource, error) {
	if path == "" {
		return nil, fmt.Errorf("csv source requires a file path")
	}
	return &CSVSource{path: path}, nil
}

// Load reads and validates the full roster. It fails with row-numbered
// errors for malformed values, with a domain.DuplicateIDError naming every
// repeated ID, and clamps negative attribute values to zero per the
// data-source contract.
func (s *CSVSource) Load(ctx context.Context) ([]domain.Player, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()

	return parse(ctx, f)
}

// parse consumes CSV content from r. Split out from Load so tests can feed
// in-memory rosters.
func parse(ctx context.Context, r io.Reader) ([]domain.Player, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	layout, err := resolveHeader(header)
	if err != nil {
		return nil, err
	}

	var players []domain.Player
	seen := make(map[int64]bool)
	var duplicates []int64

	for row := 2; ; row++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		player, err := layout.player(record)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		if seen[player.ID] {
			if !slices.Contains(duplicates, player.ID) {
				duplicates = append(duplicates, player.ID)
			}
			continue
		}
		seen[player.ID] = true
		players = append(players, player)
	}

	if len(duplicates) > 0 {
		return nil, &domain.DuplicateIDError{IDs: duplicates}
	}
	return players, nil
}

// headerLayout maps resolved column indices onto player fields.
type headerLayout struct {
	id       int
	name     int // -1 when absent
	base     map[string]int
	extended map[string]int // unmatched columns, by normalized name
}

// resolveHeader matches raw headers against the canonical column set.
// Matching is exact-after-normalization first, then fuzzy within
// maxHeaderDistance. The ID column and all four base attributes are
// mandatory; name is optional; everything else is treated as an extended
// attribute column.
func resolveHeader(header []string) (*headerLayout, error) {
	layout := &headerLayout{
		id:       -1,
		name:     -1,
		base:     make(map[string]int),
		extended: make(map[string]int),
	}

	canonical := append([]string{columnID, columnName}, requiredColumns...)

	for i, raw := range header {
		name := normalizeHeader(raw)

		match := ""
		best := maxHeaderDistance + 1
		for _, candidate := range canonical {
			d := levenshtein.ComputeDistance(name, candidate)
			if d < best {
				best = d
				match = candidate
			}
		}

		switch {
		case match == columnID && best <= maxHeaderDistance:
			layout.id = i
		case match == columnName && best <= maxHeaderDistance:
			layout.name = i
		case best <= maxHeaderDistance:
			layout.base[match] = i
		default:
			layout.extended[name] = i
		}
	}

	if layout.id < 0 {
		return nil, fmt.Errorf("roster header is missing the %q column", columnID)
	}
	for _, col := range requiredColumns {
		if _, ok := layout.base[col]; !ok {
			return nil, fmt.Errorf("roster header is missing the %q column", col)
		}
	}
	return layout, nil
}

// player converts one CSV record into a validated Player.
func (l *headerLayout) player(record []string) (domain.Player, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(record[l.id]), 10, 64)
	if err != nil {
		return domain.Player{}, fmt.Errorf("invalid player ID %q", record[l.id])
	}

	p := domain.Player{ID: id}
	if l.name >= 0 && l.name < len(record) {
		p.Name = strings.TrimSpace(record[l.name])
	}

	values := make(map[string]float64, len(l.base))
	for col, idx := range l.base {
		v, err := parseAttribute(record, idx, col)
		if err != nil {
			return domain.Player{}, err
		}
		values[col] = v
	}
	p.Attributes = domain.Attributes{
		Engagement:   values[domain.AttrEngagement],
		ActivityDays: values[domain.AttrActivity],
		Points:       values[domain.AttrPoints],
		Streak:       values[domain.AttrStreak],
	}

	for col, idx := range l.extended {
		v, err := parseAttribute(record, idx, col)
		if err != nil {
			return domain.Player{}, err
		}
		if p.Attributes.Extended == nil {
			p.Attributes.Extended = make(map[string]float64, len(l.extended))
		}
		p.Attributes.Extended[col] = v
	}
	return p, nil
}

// parseAttribute reads one numeric cell, clamping negatives to zero per
// the pre-clamping contract the core relies on.
func parseAttribute(record []string, idx int, col string) (float64, error) {
	if idx >= len(record) {
		return 0, fmt.Errorf("missing value for column %q", col)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(record[idx]), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q for column %q", record[idx], col)
	}
	if v < 0 {
		return 0, nil
	}
	return v, nil
}

// normalizeHeader canonicalizes a raw header cell: lower case, trimmed,
// with spaces and dashes collapsed to underscores.
func normalizeHeader(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "-", "_")
	return name
}
