// Package results persists hold'em starting-hand results as CSV.
package results

import (
	"cmp"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/lox/showdown/internal/fileutil"
	"github.com/lox/showdown/internal/simulator"
	"github.com/lox/showdown/poker"
)

// Row is one starting hand and the fraction of trials it won or split
type Row struct {
	Hand     poker.StartingHand
	Fraction float64
}

// Label returns the starting hand label
func (r Row) Label() string {
	return r.Hand.Label()
}

// FromSummary converts simulation results into rows, keeping their order
func FromSummary(summary *simulator.HoldemSummary) []Row {
	rows := make([]Row, len(summary.Results))
	for i, r := range summary.Results {
		rows[i] = Row{Hand: r.Hand, Fraction: r.Tally.WinFraction()}
	}
	return rows
}

// Sort orders rows by fraction, best first. Equal fractions keep their order.
func Sort(rows []Row) {
	slices.SortStableFunc(rows, func(a, b Row) int {
		return cmp.Compare(b.Fraction, a.Fraction)
	})
}

// Filename returns the conventional file name for a simulation run, e.g.
// holdem_10000_runs_6_hands_floponly.csv
func Filename(game string, runs, players int, flopOnly bool) string {
	suffix := ""
	if flopOnly {
		suffix = "_floponly"
	}
	return fmt.Sprintf("%s_%d_runs_%d_hands%s.csv", game, runs, players, suffix)
}

// Write emits one `"<label>", <fraction>` line per row
func Write(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "\"%s\", %f\n", r.Label(), r.Fraction); err != nil {
			return err
		}
	}
	return nil
}

// Read parses rows written by Write. Labels may spell ten as "10".
func Read(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	var rows []Row
	seen := make(map[poker.StartingHand]bool)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		line, _ := reader.FieldPos(0)
		hand, err := poker.ParseStartingHandLabel(record[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if seen[hand] {
			return nil, fmt.Errorf("line %d: duplicate starting hand %s", line, hand.Label())
		}
		seen[hand] = true

		fraction, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid fraction %q: %w", line, record[1], err)
		}
		if fraction < 0 || fraction > 1 {
			return nil, fmt.Errorf("line %d: fraction %f out of range", line, fraction)
		}
		rows = append(rows, Row{Hand: hand, Fraction: fraction})
	}
	return rows, nil
}

// Save writes rows to path atomically
func Save(path string, rows []Row) error {
	if err := fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return Write(w, rows)
	}); err != nil {
		return fmt.Errorf("failed to save results to %s: %w", path, err)
	}
	return nil
}

// Load reads rows from path
func Load(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open results: %w", err)
	}
	defer f.Close()

	rows, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return rows, nil
}
