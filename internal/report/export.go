// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report serializes filtered candidate records and run summaries.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adl-tools/candex/pkg/types"
)

// Columns is the stable output column order of the candidates CSV.
var Columns = []string{
	"category",
	"candidate_number",
	"first_name",
	"last_name",
	"decision",
	"department",
	"session_date",
}

// AttachMetadata attaches the two caller-supplied metadata strings to every
// record, verbatim and identically on each row.
func AttachMetadata(records []types.CandidateRecord, department, sessionDate string) []types.ExportRow {
	rows := make([]types.ExportRow, len(records))
	for i, r := range records {
		rows[i] = types.ExportRow{
			CandidateRecord: r,
			Department:      department,
			SessionDate:     sessionDate,
		}
	}
	return rows
}

// WriteCSV writes rows as a UTF-8 comma-separated table with a header row,
// one row per record, creating the destination's parent directory on demand.
// The write is a single sequential pass with no partial-write recovery; a
// failed run is expected to be retried wholesale.
func WriteCSV(path string, rows []types.ExportRow) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			string(r.Category),
			r.CandidateNumber,
			r.FirstName,
			r.LastName,
			string(r.Decision),
			r.Department,
			r.SessionDate,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return f.Close()
}

// Table is a generic delimited table used by the enrichment stages, which
// round-trip CSVs whose column set grows from run to run.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadTable loads a CSV file produced by WriteCSV or a previous enrichment
// pass. A file with no data rows is returned as-is; callers decide whether
// that is an error.
func ReadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()

	all, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("reading %s: empty file", path)
	}
	return &Table{Header: all[0], Rows: all[1:]}, nil
}

// Write serializes the table back to disk, creating parent directories on
// demand.
func (t *Table) Write(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("writing rows: %w", err)
	}
	return f.Close()
}

// Column returns the index of the named header column, or -1 when absent.
func (t *Table) Column(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// AddColumn appends a column with the given default value on every row and
// returns its index.
func (t *Table) AddColumn(name, value string) int {
	t.Header = append(t.Header, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], value)
	}
	return len(t.Header) - 1
}
