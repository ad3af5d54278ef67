// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package enrich fills placeholder contact fields on exported candidate
// rows. No stage here performs a real lookup against any directory or API:
// every value is synthesized deterministically from the row itself, with the
// column layout already shaped for a future real integration.
package enrich

import (
	"fmt"
	"io"

	"github.com/adl-tools/candex/internal/normalize"
	"github.com/adl-tools/candex/internal/report"
	"github.com/adl-tools/candex/pkg/types"
)

// Enrichment status values shared by the email and phone stages.
const (
	StatusSimulated    = "simulated"
	StatusFound        = "found"
	StatusSkipped      = "skipped"
	StatusError        = "error"
	sourceStub         = "stub"
	sourceNotProcessed = "not_processed"
)

const defaultMaxRows = 20

// Emails reads a candidates CSV, synthesizes a placeholder email for each of
// the first MaxRows rows, and writes the result with three added columns:
// email, enrichment_source, enrichment_status. Rows past the cap are carried
// through untouched and marked skipped. Progress counts are reported on w.
func Emails(cfg types.EnrichmentConfig, w io.Writer) error {
	maxRows := cfg.MaxRows
	if maxRows <= 0 {
		maxRows = defaultMaxRows
	}

	t, err := report.ReadTable(cfg.InputPath)
	if err != nil {
		return err
	}
	if len(t.Rows) == 0 {
		return fmt.Errorf("input file %s has no candidate rows", cfg.InputPath)
	}

	firstCol := t.Column("first_name")
	lastCol := t.Column("last_name")
	if firstCol < 0 || lastCol < 0 {
		return fmt.Errorf("input file %s is missing name columns", cfg.InputPath)
	}

	emailCol := t.AddColumn("email", "")
	sourceCol := t.AddColumn("enrichment_source", sourceNotProcessed)
	statusCol := t.AddColumn("enrichment_status", StatusSkipped)

	enriched, failed := 0, 0
	for i, row := range t.Rows {
		if i >= maxRows {
			break
		}
		email, err := emailFor(row[firstCol], row[lastCol])
		if err != nil {
			fmt.Fprintf(w, "row %d: %v\n", i+1, err)
			row[sourceCol] = sourceStub
			row[statusCol] = StatusError
			failed++
			continue
		}
		row[emailCol] = email
		row[sourceCol] = sourceStub
		row[statusCol] = StatusSimulated
		enriched++
	}

	if err := t.Write(cfg.OutputPath); err != nil {
		return err
	}

	skipped := len(t.Rows) - enriched - failed
	fmt.Fprintf(w, "emails: %d simulated, %d skipped, %d failed (total: %d)\n",
		enriched, skipped, failed, len(t.Rows))
	return nil
}

// emailFor builds the placeholder address first.last+test@example.com from
// the accent-folded name parts. The +test tag keeps synthesized addresses
// distinguishable from anything a real lookup would return.
func emailFor(firstName, lastName string) (string, error) {
	first := normalize.Fold(firstName)
	last := normalize.Fold(lastName)
	if first == "" || last == "" {
		return "", fmt.Errorf("cannot build email without both name parts")
	}
	return fmt.Sprintf("%s.%s+test@example.com", first, last), nil
}
