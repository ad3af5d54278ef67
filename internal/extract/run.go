// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"errors"
	"fmt"
	"io"

	"github.com/adl-tools/candex/internal/pdftext"
	"github.com/adl-tools/candex/internal/report"
	"github.com/adl-tools/candex/pkg/types"
)

// Terminal run conditions. Both mean no output file was written, but a CLI
// or service layer maps them to different messages: ErrNoCandidates means
// the grammar matched nothing at all, ErrNoAdmissibles means matching
// succeeded but nobody passed.
var (
	ErrNoCandidates  = errors.New("no candidate data found in document")
	ErrNoAdmissibles = errors.New("no admissible candidate found")
)

// Run executes one extraction end to end: open and validate the source PDF,
// extract records across all pages, filter to the admissible subset, attach
// the run metadata, and export CSV. Progress is reported on w. Validation
// failures surface before any page is read, and no output file is written
// when filtering yields nothing.
func Run(cfg types.ExtractionConfig, w io.Writer) (types.RunStats, error) {
	src, err := pdftext.Open(cfg.PDFPath)
	if err != nil {
		return types.RunStats{}, err
	}
	defer src.Close()

	return RunSource(src, cfg, w)
}

// RunSource runs the extraction pipeline over an already-open page source.
// Split from Run so the pipeline can be driven without a PDF on disk.
func RunSource(src Source, cfg types.ExtractionConfig, w io.Writer) (types.RunStats, error) {
	records, stats := ExtractDocument(src, w)
	if len(records) == 0 {
		return stats, ErrNoCandidates
	}
	fmt.Fprintf(w, "parsed %d candidate(s) across %d page(s)\n", len(records), stats.Pages)

	admissibles := FilterAdmissible(records)
	stats.Admissible = len(admissibles)
	if len(admissibles) == 0 {
		return stats, ErrNoAdmissibles
	}

	rows := report.AttachMetadata(admissibles, cfg.Department, cfg.SessionDate)

	if err := report.WriteCSV(cfg.OutputPath, rows); err != nil {
		return stats, fmt.Errorf("extraction failed: %w", err)
	}
	fmt.Fprintf(w, "exported %d admissible candidate(s) to %s\n", len(rows), cfg.OutputPath)

	if cfg.WriteSummary {
		path, err := report.WriteSummary(cfg.OutputPath, rows, stats)
		if err != nil {
			return stats, fmt.Errorf("extraction failed: %w", err)
		}
		fmt.Fprintf(w, "summary written to %s\n", path)
	}

	return stats, nil
}
