// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/adl-tools/candex/internal/extract"
	"github.com/adl-tools/candex/internal/history"
	"github.com/adl-tools/candex/internal/pdftext"
	"github.com/adl-tools/candex/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract admissible candidates from a results PDF into a CSV",
	Long: `Extract parses the page text of an official TAXIS/VTC results PDF,
keeps the candidates whose decision is ADMISSIBLE, attaches the department
and session date to every row, and writes a UTF-8 CSV with a header row.

The run fails without writing any file when the document yields no candidate
lines at all, or when candidates were parsed but none passed.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("pdf-path", "", "source results PDF (required)")
	extractCmd.Flags().String("output-csv", "output/admissibles.csv", "destination CSV file")
	extractCmd.Flags().String("department", "", "department code or name attached to every row (required)")
	extractCmd.Flags().String("session-date", "", "session date attached to every row (required)")
	extractCmd.Flags().Bool("summary", false, "also write a YAML run summary next to the CSV")
	extractCmd.Flags().Bool("no-history", false, "skip recording this run in the history database")
	extractCmd.MarkFlagRequired("pdf-path")
	extractCmd.MarkFlagRequired("department")
	extractCmd.MarkFlagRequired("session-date")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	pdfPath, _ := cmd.Flags().GetString("pdf-path")
	outputCSV, _ := cmd.Flags().GetString("output-csv")
	department, _ := cmd.Flags().GetString("department")
	sessionDate, _ := cmd.Flags().GetString("session-date")
	writeSummary, _ := cmd.Flags().GetBool("summary")
	noHistory, _ := cmd.Flags().GetBool("no-history")

	cfg := types.ExtractionConfig{
		PDFPath:      pdfPath,
		OutputPath:   outputCSV,
		Department:   department,
		SessionDate:  sessionDate,
		WriteSummary: writeSummary,
	}

	fmt.Printf("Source      %s\n", cfg.PDFPath)
	fmt.Printf("Output      %s\n", cfg.OutputPath)
	fmt.Printf("Department  %s\n", cfg.Department)
	fmt.Printf("Session     %s\n\n", cfg.SessionDate)

	stats, err := extract.Run(cfg, os.Stdout)
	if err != nil {
		return extractError(err)
	}

	if !noHistory {
		recordRun(cfg, stats)
	}

	fmt.Printf("\nDone: %d admissible of %d parsed candidate(s), %d page(s)\n",
		stats.Admissible, stats.RecordsParsed, stats.Pages)
	return nil
}

// extractError maps the run's terminal conditions onto caller-facing
// messages while keeping the original error for the exit status.
func extractError(err error) error {
	switch {
	case errors.Is(err, extract.ErrNoCandidates):
		fmt.Fprintln(os.Stderr, "The document contains no extractable candidate lines; no file was written.")
	case errors.Is(err, extract.ErrNoAdmissibles):
		fmt.Fprintln(os.Stderr, "Candidates were parsed but none is admissible; no file was written.")
	case errors.Is(err, pdftext.ErrNotPDF):
		fmt.Fprintln(os.Stderr, "The source path must point to a .pdf file.")
	case errors.Is(err, os.ErrNotExist):
		fmt.Fprintln(os.Stderr, "The source document does not exist.")
	}
	return err
}

// recordRun stores the run in the history database. Best-effort: a failure
// here is reported as a warning and never fails the extraction.
func recordRun(cfg types.ExtractionConfig, stats types.RunStats) {
	store, err := history.NewStore(types.HistoryConfig{DataDir: viper.GetString("history.dir")})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: run not recorded: %v\n", err)
		return
	}
	defer store.Close()

	if _, err := store.Record(history.Run{
		PDFPath:     cfg.PDFPath,
		OutputPath:  cfg.OutputPath,
		Department:  cfg.Department,
		SessionDate: cfg.SessionDate,
		Stats:       stats,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: run not recorded: %v\n", err)
	}
}
