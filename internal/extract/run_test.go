package extract

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adl-tools/candex/internal/pdftext"
	"github.com/adl-tools/candex/pkg/types"
)

func runConfig(t *testing.T) types.ExtractionConfig {
	t.Helper()
	return types.ExtractionConfig{
		OutputPath:  filepath.Join(t.TempDir(), "out", "admissibles.csv"),
		Department:  "75",
		SessionDate: "2024-01-15",
	}
}

func TestRunSource_WritesFilteredCSV(t *testing.T) {
	src := &fakeSource{pages: []string{
		"TAXIS\nAB123 Jean Dupont ADMISSIBLE\nXY99 Marie NON-ADMISSIBLE",
		"VTC\nCD456 Luc Martin ADMISSIBLE",
	}}
	cfg := runConfig(t)

	stats, err := RunSource(src, cfg, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if stats.RecordsParsed != 3 || stats.Admissible != 2 {
		t.Errorf("stats = %+v, want 3 parsed, 2 admissible", stats)
	}

	data, err := os.ReadFile(cfg.OutputPath)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("output has %d lines, want header plus 2 rows:\n%s", len(lines), data)
	}
	if lines[0] != "category,candidate_number,first_name,last_name,decision,department,session_date" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "TAXIS,AB123,Jean,Dupont,ADMISSIBLE,75,2024-01-15" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if strings.Contains(string(data), "NON_ADMISSIBLE") {
		t.Error("non-admissible record leaked into output")
	}
}

func TestRunSource_EmptyFirstPage(t *testing.T) {
	// Page 1 yields no text, page 2 carries one admissible candidate:
	// exactly one output row.
	src := &fakeSource{pages: []string{
		"",
		"VTC\nCD456 Luc Martin ADMISSIBLE",
	}}
	cfg := runConfig(t)

	if _, err := RunSource(src, cfg, io.Discard); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(cfg.OutputPath)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("output has %d lines, want header plus 1 row", len(lines))
	}
}

func TestRunSource_NoCandidates(t *testing.T) {
	src := &fakeSource{pages: []string{
		"nothing matching the grammar here",
		"still nothing",
	}}
	cfg := runConfig(t)

	_, err := RunSource(src, cfg, io.Discard)
	if !errors.Is(err, ErrNoCandidates) {
		t.Fatalf("err = %v, want ErrNoCandidates", err)
	}
	if _, statErr := os.Stat(cfg.OutputPath); !os.IsNotExist(statErr) {
		t.Error("output file was written despite terminal condition")
	}
}

func TestRunSource_NoAdmissibles(t *testing.T) {
	src := &fakeSource{pages: []string{
		"TAXIS\nXY99 Marie NON-ADMISSIBLE",
	}}
	cfg := runConfig(t)

	_, err := RunSource(src, cfg, io.Discard)
	if !errors.Is(err, ErrNoAdmissibles) {
		t.Fatalf("err = %v, want ErrNoAdmissibles", err)
	}
	if errors.Is(err, ErrNoCandidates) {
		t.Error("terminal conditions must stay distinguishable")
	}
	if _, statErr := os.Stat(cfg.OutputPath); !os.IsNotExist(statErr) {
		t.Error("output file was written despite terminal condition")
	}
}

func TestRunSource_SummaryFile(t *testing.T) {
	src := &fakeSource{pages: []string{"TAXIS\nAB123 Jean Dupont ADMISSIBLE"}}
	cfg := runConfig(t)
	cfg.WriteSummary = true

	if _, err := RunSource(src, cfg, io.Discard); err != nil {
		t.Fatal(err)
	}

	summaryPath := strings.TrimSuffix(cfg.OutputPath, ".csv") + "-summary.yaml"
	data, err := os.ReadFile(summaryPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "TAXIS: 1") {
		t.Errorf("summary missing category count:\n%s", data)
	}
}

func TestRun_ValidationFailures(t *testing.T) {
	tmpDir := t.TempDir()
	txtPath := filepath.Join(tmpDir, "results.txt")
	if err := os.WriteFile(txtPath, []byte("not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		pdfPath string
		wantIs  error
	}{
		{"missing file", filepath.Join(tmpDir, "absent.pdf"), os.ErrNotExist},
		{"wrong extension", txtPath, pdftext.ErrNotPDF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := runConfig(t)
			cfg.PDFPath = tt.pdfPath
			_, err := Run(cfg, io.Discard)
			if !errors.Is(err, tt.wantIs) {
				t.Errorf("err = %v, want %v", err, tt.wantIs)
			}
		})
	}
}
