// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/adl-tools/candex/pkg/types"
)

// Summary holds the per-run statistics written next to the CSV output.
type Summary struct {
	GeneratedAt string         `yaml:"generated_at"`
	Total       int            `yaml:"total"`
	ByCategory  map[string]int `yaml:"by_category"`
	Stats       types.RunStats `yaml:"stats"`
}

// BuildSummary computes category counts and totals from the exported rows.
func BuildSummary(rows []types.ExportRow, stats types.RunStats) Summary {
	byCategory := make(map[string]int)
	for _, r := range rows {
		byCategory[string(r.Category)]++
	}
	return Summary{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Total:       len(rows),
		ByCategory:  byCategory,
		Stats:       stats,
	}
}

// WriteSummary writes the YAML run summary next to csvPath, replacing the
// extension with -summary.yaml, and returns the path written.
func WriteSummary(csvPath string, rows []types.ExportRow, stats types.RunStats) (string, error) {
	summary := BuildSummary(rows, stats)
	data, err := yaml.Marshal(summary)
	if err != nil {
		return "", fmt.Errorf("marshaling summary: %w", err)
	}

	path := strings.TrimSuffix(csvPath, ".csv") + "-summary.yaml"
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing summary: %w", err)
	}
	return path, nil
}

// FormatSummary renders the summary as aligned console lines, categories in
// sorted order.
func FormatSummary(s Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total candidates  %d\n", s.Total)

	categories := make([]string, 0, len(s.ByCategory))
	for c := range s.ByCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, c := range categories {
		fmt.Fprintf(&b, "  %-15s %d\n", c, s.ByCategory[c])
	}

	fmt.Fprintf(&b, "Pages             %d", s.Stats.Pages)
	if s.Stats.PagesFailed > 0 {
		fmt.Fprintf(&b, " (%d failed)", s.Stats.PagesFailed)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Lines examined    %d\n", s.Stats.LinesSeen)
	fmt.Fprintf(&b, "Records parsed    %d\n", s.Stats.RecordsParsed)
	return b.String()
}
