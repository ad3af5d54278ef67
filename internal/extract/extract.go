// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns the page text of an official results document into
// category-tagged candidate records. Lines are classified, parsed under the
// active category, filtered to the admissible subset, and handed to the
// exporter. The whole pipeline is synchronous: category state is a
// sequential carry between pages, so pages are processed strictly in
// document order.
package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/adl-tools/candex/pkg/types"
)

// Source yields per-page text for a paginated document. Implementations
// report text only, in natural reading order; layout and coordinates are
// never inspected.
type Source interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// PageText returns the text of 1-based page n, or an empty string when
	// the page yields no extractable text.
	PageText(n int) (string, error)
}

// PageResult is the outcome of extracting one page. A failed page carries
// Err and contributes no records; the document traversal continues past it
// regardless.
type PageResult struct {
	Page    int
	Records []types.CandidateRecord
	Lines   int
	Err     error
}

// ParsePage extracts the candidate records from one page's raw text. The
// active category is seeded from the carried-in value and the category in
// effect at the end of the page is returned, so sections spanning a page
// boundary keep their tag. Candidate lines seen before any banner are
// dropped: a record without a known category is meaningless. The third
// return value counts the non-noise lines examined.
func ParsePage(text string, active types.Category) ([]types.CandidateRecord, types.Category, int) {
	var records []types.CandidateRecord
	seen := 0

	for _, raw := range strings.Split(text, "\n") {
		c := ClassifyLine(strings.TrimSpace(raw), active)
		switch c.Kind {
		case LineNoise:
			continue
		case LineCategoryChange:
			active = c.Category
		}
		if active == "" || c.Line == "" {
			continue
		}
		seen++
		if rec, ok := ParseCandidateLine(c.Line, active); ok {
			records = append(records, rec)
		}
	}

	return records, active, seen
}

// ExtractDocument walks every page of src in document order, threading the
// category state from each page into the next, and concatenates the records
// preserving overall document order. A page whose text cannot be read is
// reported on w and skipped with zero records; only the aggregate
// absence-of-data condition can surface afterwards, never a per-page error.
func ExtractDocument(src Source, w io.Writer) ([]types.CandidateRecord, types.RunStats) {
	stats := types.RunStats{Pages: src.PageCount()}
	active := types.Category("")

	results := make([]PageResult, 0, stats.Pages)
	for n := 1; n <= stats.Pages; n++ {
		text, err := src.PageText(n)
		if err != nil {
			results = append(results, PageResult{Page: n, Err: err})
			continue
		}
		recs, next, seen := ParsePage(text, active)
		active = next
		results = append(results, PageResult{Page: n, Records: recs, Lines: seen})
	}

	var all []types.CandidateRecord
	for _, r := range results {
		if r.Err != nil {
			stats.PagesFailed++
			fmt.Fprintf(w, "page %d: skipped (%v)\n", r.Page, r.Err)
			continue
		}
		stats.LinesSeen += r.Lines
		all = append(all, r.Records...)
		fmt.Fprintf(w, "page %d: %d candidate(s)\n", r.Page, len(r.Records))
	}

	stats.RecordsParsed = len(all)
	return all, stats
}

// FilterAdmissible keeps the records whose decision equals ADMISSIBLE.
// Parsing already uppercased the decision; the comparison re-normalizes
// case anyway so a record built elsewhere cannot slip through.
func FilterAdmissible(records []types.CandidateRecord) []types.CandidateRecord {
	var kept []types.CandidateRecord
	for _, r := range records {
		if strings.ToUpper(string(r.Decision)) == string(types.DecisionAdmissible) {
			kept = append(kept, r)
		}
	}
	return kept
}
