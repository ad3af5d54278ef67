// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"

	"github.com/adl-tools/candex/pkg/types"
)

// headerMarkers identify column-header and results-banner rows. A line
// containing any of these is noise regardless of the rest of its content.
var headerMarkers = []string{"Catégorie", "RESULTATS"}

// categoryPrefixes maps each banner prefix to its category. Matching is
// exact, case-sensitive, and anchored at line start.
var categoryPrefixes = []struct {
	prefix   string
	category types.Category
}{
	{"TAXIS", types.CategoryTaxis},
	{"VTC", types.CategoryVTC},
}

// LineKind classifies one stripped line of page text.
type LineKind int

const (
	// LineNoise marks blank lines and header rows. Noise never changes the
	// active category and never reaches the parser.
	LineNoise LineKind = iota

	// LineCategoryChange marks a category banner. The banner line may carry
	// the first candidate record concatenated after the prefix, so the
	// remainder must be re-examined as an ordinary candidate line.
	LineCategoryChange

	// LineCandidate marks a line to parse under the active category.
	LineCandidate
)

// Classification is the outcome of classifying one line.
type Classification struct {
	Kind LineKind

	// Category is the new active category for LineCategoryChange, or the
	// unchanged incoming category otherwise. May be empty when no banner
	// has been seen yet.
	Category types.Category

	// Line is the content left to parse: the remainder after the banner
	// prefix for LineCategoryChange, the original line for LineCandidate.
	Line string
}

// ClassifyLine decides whether a line (already stripped of surrounding
// whitespace) opens a new category section, is noise, or is a candidate
// record line under the category active before this line.
func ClassifyLine(line string, active types.Category) Classification {
	if line == "" {
		return Classification{Kind: LineNoise, Category: active}
	}
	for _, marker := range headerMarkers {
		if strings.Contains(line, marker) {
			return Classification{Kind: LineNoise, Category: active}
		}
	}
	for _, p := range categoryPrefixes {
		if strings.HasPrefix(line, p.prefix) {
			rest := strings.TrimSpace(line[len(p.prefix):])
			return Classification{Kind: LineCategoryChange, Category: p.category, Line: rest}
		}
	}
	return Classification{Kind: LineCandidate, Category: active, Line: line}
}
