package extract

import (
	"testing"

	"github.com/adl-tools/candex/pkg/types"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name         string
		line         string
		active       types.Category
		wantKind     LineKind
		wantCategory types.Category
		wantLine     string
	}{
		{
			name:     "empty line is noise",
			line:     "",
			active:   types.CategoryTaxis,
			wantKind: LineNoise, wantCategory: types.CategoryTaxis,
		},
		{
			name:     "column header is noise",
			line:     "Catégorie N° candidat Prénom NOM DECISION",
			active:   types.CategoryTaxis,
			wantKind: LineNoise, wantCategory: types.CategoryTaxis,
		},
		{
			name:     "results banner is noise",
			line:     "RESULTATS DE LA SESSION",
			wantKind: LineNoise, wantCategory: "",
		},
		{
			name:     "header marker anywhere in line is noise",
			line:     "Liste par Catégorie",
			active:   types.CategoryVTC,
			wantKind: LineNoise, wantCategory: types.CategoryVTC,
		},
		{
			name:     "taxis banner changes category",
			line:     "TAXIS",
			active:   types.CategoryVTC,
			wantKind: LineCategoryChange, wantCategory: types.CategoryTaxis,
			wantLine: "",
		},
		{
			name:     "vtc banner changes category",
			line:     "VTC",
			wantKind: LineCategoryChange, wantCategory: types.CategoryVTC,
			wantLine: "",
		},
		{
			name:     "banner with record on same line keeps remainder",
			line:     "TAXIS AB123 Jean Dupont ADMISSIBLE",
			wantKind: LineCategoryChange, wantCategory: types.CategoryTaxis,
			wantLine: "AB123 Jean Dupont ADMISSIBLE",
		},
		{
			name:     "prefix match is anchored at line start",
			line:     "LES TAXIS AB123 Jean ADMISSIBLE",
			active:   types.CategoryVTC,
			wantKind: LineCandidate, wantCategory: types.CategoryVTC,
			wantLine: "LES TAXIS AB123 Jean ADMISSIBLE",
		},
		{
			name:     "candidate line passes through with active category",
			line:     "XY99 Marie NON-ADMISSIBLE",
			active:   types.CategoryVTC,
			wantKind: LineCandidate, wantCategory: types.CategoryVTC,
			wantLine: "XY99 Marie NON-ADMISSIBLE",
		},
		{
			name:     "candidate line with no active category still passes through empty",
			line:     "XY99 Marie ADMISSIBLE",
			wantKind: LineCandidate, wantCategory: "",
			wantLine: "XY99 Marie ADMISSIBLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyLine(tt.line, tt.active)
			if got.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if got.Category != tt.wantCategory {
				t.Errorf("Category = %q, want %q", got.Category, tt.wantCategory)
			}
			if got.Line != tt.wantLine {
				t.Errorf("Line = %q, want %q", got.Line, tt.wantLine)
			}
		})
	}
}
