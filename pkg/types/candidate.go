// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the candex pipeline.
package types

// Category identifies the professional licensing class a candidate was
// examined under. The two values match the banner labels used in the
// official results document.
type Category string

const (
	CategoryTaxis Category = "TAXIS"
	CategoryVTC   Category = "VTC"
)

// Decision is the pass/fail outcome recorded for a candidate by the
// issuing authority. Values are normalized to uppercase at parse time.
type Decision string

const (
	DecisionAdmissible    Decision = "ADMISSIBLE"
	DecisionNonAdmissible Decision = "NON_ADMISSIBLE"
)

// CandidateRecord is one parsed candidate line from the results document.
// Records are only ever built from lines that matched the full candidate
// grammar; malformed lines never produce a record.
type CandidateRecord struct {
	// Category is the licensing class active when the line was parsed.
	// Never empty on a constructed record.
	Category Category `json:"category" yaml:"category"`

	// CandidateNumber is the short alphanumeric token identifying the
	// candidate. Opaque; uniqueness is not enforced.
	CandidateNumber string `json:"candidate_number" yaml:"candidate_number"`

	// FirstName is the first whitespace-delimited token of the name portion.
	FirstName string `json:"first_name" yaml:"first_name"`

	// LastName is the remaining name tokens joined by single spaces. Empty
	// when the name portion had only one token.
	LastName string `json:"last_name" yaml:"last_name"`

	// Decision is ADMISSIBLE or NON_ADMISSIBLE.
	Decision Decision `json:"decision" yaml:"decision"`
}

// ExportRow is a filtered candidate record with the run metadata attached,
// ready for tabular serialization. Metadata fields carry the caller-supplied
// values verbatim and are identical on every row of a run.
type ExportRow struct {
	CandidateRecord `yaml:",inline"`

	// Department is the department code or name supplied by the caller.
	Department string `json:"department" yaml:"department"`

	// SessionDate is the session date string supplied by the caller.
	// No date validation is performed.
	SessionDate string `json:"session_date" yaml:"session_date"`
}

// RunStats holds diagnostic counts from one extraction run. The counts are
// an observability seam only; they never change the success or failure of
// the run itself.
type RunStats struct {
	// Pages is the number of pages the document reported.
	Pages int `json:"pages" yaml:"pages"`

	// PagesFailed counts pages skipped because their text could not be read.
	PagesFailed int `json:"pages_failed" yaml:"pages_failed"`

	// LinesSeen counts non-noise lines examined across all pages.
	LinesSeen int `json:"lines_seen" yaml:"lines_seen"`

	// RecordsParsed counts candidate lines that matched the grammar.
	RecordsParsed int `json:"records_parsed" yaml:"records_parsed"`

	// Admissible counts records that survived the admissibility filter.
	Admissible int `json:"admissible" yaml:"admissible"`
}
