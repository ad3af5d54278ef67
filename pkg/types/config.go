package types

// ExtractionConfig holds settings for one extraction run.
type ExtractionConfig struct {
	// PDFPath is the source results document. Must exist and carry a .pdf
	// extension; both are checked before any page is read.
	PDFPath string `json:"pdf_path" yaml:"pdf_path"`

	// OutputPath is the destination CSV file. Parent directories are
	// created on demand.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Department is an opaque passthrough string attached to every
	// exported row (e.g. "75", "Paris").
	Department string `json:"department" yaml:"department"`

	// SessionDate is an opaque passthrough string attached to every
	// exported row (e.g. "2024-01-15"). Not validated as a date.
	SessionDate string `json:"session_date" yaml:"session_date"`

	// WriteSummary controls whether a YAML run summary is written next to
	// the CSV output.
	WriteSummary bool `json:"write_summary" yaml:"write_summary"`
}

// EnrichmentConfig holds settings shared by the enrichment stages.
type EnrichmentConfig struct {
	// InputPath is the candidates CSV to enrich.
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutputPath is the enriched CSV destination.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// MaxRows caps how many rows are enriched in one run; rows past the
	// cap are carried through unmodified and marked skipped (default 20).
	MaxRows int `json:"max_rows" yaml:"max_rows"`

	// APIKey is the lookup-service key, plumbed through for the eventual
	// real integration. The stub generators ignore it.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// HistoryConfig holds settings for the local run-history store.
type HistoryConfig struct {
	// DataDir is the directory holding the history database (default "data").
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// MaxResults is the default maximum number of runs listed (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
