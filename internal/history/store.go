// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists per-run extraction diagnostics in a local SQLite
// database. Recording is best-effort: the extraction contract never depends
// on it, the counts exist so that shorter-than-expected outputs can be
// investigated after the fact.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/adl-tools/candex/pkg/types"
)

const dbFile = "candex.db"

// Run is one recorded extraction run.
type Run struct {
	ID          int64
	CreatedAt   time.Time
	PDFPath     string
	OutputPath  string
	Department  string
	SessionDate string
	Stats       types.RunStats
}

// Store manages the run-history SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the history database under cfg.DataDir,
// creating the directory and schema as needed.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dataDir, dbFile)+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TEXT NOT NULL,
		pdf_path TEXT NOT NULL,
		output_path TEXT NOT NULL,
		department TEXT,
		session_date TEXT,
		pages INTEGER,
		pages_failed INTEGER,
		lines_seen INTEGER,
		records_parsed INTEGER,
		admissible INTEGER
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record inserts one run and returns its row ID. A zero CreatedAt is
// stamped with the current UTC time.
func (s *Store) Record(run Run) (int64, error) {
	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	res, err := s.db.Exec(
		`INSERT INTO runs (created_at, pdf_path, output_path, department, session_date,
			pages, pages_failed, lines_seen, records_parsed, admissible)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		createdAt.Format(time.RFC3339),
		run.PDFPath,
		run.OutputPath,
		run.Department,
		run.SessionDate,
		run.Stats.Pages,
		run.Stats.PagesFailed,
		run.Stats.LinesSeen,
		run.Stats.RecordsParsed,
		run.Stats.Admissible,
	)
	if err != nil {
		return 0, fmt.Errorf("recording run: %w", err)
	}
	return res.LastInsertId()
}

// List returns the most recent runs, newest first. A non-positive limit
// falls back to the store default.
func (s *Store) List(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.Query(
		`SELECT id, created_at, pdf_path, output_path, department, session_date,
			pages, pages_failed, lines_seen, records_parsed, admissible
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt string
		if err := rows.Scan(&r.ID, &createdAt, &r.PDFPath, &r.OutputPath,
			&r.Department, &r.SessionDate,
			&r.Stats.Pages, &r.Stats.PagesFailed, &r.Stats.LinesSeen,
			&r.Stats.RecordsParsed, &r.Stats.Admissible); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
			r.CreatedAt = ts
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
