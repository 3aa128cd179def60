// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history records strip runs in a SQLite database so earlier runs
// can be listed and exported.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/logstrip/internal/strip"
	"github.com/pdiddy/logstrip/pkg/types"
)

// DefaultDBPath is the database location relative to the run root.
const DefaultDBPath = ".logstrip/history.db"

const defaultLimit = 20

// now is replaced in tests.
var now = time.Now

// Run is one recorded batch with its per-file reports in processing order.
type Run struct {
	ID           string             `json:"id" yaml:"id"`
	StartedAt    time.Time          `json:"started_at" yaml:"started_at"`
	Root         string             `json:"root" yaml:"root"`
	Processed    int                `json:"processed" yaml:"processed"`
	Skipped      int                `json:"skipped" yaml:"skipped"`
	TotalRemoved int                `json:"total_removed" yaml:"total_removed"`
	Files        []types.FileReport `json:"files" yaml:"files"`
}

// Store manages the history SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the history database at cfg.DBPath, creating
// its directory and schema when missing.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("history database path not set")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
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
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			started_at TEXT NOT NULL,
			root TEXT NOT NULL,
			processed INTEGER NOT NULL,
			skipped INTEGER NOT NULL,
			total_removed INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS files (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			path TEXT NOT NULL,
			status TEXT NOT NULL,
			original_lines INTEGER NOT NULL,
			final_lines INTEGER NOT NULL,
			removed INTEGER NOT NULL,
			PRIMARY KEY (run_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores a completed batch under a new run ID and returns the ID.
// The run and its file rows are written in one transaction.
func (s *Store) Record(ctx context.Context, root string, result strip.BatchResult) (string, error) {
	runID := uuid.New().String()
	startedAt := now().UTC().Format(time.RFC3339Nano)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, root, processed, skipped, total_removed)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		runID, startedAt, root, result.Processed, result.Skipped, result.TotalRemoved,
	)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO files (run_id, position, path, status, original_lines, final_lines, removed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, f := range result.Files {
		_, err := stmt.ExecContext(ctx,
			runID, i, f.Path, string(f.Status), f.OriginalLines, f.FinalLines, f.Removed,
		)
		if err != nil {
			return "", fmt.Errorf("inserting file %s: %w", f.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// Runs returns up to limit recorded runs, newest first, each with its file
// reports. A limit of zero or less uses the default of 20.
func (s *Store) Runs(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, root, processed, skipped, total_removed
		 FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var startedAt string
		if err := rows.Scan(&r.ID, &startedAt, &r.Root, &r.Processed, &r.Skipped, &r.TotalRemoved); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing start time of run %s: %w", r.ID, err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	rows.Close()

	for i := range runs {
		files, err := s.files(ctx, runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Files = files
	}
	return runs, nil
}

func (s *Store) files(ctx context.Context, runID string) ([]types.FileReport, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT path, status, original_lines, final_lines, removed
		 FROM files WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying files for run %s: %w", runID, err)
	}
	defer rows.Close()

	var files []types.FileReport
	for rows.Next() {
		var f types.FileReport
		var status string
		if err := rows.Scan(&f.Path, &status, &f.OriginalLines, &f.FinalLines, &f.Removed); err != nil {
			return nil, fmt.Errorf("scanning file row: %w", err)
		}
		f.Status = types.FileStatus(status)
		files = append(files, f)
	}
	return files, rows.Err()
}
