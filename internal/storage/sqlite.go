// Package storage provides SQLite-based history of completed demonstration
// runs. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only what was displayed is recorded; boards are never loaded back into
// the core.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunRecord summarizes one completed demonstration.
type RunRecord struct {
	ID        int64
	RunID     string
	Scenario  string
	Ships     int
	Steps     int
	Hits      int
	CreatedAt time.Time
}

// FrameRecord is one rendered step of a run.
type FrameRecord struct {
	Step  int
	Title string
	Hits  int
	Board string // Plain rendering of the result grid
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			scenario TEXT NOT NULL,
			ships INTEGER NOT NULL DEFAULT 0,
			steps INTEGER NOT NULL DEFAULT 0,
			hits INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);

		CREATE TABLE IF NOT EXISTS frames (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
			step INTEGER NOT NULL,
			title TEXT NOT NULL,
			hits INTEGER NOT NULL DEFAULT 0,
			board TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_frames_run ON frames(run_id, step);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a run and its frames in one transaction.
// Returns the generated run ID.
func (s *Store) SaveRun(scenario string, ships int, frames []FrameRecord) (string, error) {
	runID := uuid.NewString()

	hits := 0
	for _, f := range frames {
		hits += f.Hits
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	//nolint:errcheck // Rollback after Commit is a no-op
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT INTO runs (run_id, scenario, ships, steps, hits) VALUES (?, ?, ?, ?, ?)",
		runID, scenario, ships, len(frames), hits,
	); err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	for _, f := range frames {
		if _, err := tx.Exec(
			"INSERT INTO frames (run_id, step, title, hits, board) VALUES (?, ?, ?, ?, ?)",
			runID, f.Step, f.Title, f.Hits, f.Board,
		); err != nil {
			return "", fmt.Errorf("storage: cannot save frame %d: %w", f.Step, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return runID, nil
}

// RecentRuns retrieves the latest runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, scenario, ships, steps, hits, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RunID, &r.Scenario, &r.Ships, &r.Steps, &r.Hits, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Frames retrieves the frames of a run ordered by step.
func (s *Store) Frames(runID string) ([]FrameRecord, error) {
	rows, err := s.db.Query(
		`SELECT step, title, hits, board
		 FROM frames
		 WHERE run_id = ?
		 ORDER BY step`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query frames: %w", err)
	}
	defer rows.Close()

	var frames []FrameRecord
	for rows.Next() {
		var f FrameRecord
		if err := rows.Scan(&f.Step, &f.Title, &f.Hits, &f.Board); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		frames = append(frames, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return frames, nil
}

// ClearRuns deletes all recorded runs and frames.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM frames"); err != nil {
		return fmt.Errorf("storage: cannot clear frames: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
