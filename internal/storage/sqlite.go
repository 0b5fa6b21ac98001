// Package storage provides SQLite-based persistence for recorded runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/replay"
)

// DefaultPath is where runs are stored when no path is given.
const DefaultPath = "~/.snake/runs.db"

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunRecord is a stored run. Journal.Events is only filled by Run.
type RunRecord struct {
	ID        string
	Score     uint
	Ticks     uint64
	Length    int
	CreatedAt time.Time
	Journal   replay.Journal
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
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			rules_yaml TEXT NOT NULL,
			score INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			length INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);

		CREATE TABLE IF NOT EXISTS run_events (
			run_id TEXT NOT NULL REFERENCES runs(id),
			seq INTEGER NOT NULL,
			kind TEXT NOT NULL,
			dir TEXT NOT NULL DEFAULT 'none',
			dt REAL NOT NULL DEFAULT 0,
			PRIMARY KEY (run_id, seq)
		);
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

// SaveRun stores a journal together with the final state it produced.
// Returns the generated run ID.
func (s *Store) SaveRun(j replay.Journal, final snake.Snapshot) (string, error) {
	rulesYAML, err := replay.EncodeRules(j.Rules)
	if err != nil {
		return "", fmt.Errorf("storage: %w", err)
	}

	id := uuid.NewString()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO runs (id, seed, rules_yaml, score, ticks, length)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, j.Seed, rulesYAML, int64(final.Score), int64(final.Ticks), final.SnakeLen,
	); err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO run_events (run_id, seq, kind, dir, dt) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("storage: cannot prepare event insert: %w", err)
	}
	defer stmt.Close()

	for seq, ev := range j.Events {
		if _, err := stmt.Exec(id, seq, ev.Kind.String(), ev.Dir.String(), ev.DT); err != nil {
			return "", fmt.Errorf("storage: cannot save event %d: %w", seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return id, nil
}

// Run loads a run with its full journal. Returns nil if no run has that ID.
func (s *Store) Run(id string) (*RunRecord, error) {
	var rec RunRecord
	var rulesYAML string
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, seed, rules_yaml, score, ticks, length, created_at
		 FROM runs
		 WHERE id = ?`,
		id,
	).Scan(&rec.ID, &rec.Journal.Seed, &rulesYAML, &rec.Score, &rec.Ticks, &rec.Length, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}

	rec.CreatedAt = parseTime(createdAt)
	if rec.Journal.Rules, err = replay.DecodeRules(rulesYAML); err != nil {
		return nil, fmt.Errorf("storage: run %s: %w", id, err)
	}
	if rec.Journal.Events, err = s.events(id); err != nil {
		return nil, err
	}

	return &rec, nil
}

func (s *Store) events(runID string) ([]replay.Event, error) {
	rows, err := s.db.Query(
		`SELECT kind, dir, dt FROM run_events WHERE run_id = ? ORDER BY seq`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query events: %w", err)
	}
	defer rows.Close()

	var events []replay.Event
	for rows.Next() {
		var kind, dir string
		var ev replay.Event
		if err := rows.Scan(&kind, &dir, &ev.DT); err != nil {
			return nil, fmt.Errorf("storage: cannot scan event: %w", err)
		}
		if ev.Kind, err = replay.ParseKind(kind); err != nil {
			return nil, fmt.Errorf("storage: %w", err)
		}
		ev.Dir = snake.ParseDirection(dir)
		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return events, nil
}

// RecentRuns retrieves the most recent runs without their events.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, rules_yaml, score, ticks, length, created_at
		 FROM runs
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var rec RunRecord
		var rulesYAML string
		var createdAt any
		if err := rows.Scan(&rec.ID, &rec.Journal.Seed, &rulesYAML, &rec.Score, &rec.Ticks, &rec.Length, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		rec.CreatedAt = parseTime(createdAt)
		// A run with unreadable rules is still listed; replaying it reports the error.
		if rules, err := replay.DecodeRules(rulesYAML); err == nil {
			rec.Journal.Rules = rules
		}
		runs = append(runs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// DeleteRun removes a run and its events. Deleting a missing run is not an error.
func (s *Store) DeleteRun(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM run_events WHERE run_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete events: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM runs WHERE id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string values for DATETIME columns.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
