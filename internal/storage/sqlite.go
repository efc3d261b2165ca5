// Package storage provides SQLite-based persistence for saved runs and the
// completion log. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunRecord is a run saved for later resumption. One record per slot.
type RunRecord struct {
	Slot      string
	RunID     string
	Seed      int64
	Level     int
	Coins     int
	TimeLeft  int
	Speed     int
	UpdatedAt time.Time
}

// Completion is one entry of the completion log: a run that cleared every level.
type Completion struct {
	ID           int64
	RunID        string
	Player       string
	DurationSecs int
	CreatedAt    time.Time
}

// NewRunID returns a fresh identifier for a run.
func NewRunID() string {
	return uuid.NewString()
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
		CREATE TABLE IF NOT EXISTS saved_runs (
			slot TEXT PRIMARY KEY,
			run_id TEXT NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL,
			coins INTEGER NOT NULL,
			time_left INTEGER NOT NULL,
			speed INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_completions_created ON completions(created_at DESC);
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

// SaveRun stores rec in its slot, replacing whatever was there.
func (s *Store) SaveRun(rec RunRecord) error {
	if rec.Slot == "" {
		return errors.New("storage: run slot is empty")
	}
	if rec.RunID == "" {
		rec.RunID = NewRunID()
	}

	_, err := s.db.Exec(
		`INSERT INTO saved_runs (slot, run_id, seed, level, coins, time_left, speed, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET
		   run_id = excluded.run_id,
		   seed = excluded.seed,
		   level = excluded.level,
		   coins = excluded.coins,
		   time_left = excluded.time_left,
		   speed = excluded.speed,
		   updated_at = CURRENT_TIMESTAMP`,
		rec.Slot, rec.RunID, rec.Seed, rec.Level, rec.Coins, rec.TimeLeft, rec.Speed,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save run: %w", err)
	}
	return nil
}

// LoadRun returns the run saved in slot, or nil if the slot is empty.
func (s *Store) LoadRun(slot string) (*RunRecord, error) {
	var rec RunRecord
	var updatedAt any

	err := s.db.QueryRow(
		`SELECT slot, run_id, seed, level, coins, time_left, speed, updated_at
		 FROM saved_runs
		 WHERE slot = ?`,
		slot,
	).Scan(&rec.Slot, &rec.RunID, &rec.Seed, &rec.Level, &rec.Coins, &rec.TimeLeft, &rec.Speed, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}

	rec.UpdatedAt = parseTimestamp(updatedAt)
	return &rec, nil
}

// ClearRun empties slot. Clearing an empty slot is not an error.
func (s *Store) ClearRun(slot string) error {
	if _, err := s.db.Exec("DELETE FROM saved_runs WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("storage: cannot clear run: %w", err)
	}
	return nil
}

// RecordCompletion appends c to the completion log.
// Returns the ID of the inserted record.
func (s *Store) RecordCompletion(c Completion) (int64, error) {
	if c.RunID == "" {
		c.RunID = NewRunID()
	}

	result, err := s.db.Exec(
		"INSERT INTO completions (run_id, player, duration_secs) VALUES (?, ?, ?)",
		c.RunID, c.Player, c.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record completion: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// Completions returns the most recent completions, newest first.
func (s *Store) Completions(limit int) ([]Completion, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, player, duration_secs, created_at
		 FROM completions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completions: %w", err)
	}
	defer rows.Close()

	var entries []Completion
	for rows.Next() {
		var c Completion
		var createdAt any
		if err := rows.Scan(&c.ID, &c.RunID, &c.Player, &c.DurationSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		c.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// CompletionCount returns how many runs have been completed.
func (s *Store) CompletionCount() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM completions").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count completions: %w", err)
	}
	return n, nil
}

// parseTimestamp handles both driver-decoded times and raw SQLite strings.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
