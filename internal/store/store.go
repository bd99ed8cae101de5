package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite database holding the user's stats blob and
// the append-only event log.
type Store struct {
	db  *sql.DB
	seq *sequenceCounter
}

// Open connects to the SQLite database at dsn, applies recommended
// pragmas, and creates any missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init sequence counter: %w", err)
	}

	return &Store{db: db, seq: seq}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// StatsRepo returns the stats blob repository backed by this store.
func (s *Store) StatsRepo() *StatsRepo {
	return &StatsRepo{db: s.db}
}

// EventRepo returns the event log repository backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{db: s.db, seq: s.seq}
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// migrate creates the schema. Timestamps are stored as Unix seconds.
func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS answer_events (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			sequence       INTEGER NOT NULL,
			session_id     TEXT NOT NULL,
			question_id    TEXT NOT NULL,
			question_type  TEXT NOT NULL,
			difficulty     TEXT NOT NULL,
			submitted      TEXT NOT NULL,
			correct_answer TEXT NOT NULL,
			correct        INTEGER NOT NULL,
			points         INTEGER NOT NULL,
			timestamp      INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS session_events (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			sequence      INTEGER NOT NULL,
			session_id    TEXT NOT NULL,
			action        TEXT NOT NULL,
			questions     INTEGER NOT NULL,
			correct       INTEGER NOT NULL,
			points        INTEGER NOT NULL,
			streak_bonus  INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL,
			timestamp     INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_answer_events_session ON answer_events(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_session_events_action ON session_events(action, timestamp)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. DSAMASTER_DB environment variable
// 2. $XDG_DATA_HOME/dsamaster/dsamaster.db
// 3. ~/.local/share/dsamaster/dsamaster.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("DSAMASTER_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "dsamaster", "dsamaster.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
