package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/arjunm/dsamaster/internal/progress"
)

// statsKey is the kv key the stats blob lives under.
const statsKey = "stats"

// StatsRepo persists the progression stats as a single JSON blob.
// It implements progress.StatsStore.
type StatsRepo struct {
	db *sql.DB
}

// Load reads the stats blob. A missing or malformed blob yields the
// defaults so a fresh or damaged database never blocks startup.
func (r *StatsRepo) Load() (progress.Stats, error) {
	var raw string
	err := r.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, statsKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return progress.DefaultStats(), nil
	}
	if err != nil {
		return progress.Stats{}, fmt.Errorf("load stats: %w", err)
	}

	var s progress.Stats
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return progress.DefaultStats(), nil
	}
	if s.Level < 1 {
		s.Level = 1
	}
	return s, nil
}

// Save writes the stats blob, replacing any previous value.
func (r *StatsRepo) Save(s progress.Stats) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	_, err = r.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		statsKey, string(raw),
	)
	if err != nil {
		return fmt.Errorf("save stats: %w", err)
	}
	return nil
}

// Reset deletes the stats blob so the next Load yields defaults.
func (r *StatsRepo) Reset() error {
	if _, err := r.db.Exec(`DELETE FROM kv WHERE key = ?`, statsKey); err != nil {
		return fmt.Errorf("reset stats: %w", err)
	}
	return nil
}
