package progress

import "fmt"

// CelebrationCorrectThreshold is the session correct count that
// triggers celebratory feedback on its own.
const CelebrationCorrectThreshold = 7

// Tracker owns the user's progression state and the rules for
// updating it per answer and per completed session. Not safe for
// concurrent use; the UI drives it from a single goroutine.
type Tracker struct {
	store StatsStore
	stats Stats
}

// SessionResult is what FinishSession reports back for display.
type SessionResult struct {
	// LeveledUp is true when the session pushed the user past a level
	// boundary.
	LeveledUp bool

	// StreakBonus is the display-only bonus from the cumulative streak
	// at session end.
	StreakBonus int
}

// NewTracker loads the persisted stats through the store port. A
// missing record yields DefaultStats.
func NewTracker(store StatsStore) (*Tracker, error) {
	stats, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}
	return &Tracker{store: store, stats: stats}, nil
}

// Stats returns a copy of the current progression state.
func (t *Tracker) Stats() Stats {
	return t.stats
}

// RecordAnswer updates the streak for one answered question and
// persists immediately, so a crash or reload loses no streak
// information.
func (t *Tracker) RecordAnswer(correct bool) error {
	if correct {
		t.stats.Streak++
	} else {
		t.stats.Streak = 0
	}
	if err := t.store.Save(t.stats); err != nil {
		return fmt.Errorf("save stats: %w", err)
	}
	return nil
}

// FinishSession folds a completed session into the persistent totals
// and reports the level-up flag and streak bonus for display.
//
// The bonus is computed from the cumulative streak, not the session's
// correct count, so a streak built across sessions still qualifies.
// It is intentionally not added to Experience or TotalPoints; only
// session points count toward leveling.
func (t *Tracker) FinishSession(sessionPoints, sessionCorrect int) (SessionResult, error) {
	bonus := StreakBonus(t.stats.Streak)

	newExperience := t.stats.Experience + sessionPoints
	newLevel := LevelForExperience(newExperience)
	leveledUp := newLevel > t.stats.Level

	t.stats.TotalPoints += sessionPoints
	t.stats.CorrectAnswers += sessionCorrect
	t.stats.Experience = newExperience
	t.stats.Level = newLevel
	// Streak stays as-is: it was already updated per answer.

	if err := t.store.Save(t.stats); err != nil {
		return SessionResult{}, fmt.Errorf("save stats: %w", err)
	}
	return SessionResult{LeveledUp: leveledUp, StreakBonus: bonus}, nil
}

// Celebrate reports whether the session earns celebratory feedback.
func Celebrate(sessionCorrect int, leveledUp bool) bool {
	return sessionCorrect >= CelebrationCorrectThreshold || leveledUp
}
