package progress

import (
	"errors"
	"testing"
)

// memStore is an in-memory StatsStore fake.
type memStore struct {
	stats  Stats
	loaded bool
	saves  int
	fail   bool
}

func (m *memStore) Load() (Stats, error) {
	if !m.loaded {
		return DefaultStats(), nil
	}
	return m.stats, nil
}

func (m *memStore) Save(s Stats) error {
	if m.fail {
		return errors.New("disk full")
	}
	m.stats = s
	m.loaded = true
	m.saves++
	return nil
}

func newTestTracker(t *testing.T, initial *Stats) (*Tracker, *memStore) {
	t.Helper()
	store := &memStore{}
	if initial != nil {
		store.stats = *initial
		store.loaded = true
	}
	tr, err := NewTracker(store)
	if err != nil {
		t.Fatalf("new tracker: %v", err)
	}
	return tr, store
}

func TestNewTrackerDefaults(t *testing.T) {
	tr, _ := newTestTracker(t, nil)
	s := tr.Stats()
	if s.Level != 1 || s.TotalPoints != 0 || s.Streak != 0 || s.Experience != 0 {
		t.Errorf("default stats = %+v, want zeroed with level 1", s)
	}
}

func TestRecordAnswerIncrementsStreak(t *testing.T) {
	tr, store := newTestTracker(t, nil)

	for i := 1; i <= 5; i++ {
		if err := tr.RecordAnswer(true); err != nil {
			t.Fatalf("record answer %d: %v", i, err)
		}
		if got := tr.Stats().Streak; got != i {
			t.Errorf("streak after %d correct = %d, want %d", i, got, i)
		}
	}
	// Write-through: every call persisted.
	if store.saves != 5 {
		t.Errorf("saves = %d, want 5", store.saves)
	}
	if store.stats.Streak != 5 {
		t.Errorf("persisted streak = %d, want 5", store.stats.Streak)
	}
}

func TestRecordAnswerResetsStreak(t *testing.T) {
	tr, store := newTestTracker(t, &Stats{Streak: 42, Level: 1})
	if err := tr.RecordAnswer(false); err != nil {
		t.Fatalf("record answer: %v", err)
	}
	if got := tr.Stats().Streak; got != 0 {
		t.Errorf("streak = %d, want 0", got)
	}
	if store.stats.Streak != 0 {
		t.Errorf("persisted streak = %d, want 0", store.stats.Streak)
	}
}

func TestFinishSessionUpdatesTotals(t *testing.T) {
	tr, store := newTestTracker(t, nil)

	// Answer 3 questions worth 10 points correctly in a row.
	for i := 0; i < 3; i++ {
		if err := tr.RecordAnswer(true); err != nil {
			t.Fatalf("record answer: %v", err)
		}
	}
	res, err := tr.FinishSession(30, 3)
	if err != nil {
		t.Fatalf("finish session: %v", err)
	}

	if res.StreakBonus != 20 {
		t.Errorf("streak bonus = %d, want 20", res.StreakBonus)
	}
	if res.LeveledUp {
		t.Error("should not have leveled up at 30 xp")
	}

	s := tr.Stats()
	if s.Experience != 30 {
		t.Errorf("experience = %d, want 30 (bonus must not be folded in)", s.Experience)
	}
	if s.TotalPoints != 30 {
		t.Errorf("totalPoints = %d, want 30", s.TotalPoints)
	}
	if s.CorrectAnswers != 3 {
		t.Errorf("correctAnswers = %d, want 3", s.CorrectAnswers)
	}
	if s.Level != 1 {
		t.Errorf("level = %d, want 1", s.Level)
	}
	if s.Streak != 3 {
		t.Errorf("streak = %d, want 3 (FinishSession must not touch it)", s.Streak)
	}
	if store.stats != s {
		t.Errorf("persisted stats %+v differ from in-memory %+v", store.stats, s)
	}
}

func TestFinishSessionLevelUp(t *testing.T) {
	tr, _ := newTestTracker(t, &Stats{Experience: 90, Level: 1})

	res, err := tr.FinishSession(25, 2)
	if err != nil {
		t.Fatalf("finish session: %v", err)
	}
	if !res.LeveledUp {
		t.Error("expected level up at 115 xp")
	}

	s := tr.Stats()
	if s.Experience != 115 {
		t.Errorf("experience = %d, want 115", s.Experience)
	}
	if s.Level != 2 {
		t.Errorf("level = %d, want 2", s.Level)
	}
}

func TestLevelInvariantHolds(t *testing.T) {
	tr, _ := newTestTracker(t, nil)
	points := []int{30, 45, 80, 10, 120, 95}
	for _, p := range points {
		if _, err := tr.FinishSession(p, 1); err != nil {
			t.Fatalf("finish session: %v", err)
		}
		s := tr.Stats()
		if want := LevelForExperience(s.Experience); s.Level != want {
			t.Fatalf("level = %d, want %d for %d xp", s.Level, want, s.Experience)
		}
	}
}

func TestStreakBonusFromCumulativeStreak(t *testing.T) {
	// A streak built in earlier sessions still qualifies: 7 straight
	// correct answers carried in, a 1-question session keeps it going.
	tr, _ := newTestTracker(t, &Stats{Streak: 7, Level: 1})
	if err := tr.RecordAnswer(true); err != nil {
		t.Fatalf("record answer: %v", err)
	}
	res, err := tr.FinishSession(10, 1)
	if err != nil {
		t.Fatalf("finish session: %v", err)
	}
	if res.StreakBonus != 50 {
		t.Errorf("streak bonus = %d, want 50 from cumulative streak 8", res.StreakBonus)
	}
}

func TestSaveFailureSurfaces(t *testing.T) {
	store := &memStore{fail: true}
	tr, err := NewTracker(store)
	if err != nil {
		t.Fatalf("new tracker: %v", err)
	}
	if err := tr.RecordAnswer(true); err == nil {
		t.Error("expected error from failing store on RecordAnswer")
	}
	if _, err := tr.FinishSession(10, 1); err == nil {
		t.Error("expected error from failing store on FinishSession")
	}
}

func TestLevelForExperience(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{115, 2},
		{199, 2},
		{200, 3},
		{1000, 11},
	}
	for _, tt := range tests {
		if got := LevelForExperience(tt.xp); got != tt.want {
			t.Errorf("LevelForExperience(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}
