package session

import (
	"time"

	"github.com/arjunm/dsamaster/internal/progress"
)

// Summary holds everything the results screen displays.
type Summary struct {
	Duration       time.Duration
	TotalQuestions int
	TotalCorrect   int
	Percentage     int

	// SessionPoints is the base points earned this session.
	SessionPoints int

	// StreakBonus is display-only; TotalWithBonus = SessionPoints +
	// StreakBonus is what the banner shows, not what was persisted.
	StreakBonus    int
	TotalWithBonus int

	LeveledUp bool
	Level     int
	Streak    int

	// Celebrate triggers the celebratory banner.
	Celebrate bool
}

func buildSummary(s *State, res progress.SessionResult, stats progress.Stats) *Summary {
	pct := 0
	if len(s.Questions) > 0 {
		pct = s.SessionCorrect * 100 / len(s.Questions)
	}
	return &Summary{
		Duration:       time.Since(s.StartTime),
		TotalQuestions: len(s.Questions),
		TotalCorrect:   s.SessionCorrect,
		Percentage:     pct,
		SessionPoints:  s.SessionPoints,
		StreakBonus:    res.StreakBonus,
		TotalWithBonus: s.SessionPoints + res.StreakBonus,
		LeveledUp:      res.LeveledUp,
		Level:          stats.Level,
		Streak:         stats.Streak,
		Celebrate:      progress.Celebrate(s.SessionCorrect, res.LeveledUp),
	}
}
