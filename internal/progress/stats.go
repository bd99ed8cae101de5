package progress

// ExperiencePerLevel is the experience span of one level.
const ExperiencePerLevel = 100

// Stats is the user's persistent cross-session record.
// Invariant: Level == Experience/ExperiencePerLevel + 1.
type Stats struct {
	// TotalPoints is the sum of all session points ever earned.
	TotalPoints int `json:"totalPoints"`

	// CorrectAnswers counts correct answers across all sessions.
	CorrectAnswers int `json:"correctAnswers"`

	// Streak counts consecutive correct answers since the last miss.
	// It survives across sessions until broken.
	Streak int `json:"streak"`

	Level      int `json:"level"`
	Experience int `json:"experience"`
}

// DefaultStats is the state of a user who has never played.
func DefaultStats() Stats {
	return Stats{Level: 1}
}

// LevelForExperience derives the level from accumulated experience.
func LevelForExperience(xp int) int {
	return xp/ExperiencePerLevel + 1
}

// LevelProgress returns the experience earned within the current
// level, in [0, ExperiencePerLevel).
func (s Stats) LevelProgress() int {
	return s.Experience % ExperiencePerLevel
}

// ExperienceToNextLevel returns how much experience remains until the
// next level.
func (s Stats) ExperienceToNextLevel() int {
	return ExperiencePerLevel - s.LevelProgress()
}

// StatsStore is the persistence port for Stats. The sqlite-backed
// implementation lives in internal/store; tests substitute an
// in-memory fake.
type StatsStore interface {
	// Load returns the persisted stats, or DefaultStats when nothing
	// has been saved yet.
	Load() (Stats, error)

	// Save persists the stats, replacing any previous value.
	Save(Stats) error
}
