package progress

// Streak lengths that unlock the session-end bonus tiers.
const (
	StreakBonusThreshold    = 3
	BigStreakBonusThreshold = 7
)

// StreakBonus returns the bonus points shown at session end for the
// given streak length. The bonus is display-only: it is never folded
// into persisted totals (see Tracker.FinishSession).
func StreakBonus(streak int) int {
	switch {
	case streak >= BigStreakBonusThreshold:
		return 50
	case streak >= StreakBonusThreshold:
		return 20
	default:
		return 0
	}
}
