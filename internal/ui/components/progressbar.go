package components

import (
	"fmt"
	"strings"

	"github.com/arjunm/dsamaster/internal/ui/theme"
)

// ProgressBar renders a horizontal fill bar, used for experience
// toward the next level and for position within a quiz.
func ProgressBar(current, total, width int) string {
	if width < 4 {
		width = 4
	}
	if total <= 0 {
		total = 1
	}
	if current < 0 {
		current = 0
	}
	if current > total {
		current = total
	}

	filled := current * width / total
	bar := theme.ProgressFilled.Render(strings.Repeat("█", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat("░", width-filled))
	return bar
}

// XPBar renders the experience bar with a counter suffix.
func XPBar(progress, perLevel, width int) string {
	return fmt.Sprintf("%s %d/%d XP", ProgressBar(progress, perLevel, width), progress, perLevel)
}
