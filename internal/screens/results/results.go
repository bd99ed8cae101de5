package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arjunm/dsamaster/internal/router"
	"github.com/arjunm/dsamaster/internal/screen"
	"github.com/arjunm/dsamaster/internal/session"
	"github.com/arjunm/dsamaster/internal/ui/layout"
	"github.com/arjunm/dsamaster/internal/ui/theme"
)

// ResultsScreen displays the end-of-session summary.
type ResultsScreen struct {
	summary *session.Summary
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a new ResultsScreen.
func New(summary *session.Summary) *ResultsScreen {
	return &ResultsScreen{summary: summary}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to menu"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	title := "Quiz complete!"
	if sum.Celebrate {
		title = "🎉 Outstanding work! 🎉"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(title))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Score: %d%%",
		sum.TotalQuestions, sum.TotalCorrect, sum.Percentage)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 50)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	pointsLines := []string{
		fmt.Sprintf("Session points      %4d", sum.SessionPoints),
	}
	if sum.StreakBonus > 0 {
		pointsLines = append(pointsLines,
			fmt.Sprintf("Streak bonus        %4d", sum.StreakBonus))
	}
	pointsLines = append(pointsLines,
		fmt.Sprintf("Total               %4d", sum.TotalWithBonus))
	for i, line := range pointsLines {
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == len(pointsLines)-1 {
			style = style.Bold(true)
		}
		if strings.Contains(line, "bonus") {
			style = lipgloss.NewStyle().Foreground(theme.Accent)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if sum.LeveledUp {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Badge.Render(fmt.Sprintf("⬆ Level up! You reached level %d", sum.Level))))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render(fmt.Sprintf("Current streak: %d", sum.Streak))))
	b.WriteString("\n")

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
