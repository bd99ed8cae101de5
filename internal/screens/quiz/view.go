package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/arjunm/dsamaster/internal/catalog"
	"github.com/arjunm/dsamaster/internal/ui/components"
	"github.com/arjunm/dsamaster/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.quitConfirm {
		return renderQuitConfirm(width, height)
	}

	q := s.state.Current()
	if q == nil {
		return ""
	}

	var b strings.Builder

	// Position line with progress bar.
	pos := fmt.Sprintf("Question %d of %d", s.state.Index+1, len(s.state.Questions))
	bar := components.ProgressBar(s.state.Index+1, len(s.state.Questions), 24)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render(pos)+"   "+bar))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render(fmt.Sprintf("%s · %s · %d pts",
			q.Topic, q.Difficulty, q.PointValue()))))
	b.WriteString("\n\n")

	// Prompt.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Width(min(width-8, 70)).
			Render(q.Prompt)))
	b.WriteString("\n\n")

	// Code snippet for code-completion questions.
	if q.Code != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.CodeBlock.Render(q.Code)))
		b.WriteString("\n\n")
	}

	if s.showingFeedback {
		b.WriteString(s.renderFeedback(q, width))
	} else {
		b.WriteString(s.renderInput(q, width))
	}

	return b.String()
}

// renderInput renders the answer widget for the current question type.
func (s *QuizScreen) renderInput(q *catalog.Question, width int) string {
	switch q.Type {
	case catalog.TypeMultipleChoice, catalog.TypeTrueFalse:
		return s.renderOptions(optionsFor(q), width)
	case catalog.TypeCodeCompletion:
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View())
	case catalog.TypeMatching:
		return s.renderMatching(q, width)
	}
	return ""
}

func (s *QuizScreen) renderOptions(opts []string, width int) string {
	var b strings.Builder
	for i, opt := range opts {
		line := fmt.Sprintf("  %d. %s", i+1, opt)
		style := theme.Unselected
		if i == s.optSelected {
			line = fmt.Sprintf("▸ %d. %s", i+1, opt)
			style = theme.Selected
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *QuizScreen) renderMatching(q *catalog.Question, width int) string {
	var b strings.Builder
	for i, p := range q.MatchingPairs {
		right := "———"
		if idx, ok := s.matchChoice[p.Left]; ok {
			right = q.MatchingPairs[idx].Right
		}
		line := fmt.Sprintf("  %-28s ⇔  %s", p.Left, right)
		style := theme.Unselected
		if i == s.matchCursor {
			line = fmt.Sprintf("▸ %-28s ⇔  %s", p.Left, right)
			style = theme.Selected
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}

// renderFeedback shows the graded outcome with the explanation.
func (s *QuizScreen) renderFeedback(q *catalog.Question, width int) string {
	var b strings.Builder

	if s.lastRecord.Correct {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Correct.Render(fmt.Sprintf("✓ Correct!  +%d points", s.lastRecord.Points))))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render("✗ Incorrect")))
		b.WriteString("\n")
		answer := q.CorrectAnswer
		if q.Type == catalog.TypeMatching {
			answer = strings.Join(q.CorrectPairs, ", ")
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Body.Render("Answer: "+answer)))
	}
	b.WriteString("\n\n")

	if q.Explanation != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Width(min(width-8, 70)).Render(q.Explanation)))
		b.WriteString("\n")
	}

	return b.String()
}

func renderQuitConfirm(width, height int) string {
	msg := theme.Card.Render(
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render("Abandon this quiz?") + "\n\n" +
			theme.Hint.Render("Session points will be lost. [y/n]"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

func renderError(width, height int, msg string) string {
	content := theme.Incorrect.Render("Something went wrong") + "\n\n" +
		theme.Hint.Render(msg) + "\n\n" +
		theme.Hint.Render("Press any key to go back")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
