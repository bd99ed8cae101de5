package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arjunm/dsamaster/internal/screen"
	"github.com/arjunm/dsamaster/internal/store"
	"github.com/arjunm/dsamaster/internal/ui/theme"
)

const historyLimit = 20

// HistoryScreen lists recently completed quiz sessions.
type HistoryScreen struct {
	events  store.EventRepo
	records []store.SessionRecord
	errMsg  string
	loaded  bool
}

var _ screen.Screen = (*HistoryScreen)(nil)

type historyLoadedMsg struct {
	Records []store.SessionRecord
	Err     error
}

// New creates a new HistoryScreen.
func New(events store.EventRepo) *HistoryScreen {
	return &HistoryScreen{events: events}
}

func (h *HistoryScreen) Init() tea.Cmd {
	events := h.events
	return func() tea.Msg {
		if events == nil {
			return historyLoadedMsg{}
		}
		records, err := events.RecentSessions(context.Background(), historyLimit)
		return historyLoadedMsg{Records: records, Err: err}
	}
}

func (h *HistoryScreen) Title() string {
	return "History"
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(historyLoadedMsg); ok {
		h.loaded = true
		h.records = m.Records
		if m.Err != nil {
			h.errMsg = m.Err.Error()
		}
	}
	return h, nil
}

func (h *HistoryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Recent Quizzes"))
	b.WriteString("\n\n")

	switch {
	case h.errMsg != "":
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render(h.errMsg)))
	case !h.loaded:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Loading...")))
	case len(h.records) == 0:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("No quizzes yet. Start one from the menu!")))
	default:
		header := fmt.Sprintf("%-12s  %9s  %7s  %6s  %8s",
			"Date", "Correct", "Points", "Bonus", "Time")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render(header)))
		b.WriteString("\n")
		for _, rec := range h.records {
			line := fmt.Sprintf("%-12s  %5d/%-3d  %7d  %6d  %6d:%02d",
				rec.Timestamp.Format("Jan 02 15:04"),
				rec.Correct, rec.Questions,
				rec.Points, rec.StreakBonus,
				rec.DurationSecs/60, rec.DurationSecs%60)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Body.Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
