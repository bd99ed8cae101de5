package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arjunm/dsamaster/internal/catalog"
	"github.com/arjunm/dsamaster/internal/progress"
	"github.com/arjunm/dsamaster/internal/router"
	"github.com/arjunm/dsamaster/internal/screen"
	"github.com/arjunm/dsamaster/internal/screens/browse"
	"github.com/arjunm/dsamaster/internal/screens/history"
	"github.com/arjunm/dsamaster/internal/screens/quiz"
	"github.com/arjunm/dsamaster/internal/store"
	"github.com/arjunm/dsamaster/internal/ui/components"
	"github.com/arjunm/dsamaster/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu    components.Menu
	tracker *progress.Tracker
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(questions []catalog.Question, tracker *progress.Tracker, events store.EventRepo) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: quiz.New(questions, tracker, events),
				}
			}
		}},
		{Label: "BROWSE TOPICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: browse.New()}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(events)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:    components.NewMenu(items),
		tracker: tracker,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("DSA Master"))
	sections = append(sections, theme.Subtitle.Width(width).Render(
		"Data structures and algorithms, one question at a time"))

	sections = append(sections, renderStatsPanel(h.tracker.Stats(), width))

	menu := h.menu.View()
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	content := strings.Join(sections, "\n\n")
	return lipgloss.PlaceVertical(height, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// renderStatsPanel shows the persistent progression stats.
func renderStatsPanel(stats progress.Stats, width int) string {
	line := fmt.Sprintf("Points: %d    Correct: %d    Streak: %d    Level: %d",
		stats.TotalPoints, stats.CorrectAnswers, stats.Streak, stats.Level)

	xp := components.XPBar(stats.LevelProgress(), progress.ExperiencePerLevel, 30)

	panel := theme.Card.Render(
		lipgloss.NewStyle().Foreground(theme.Text).Render(line) +
			"\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(xp))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, panel)
}
