package browse

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arjunm/dsamaster/internal/pseudocode"
	"github.com/arjunm/dsamaster/internal/screen"
	"github.com/arjunm/dsamaster/internal/ui/layout"
	"github.com/arjunm/dsamaster/internal/ui/theme"
)

// BrowseScreen lists the reference topics; selecting one opens its
// pseudocode in a detail view.
type BrowseScreen struct {
	topics   []pseudocode.Topic
	selected int
	detail   bool
	scroll   int
}

var _ screen.Screen = (*BrowseScreen)(nil)
var _ screen.KeyHintProvider = (*BrowseScreen)(nil)
var _ screen.EscHandler = (*BrowseScreen)(nil)

// New creates a new BrowseScreen.
func New() *BrowseScreen {
	return &BrowseScreen{topics: pseudocode.List()}
}

func (b *BrowseScreen) Init() tea.Cmd {
	return nil
}

func (b *BrowseScreen) Title() string {
	return "Topics"
}

// HandlesEsc is true while the detail view is open; Esc closes it
// instead of leaving the screen.
func (b *BrowseScreen) HandlesEsc() bool {
	return b.detail
}

func (b *BrowseScreen) KeyHints() []layout.KeyHint {
	if b.detail {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Esc", Description: "Back to list"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

func (b *BrowseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	if b.detail {
		switch kmsg.String() {
		case "esc", "q":
			b.detail = false
			b.scroll = 0
		case "up", "k":
			if b.scroll > 0 {
				b.scroll--
			}
		case "down", "j":
			b.scroll++
		}
		return b, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if b.selected > 0 {
			b.selected--
		}
	case "down", "j":
		if b.selected < len(b.topics)-1 {
			b.selected++
		}
	case "enter":
		b.detail = true
		b.scroll = 0
	}
	return b, nil
}

func (b *BrowseScreen) View(width, height int) string {
	if b.detail {
		return b.renderDetail(width, height)
	}
	return b.renderList(width, height)
}

func (b *BrowseScreen) renderList(width, height int) string {
	var s strings.Builder

	s.WriteString(theme.Title.Width(width).Render("Reference Library"))
	s.WriteString("\n\n")

	var lastKind pseudocode.Kind
	for i, topic := range b.topics {
		if topic.Kind != lastKind {
			s.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Hint.Render(string(topic.Kind)+"s")))
			s.WriteString("\n")
			lastKind = topic.Kind
		}

		line := "    " + topic.Title
		style := theme.Unselected
		if i == b.selected {
			line = "  ▸ " + topic.Title
			style = theme.Selected
		}
		s.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(
			fmt.Sprintf("%-32s", line))))
		s.WriteString("\n")
	}

	return s.String()
}

func (b *BrowseScreen) renderDetail(width, height int) string {
	topic := b.topics[b.selected]

	var s strings.Builder
	s.WriteString(theme.Title.Width(width).Render(topic.Title))
	s.WriteString("\n")
	s.WriteString(theme.Subtitle.Width(width).Render(string(topic.Kind)))
	s.WriteString("\n\n")

	lines := strings.Split(topic.Code, "\n")
	visible := height - 6
	if visible < 1 {
		visible = 1
	}
	if b.scroll > len(lines)-visible {
		b.scroll = len(lines) - visible
	}
	if b.scroll < 0 {
		b.scroll = 0
	}
	end := b.scroll + visible
	if end > len(lines) {
		end = len(lines)
	}

	code := strings.Join(lines[b.scroll:end], "\n")
	s.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.CodeBlock.Render(code)))

	return s.String()
}
