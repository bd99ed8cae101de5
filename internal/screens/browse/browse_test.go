package browse

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestListNavigation(t *testing.T) {
	b := New()

	b.Update(specialKey(tea.KeyDown))
	b.Update(specialKey(tea.KeyDown))
	if b.selected != 2 {
		t.Errorf("selected = %d, want 2", b.selected)
	}

	b.Update(specialKey(tea.KeyUp))
	if b.selected != 1 {
		t.Errorf("selected = %d, want 1", b.selected)
	}
}

func TestOpenAndCloseDetail(t *testing.T) {
	b := New()

	b.Update(specialKey(tea.KeyEnter))
	if !b.detail {
		t.Fatal("expected detail view after Enter")
	}
	if !b.HandlesEsc() {
		t.Error("detail view should consume Esc")
	}

	b.Update(specialKey(tea.KeyEscape))
	if b.detail {
		t.Error("expected Esc to close the detail view")
	}
	if b.HandlesEsc() {
		t.Error("list view should not consume Esc")
	}
}

func TestDetailShowsPseudocode(t *testing.T) {
	b := New()
	b.Update(specialKey(tea.KeyEnter))

	view := b.View(100, 40)
	if !strings.Contains(view, "FUNCTION") {
		t.Error("detail view missing pseudocode")
	}
}

func TestListShowsAllTopics(t *testing.T) {
	b := New()
	view := b.View(100, 40)
	for _, want := range []string{"Array", "Binary Search Tree", "Quick Sort", "A* Search"} {
		if !strings.Contains(view, want) {
			t.Errorf("list view missing %q", want)
		}
	}
}
