package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/repoboard/repoboard/internal/ui"
)

func TestRenderStatusBarListsBindings(t *testing.T) {
	bar := RenderStatusBar("Ready", []key.Binding{ui.Keys.Refresh, ui.Keys.Tab}, 120)

	for _, want := range []string{"Ready", "r: refresh", "tab: switch view", "q: quit"} {
		if !strings.Contains(bar, want) {
			t.Errorf("status bar missing %q:\n%s", want, bar)
		}
	}
}

func TestStatusBarHelpFollowsActiveView(t *testing.T) {
	a := testApp(t, nil)
	next, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 24})
	a = next.(App)

	if view := a.View(); !strings.Contains(view, "r: refresh") {
		t.Errorf("board view should hint refresh:\n%s", view)
	}

	next, _ = a.Update(tea.KeyMsg{Type: tea.KeyTab})
	a = next.(App)

	view := a.View()
	if !strings.Contains(view, "a: add repo") {
		t.Errorf("watch-list view should hint add:\n%s", view)
	}
	if strings.Contains(view, "r: refresh") {
		t.Errorf("refresh hint belongs to the board view only:\n%s", view)
	}
}
