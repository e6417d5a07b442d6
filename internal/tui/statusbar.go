package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/repoboard/repoboard/internal/ui"
)

// RenderStatusBar shows the last status message on the left and the active
// view's key hints on the right. Quit is appended so it is visible from
// every view.
func RenderStatusBar(status string, bindings []key.Binding, width int) string {
	hints := make([]string, 0, len(bindings)+1)
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, h.Key+": "+h.Desc)
	}
	hints = append(hints, ui.Keys.Quit.Help().Key+": "+ui.Keys.Quit.Help().Desc)

	left := lipgloss.NewStyle().Foreground(ui.ColorMuted).Render("  " + status)
	help := lipgloss.NewStyle().Foreground(ui.ColorMuted).
		Render(strings.Join(hints, "  ") + " ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(help)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(lipgloss.Color("#111827")).
		Width(width).
		Render(left + padding + help)
}
