package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/repoboard/repoboard/internal/ui"
)

func RenderHeader(repoCount int, loading bool, width int) string {
	left := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("#F9FAFB")).
		Render(fmt.Sprintf(" repoboard | %d repos", repoCount))

	right := ""
	if loading {
		right = lipgloss.NewStyle().Foreground(ui.ColorWarning).Render("loading... ")
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(lipgloss.Color("#1F2937")).
		Width(width).
		Render(left + padding + right)
}
