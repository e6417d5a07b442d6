// Package watchview is the admin view for the persisted watch list.
package watchview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/repoboard/repoboard/internal/model"
	"github.com/repoboard/repoboard/internal/ui"
)

type Model struct {
	refs   []model.RepoRef
	cursor int
	input  textinput.Model
	adding bool
	errMsg string
	width  int
	height int
}

func New(refs []model.RepoRef) Model {
	ti := textinput.New()
	ti.Placeholder = "https://github.com/owner/repo or owner/repo"
	ti.CharLimit = 200
	ti.Width = 60

	return Model{refs: refs, input: ti}
}

func (m *Model) SetRefs(refs []model.RepoRef) {
	m.refs = refs
	if m.cursor >= len(refs) {
		m.cursor = len(refs) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) SetError(msg string) {
	m.errMsg = msg
}

func (m Model) Adding() bool {
	return m.adding
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if m.adding {
			switch msg.Type {
			case tea.KeyEnter:
				input := strings.TrimSpace(m.input.Value())
				m.adding = false
				m.input.Blur()
				m.input.SetValue("")
				if input == "" {
					return m, nil
				}
				return m, func() tea.Msg { return ui.AddRepoMsg{Input: input} }
			case tea.KeyEscape:
				m.adding = false
				m.input.Blur()
				m.input.SetValue("")
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, ui.Keys.Add):
			m.adding = true
			m.errMsg = ""
			return m, m.input.Focus()
		case key.Matches(msg, ui.Keys.Remove):
			if m.cursor < len(m.refs) {
				ref := m.refs[m.cursor]
				return m, func() tea.Msg { return ui.RemoveRepoMsg{Ref: ref} }
			}
		case key.Matches(msg, ui.Keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, ui.Keys.Down):
			if m.cursor < len(m.refs)-1 {
				m.cursor++
			}
		}
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString("\n" + lipgloss.NewStyle().Bold(true).Render("  Watched repositories") + "\n\n")

	if len(m.refs) == 0 {
		b.WriteString(ui.StyleMuted.Render("  (none)") + "\n")
	}
	for i, ref := range m.refs {
		line := fmt.Sprintf("  %s", ref)
		if i == m.cursor && !m.adding {
			line = lipgloss.NewStyle().Background(ui.ColorHighlight).Render("> " + ref.String())
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	if m.adding {
		b.WriteString("  Add repository: " + m.input.View() + "\n")
	} else {
		b.WriteString(ui.StyleMuted.Render("  a: add  d: remove  tab: back to board") + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n  " + ui.StyleFailure.Render(m.errMsg) + "\n")
	}

	return b.String()
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{
		ui.Keys.Add,
		ui.Keys.Remove,
		ui.Keys.Tab,
	}
}
