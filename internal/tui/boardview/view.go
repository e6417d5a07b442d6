package boardview

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/repoboard/repoboard/internal/board"
	"github.com/repoboard/repoboard/internal/ui"
)

// --- Custom delegate (two lines per repository) ---

type repoDelegate struct{}

func (d repoDelegate) Height() int                             { return 2 }
func (d repoDelegate) Spacing() int                            { return 0 }
func (d repoDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d repoDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ri, ok := item.(repoItem)
	if !ok {
		return
	}

	var line1, line2 string
	name := lipgloss.NewStyle().Bold(true).Render(ri.status.Ref.String())

	switch {
	case !ri.loaded:
		line1 = fmt.Sprintf(" %s %s", ui.StyleMuted.Render("o"), name)
		line2 = "    " + ui.StyleMuted.Render("loading...")
	case ri.status.Err != nil:
		line1 = fmt.Sprintf(" %s %s", ui.StyleFailure.Render("X"), name)
		line2 = "    " + ui.StyleFailure.Render(ui.Truncate(ri.status.Err.Error(), 80))
	default:
		line1 = fmt.Sprintf(" %s %s  %s", statusIcon(ri.status), name, runSummary(ri.status))
		line2 = "    " + detailLine(ri.status)
	}

	if index == m.Index() {
		hl := lipgloss.NewStyle().Background(ui.ColorHighlight).Width(m.Width())
		line1 = hl.Render(line1)
		line2 = hl.Render(line2)
	}

	fmt.Fprintf(w, "%s\n%s", line1, line2)
}

func statusIcon(s board.RepoStatus) string {
	run := s.LatestRun()
	if run == nil {
		return ui.StyleMuted.Render("-")
	}
	return ui.StatusIcon(run.StatusClass())
}

func runSummary(s board.RepoStatus) string {
	run := s.LatestRun()
	if run == nil {
		return ui.StyleMuted.Render("no runs")
	}
	class := run.StatusClass()
	return fmt.Sprintf("%s  %s %s  %s",
		ui.ClassStyle(class).Render(run.StatusLabel()),
		ui.StyleMuted.Render(fmt.Sprintf("#%d", run.RunNumber)),
		ui.StyleInfo.Render(run.HeadBranch),
		ui.StyleMuted.Render(ui.RelativeTime(run.CreatedAt)))
}

func detailLine(s board.RepoStatus) string {
	repo := s.Repo
	meta := ui.StyleMuted.Render(fmt.Sprintf("%d workflows  %d stars  %d issues",
		len(s.Workflows), repo.Stars, repo.OpenIssues))
	if repo.Description == "" {
		return meta
	}
	return ui.Truncate(repo.Description, 60) + "  " + meta
}

// --- Item ---

type repoItem struct {
	status board.RepoStatus
	loaded bool
}

func (r repoItem) FilterValue() string {
	desc := ""
	if r.status.Repo != nil {
		desc = r.status.Repo.Description
	}
	return r.status.Ref.String() + " " + desc
}

// --- Model ---

type Model struct {
	list     list.Model
	statuses []board.RepoStatus
	loaded   []bool
	width    int
	height   int
}

func New() Model {
	l := list.New(nil, repoDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	l.KeyMap.Filter = key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter"))
	l.DisableQuitKeybindings()

	return Model{list: l}
}

// SetRefs resets the board to placeholder rows for the given watch list.
func (m *Model) SetRefs(statuses []board.RepoStatus) tea.Cmd {
	m.statuses = statuses
	m.loaded = make([]bool, len(statuses))
	return m.syncItems()
}

// SetStatus records one repository's fetched data.
func (m *Model) SetStatus(index int, status board.RepoStatus) tea.Cmd {
	if index < 0 || index >= len(m.statuses) {
		return nil
	}
	m.statuses[index] = status
	m.loaded[index] = true
	return m.syncItems()
}

func (m *Model) syncItems() tea.Cmd {
	items := make([]list.Item, len(m.statuses))
	for i, s := range m.statuses {
		items[i] = repoItem{status: s, loaded: m.loaded[i]}
	}
	return m.list.SetItems(items)
}

func (m Model) SelectedStatus() *board.RepoStatus {
	if item, ok := m.list.SelectedItem().(repoItem); ok && item.loaded {
		return &item.status
	}
	return nil
}

func (m Model) Loading() bool {
	for _, done := range m.loaded {
		if !done {
			return true
		}
	}
	return false
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.statuses) == 0 {
		return "\n  No repositories watched yet. Press tab and add one."
	}
	return m.list.View()
}

func (m Model) IsFiltering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{
		ui.Keys.Enter,
		ui.Keys.Refresh,
		ui.Keys.Tab,
	}
}
