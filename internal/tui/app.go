package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cli/go-gh/v2/pkg/browser"

	"github.com/repoboard/repoboard/internal/api"
	"github.com/repoboard/repoboard/internal/board"
	"github.com/repoboard/repoboard/internal/config"
	"github.com/repoboard/repoboard/internal/model"
	"github.com/repoboard/repoboard/internal/store"
	"github.com/repoboard/repoboard/internal/tui/boardview"
	"github.com/repoboard/repoboard/internal/tui/watchview"
	"github.com/repoboard/repoboard/internal/ui"
)

type View int

const (
	ViewBoard View = iota
	ViewWatchList
)

type App struct {
	cfg    *config.Config
	client *api.Client
	watch  *store.WatchList
	refs   []model.RepoRef

	boardView boardview.Model
	watchView watchview.Model

	currentView View
	width       int
	height      int
	status      string
}

func NewApp(cfg *config.Config, client *api.Client, watch *store.WatchList, refs []model.RepoRef) App {
	return App{
		cfg:       cfg,
		client:    client,
		watch:     watch,
		refs:      refs,
		boardView: boardview.New(),
		watchView: watchview.New(refs),
		status:    "Loading board...",
	}
}

func (a App) Init() tea.Cmd {
	// Init cannot mutate the model, so the initial load goes through the
	// same reload message the refresh key uses.
	return func() tea.Msg { return ui.BoardReloadMsg{} }
}

// reloadBoard resets the board to placeholders and launches one fetch
// command per watched repository. Each command reports independently so a
// failing repo only marks its own row.
func (a *App) reloadBoard() tea.Cmd {
	placeholders := make([]board.RepoStatus, len(a.refs))
	for i, ref := range a.refs {
		placeholders[i] = board.RepoStatus{Ref: ref}
	}
	cmds := []tea.Cmd{a.boardView.SetRefs(placeholders)}
	for i, ref := range a.refs {
		cmds = append(cmds, a.fetchRepo(i, ref))
	}
	return tea.Batch(cmds...)
}

func (a App) fetchRepo(index int, ref model.RepoRef) tea.Cmd {
	client := a.client
	perRepo := a.cfg.RunsPerRepo
	return func() tea.Msg {
		return ui.RepoStatusMsg{
			Index:  index,
			Status: board.FetchOne(context.Background(), client, ref, perRepo),
		}
	}
}

func (a App) openInBrowser(url string) tea.Cmd {
	return func() tea.Msg {
		b := browser.New("", nil, nil)
		if err := b.Browse(url); err != nil {
			return ui.StatusMsg{Text: fmt.Sprintf("open browser: %v", err)}
		}
		return ui.StatusMsg{Text: "Opened " + url}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		inner := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 2}
		var cmd1, cmd2 tea.Cmd
		a.boardView, cmd1 = a.boardView.Update(inner)
		a.watchView, cmd2 = a.watchView.Update(inner)
		return a, tea.Batch(cmd1, cmd2)

	case ui.BoardReloadMsg:
		return a, a.reloadBoard()

	case ui.RepoStatusMsg:
		cmd := a.boardView.SetStatus(msg.Index, msg.Status)
		if msg.Status.Err != nil {
			a.status = fmt.Sprintf("%s failed to load", msg.Status.Ref)
		} else if !a.boardView.Loading() {
			a.status = fmt.Sprintf("%d repos loaded", len(a.refs))
		}
		return a, cmd

	case ui.AddRepoMsg:
		return a, a.addRepo(msg.Input)

	case ui.RemoveRepoMsg:
		return a, a.removeRepo(msg.Ref)

	case ui.WatchListChangedMsg:
		if msg.Err != nil {
			a.watchView.SetError(msg.Err.Error())
			return a, nil
		}
		a.refs = msg.Refs
		a.watchView.SetRefs(msg.Refs)
		a.status = fmt.Sprintf("%d repos watched", len(msg.Refs))
		return a, a.reloadBoard()

	case ui.StatusMsg:
		a.status = msg.Text
		return a, nil

	case tea.KeyMsg:
		// Text entry and list filtering consume keys first.
		if a.currentView == ViewWatchList && a.watchView.Adding() {
			var cmd tea.Cmd
			a.watchView, cmd = a.watchView.Update(msg)
			return a, cmd
		}
		if a.currentView == ViewBoard && a.boardView.IsFiltering() {
			var cmd tea.Cmd
			a.boardView, cmd = a.boardView.Update(msg)
			return a, cmd
		}

		switch {
		case key.Matches(msg, ui.Keys.Quit):
			return a, tea.Quit

		case key.Matches(msg, ui.Keys.Tab):
			if a.currentView == ViewBoard {
				a.currentView = ViewWatchList
			} else {
				a.currentView = ViewBoard
			}
			return a, nil

		case key.Matches(msg, ui.Keys.Refresh):
			if a.currentView == ViewBoard {
				a.status = "Refreshing..."
				return a, a.reloadBoard()
			}

		case key.Matches(msg, ui.Keys.Enter):
			if a.currentView == ViewBoard {
				if s := a.boardView.SelectedStatus(); s != nil && s.Repo != nil {
					return a, a.openInBrowser(s.Repo.HTMLURL)
				}
			}
		}
	}

	var cmd tea.Cmd
	switch a.currentView {
	case ViewBoard:
		a.boardView, cmd = a.boardView.Update(msg)
	case ViewWatchList:
		a.watchView, cmd = a.watchView.Update(msg)
	}
	return a, cmd
}

// addRepo parses the user's input, persists it and reports the new list.
func (a App) addRepo(input string) tea.Cmd {
	watch := a.watch
	return func() tea.Msg {
		ref, err := api.ParseRepoInput(input)
		if err != nil {
			return ui.WatchListChangedMsg{Err: err}
		}
		if _, err := watch.Add(ref); err != nil {
			return ui.WatchListChangedMsg{Err: err}
		}
		refs, err := watch.Load()
		return ui.WatchListChangedMsg{Refs: refs, Err: err}
	}
}

func (a App) removeRepo(ref model.RepoRef) tea.Cmd {
	watch := a.watch
	return func() tea.Msg {
		if _, err := watch.Remove(ref); err != nil {
			return ui.WatchListChangedMsg{Err: err}
		}
		refs, err := watch.Load()
		return ui.WatchListChangedMsg{Refs: refs, Err: err}
	}
}

func (a App) View() string {
	header := RenderHeader(len(a.refs), a.boardView.Loading(), a.width)

	var content string
	var help []key.Binding
	switch a.currentView {
	case ViewBoard:
		content = a.boardView.View()
		help = a.boardView.ShortHelp()
	case ViewWatchList:
		content = a.watchView.View()
		help = a.watchView.ShortHelp()
	}

	statusBar := RenderStatusBar(a.status, help, a.width)

	return header + "\n" + content + "\n" + statusBar
}
