package boardview

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/repoboard/repoboard/internal/board"
	"github.com/repoboard/repoboard/internal/model"
)

func placeholders() []board.RepoStatus {
	return []board.RepoStatus{
		{Ref: model.RepoRef{Owner: "acme", Repo: "widgets"}},
		{Ref: model.RepoRef{Owner: "acme", Repo: "gadgets"}},
	}
}

func TestPlaceholdersRenderAsLoading(t *testing.T) {
	m := New()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.SetRefs(placeholders())

	if !m.Loading() {
		t.Error("board with no fetched statuses should be loading")
	}

	view := m.View()
	if !strings.Contains(view, "acme/widgets") {
		t.Errorf("view should list the watched repo:\n%s", view)
	}
	if !strings.Contains(view, "loading") {
		t.Errorf("unfetched rows should show a loading marker:\n%s", view)
	}
}

func TestSetStatusFillsRow(t *testing.T) {
	m := New()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 24})
	m.SetRefs(placeholders())

	m.SetStatus(0, board.RepoStatus{
		Ref:  model.RepoRef{Owner: "acme", Repo: "widgets"},
		Repo: &model.Repository{FullName: "acme/widgets", Description: "Widget factory", Stars: 7},
		Runs: []model.Run{{
			RunNumber:  12,
			Status:     model.RunStatusCompleted,
			Conclusion: model.ConclusionSuccess,
			HeadBranch: "main",
			CreatedAt:  time.Now().Add(-2 * time.Minute),
		}},
	})

	if !m.Loading() {
		t.Error("board should still be loading with one row pending")
	}

	view := m.View()
	if !strings.Contains(view, "Success") {
		t.Errorf("fetched row should show the normalized run label:\n%s", view)
	}
	if !strings.Contains(view, "#12") {
		t.Errorf("fetched row should show the run number:\n%s", view)
	}
	if !strings.Contains(view, "Widget factory") {
		t.Errorf("fetched row should show the description:\n%s", view)
	}

	m.SetStatus(1, board.RepoStatus{
		Ref: model.RepoRef{Owner: "acme", Repo: "gadgets"},
		Err: errors.New("GitHub API: HTTP 403"),
	})

	if m.Loading() {
		t.Error("board should be done once every row reported")
	}
	view = m.View()
	if !strings.Contains(view, "403") {
		t.Errorf("failed row should render its error:\n%s", view)
	}
	// The sibling row is untouched by the failure.
	if !strings.Contains(view, "Success") {
		t.Errorf("successful row must survive a sibling failure:\n%s", view)
	}
}

func TestSelectedStatusOnlyWhenLoaded(t *testing.T) {
	m := New()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.SetRefs(placeholders())

	if m.SelectedStatus() != nil {
		t.Error("placeholder rows should not be selectable")
	}

	m.SetStatus(0, board.RepoStatus{
		Ref:  model.RepoRef{Owner: "acme", Repo: "widgets"},
		Repo: &model.Repository{FullName: "acme/widgets", HTMLURL: "https://github.com/acme/widgets"},
	})

	s := m.SelectedStatus()
	if s == nil || s.Repo.HTMLURL != "https://github.com/acme/widgets" {
		t.Errorf("SelectedStatus() = %+v, want loaded acme/widgets", s)
	}
}
