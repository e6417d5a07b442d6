package watchview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/repoboard/repoboard/internal/model"
	"github.com/repoboard/repoboard/internal/ui"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAddFlowEmitsAddRepoMsg(t *testing.T) {
	m := New(nil)

	m, _ = m.Update(keyRunes("a"))
	if !m.Adding() {
		t.Fatal("pressing a should enter add mode")
	}

	for _, r := range "acme/widgets" {
		m, _ = m.Update(keyRunes(string(r)))
	}

	var cmd tea.Cmd
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Adding() {
		t.Error("enter should leave add mode")
	}
	if cmd == nil {
		t.Fatal("expected a command carrying the submitted input")
	}

	msg, ok := cmd().(ui.AddRepoMsg)
	if !ok {
		t.Fatalf("cmd() = %T, want ui.AddRepoMsg", cmd())
	}
	if msg.Input != "acme/widgets" {
		t.Errorf("Input = %q, want acme/widgets", msg.Input)
	}
}

func TestEscapeCancelsAdd(t *testing.T) {
	m := New(nil)
	m, _ = m.Update(keyRunes("a"))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if m.Adding() {
		t.Error("escape should cancel add mode")
	}
	if cmd != nil {
		t.Error("cancelling should not emit a message")
	}
}

func TestRemoveEmitsSelectedRef(t *testing.T) {
	refs := []model.RepoRef{
		{Owner: "acme", Repo: "widgets"},
		{Owner: "acme", Repo: "gadgets"},
	}
	m := New(refs)

	m, _ = m.Update(keyRunes("j"))
	m, cmd := m.Update(keyRunes("d"))
	if cmd == nil {
		t.Fatal("expected a command for the remove request")
	}

	msg, ok := cmd().(ui.RemoveRepoMsg)
	if !ok {
		t.Fatalf("cmd() = %T, want ui.RemoveRepoMsg", cmd())
	}
	if msg.Ref.Repo != "gadgets" {
		t.Errorf("removed ref = %v, want acme/gadgets", msg.Ref)
	}
}

func TestSetRefsClampsCursor(t *testing.T) {
	refs := []model.RepoRef{
		{Owner: "acme", Repo: "widgets"},
		{Owner: "acme", Repo: "gadgets"},
	}
	m := New(refs)
	m, _ = m.Update(keyRunes("j"))

	m.SetRefs(refs[:1])
	m, cmd := m.Update(keyRunes("d"))
	if cmd == nil {
		t.Fatal("expected a command for the remove request")
	}
	if msg := cmd().(ui.RemoveRepoMsg); msg.Ref.Repo != "widgets" {
		t.Errorf("cursor should clamp to the remaining entry, got %v", msg.Ref)
	}
}

func TestViewListsRefsAndError(t *testing.T) {
	m := New([]model.RepoRef{{Owner: "acme", Repo: "widgets"}})
	m.SetError("invalid repository reference")

	view := m.View()
	if !strings.Contains(view, "acme/widgets") {
		t.Errorf("view should list watched repos:\n%s", view)
	}
	if !strings.Contains(view, "invalid repository reference") {
		t.Errorf("view should surface the last error:\n%s", view)
	}
}
