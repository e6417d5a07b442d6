package ui

import (
	"github.com/repoboard/repoboard/internal/board"
	"github.com/repoboard/repoboard/internal/model"
)

// RepoStatusMsg delivers one watched repository's board data. Each repo is
// fetched by its own command, so a slow or failing repo never holds up the
// rest of the board.
type RepoStatusMsg struct {
	Index  int
	Status board.RepoStatus
}

// BoardReloadMsg asks the app to refetch every watched repository.
type BoardReloadMsg struct{}

// WatchListChangedMsg reports the persisted watch list after an add or
// remove. Err is set when persisting failed.
type WatchListChangedMsg struct {
	Refs []model.RepoRef
	Err  error
}

// AddRepoMsg is emitted by the watch-list view when the user submits a new
// repository reference.
type AddRepoMsg struct {
	Input string
}

// RemoveRepoMsg is emitted by the watch-list view for the selected entry.
type RemoveRepoMsg struct {
	Ref model.RepoRef
}

// StatusMsg updates the status bar text.
type StatusMsg struct {
	Text string
}
