// Package board assembles the dashboard snapshot: repository metadata,
// workflows and recent runs for every watched repository.
package board

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/repoboard/repoboard/internal/api"
	"github.com/repoboard/repoboard/internal/model"
)

// RepoStatus is one repository's slice of the board. Err is set when that
// repository's data could not be loaded; sibling repositories are
// unaffected.
type RepoStatus struct {
	Ref       model.RepoRef
	Repo      *model.Repository
	Workflows []model.Workflow
	Runs      []model.Run
	Err       error
}

// LatestRun returns the newest run across all workflows, or nil.
func (s RepoStatus) LatestRun() *model.Run {
	if len(s.Runs) == 0 {
		return nil
	}
	return &s.Runs[0]
}

// LatestRunFor returns the newest run of one workflow, or nil.
func (s RepoStatus) LatestRunFor(workflowID int64) *model.Run {
	for i := range s.Runs {
		if s.Runs[i].WorkflowID == workflowID {
			return &s.Runs[i]
		}
	}
	return nil
}

const fetchConcurrency = 4

// Fetch loads the board for refs. Repositories are fetched concurrently;
// a failure is recorded on its own RepoStatus and never aborts the others.
// Results come back in watch-list order regardless of completion order.
func Fetch(ctx context.Context, client *api.Client, refs []model.RepoRef, runsPerRepo int) []RepoStatus {
	statuses := make([]RepoStatus, len(refs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	for i, ref := range refs {
		g.Go(func() error {
			statuses[i] = FetchOne(ctx, client, ref, runsPerRepo)
			return nil
		})
	}
	g.Wait()

	return statuses
}

// FetchOne loads a single repository's board entry. Errors are recorded on
// the returned status, never returned.
func FetchOne(ctx context.Context, client *api.Client, ref model.RepoRef, runsPerRepo int) RepoStatus {
	s := RepoStatus{Ref: ref}

	repo, err := client.GetRepository(ctx, ref)
	if err != nil {
		s.Err = err
		return s
	}
	s.Repo = repo

	wfs, err := client.ListWorkflows(ctx, ref)
	if err != nil {
		s.Err = err
		return s
	}
	s.Workflows = wfs.Workflows

	runs, err := client.ListRecentRuns(ctx, ref, runsPerRepo)
	if err != nil {
		s.Err = err
		return s
	}
	s.Runs = runs.Runs

	return s
}
