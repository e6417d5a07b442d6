package api

import (
	"context"
	"os"
	"testing"

	"github.com/repoboard/repoboard/internal/model"
)

func TestIntegrationPublicRepo(t *testing.T) {
	if os.Getenv("REPOBOARD_INTEGRATION") == "" {
		t.Skip("Set REPOBOARD_INTEGRATION=1 to run integration tests")
	}

	c := NewClient(Options{Token: os.Getenv("GITHUB_TOKEN")})
	ref := model.RepoRef{Owner: "cli", Repo: "cli"}
	ctx := context.Background()

	repo, err := c.GetRepository(ctx, ref)
	if err != nil {
		t.Fatalf("GetRepository: %v", err)
	}
	if repo.FullName != "cli/cli" {
		t.Errorf("FullName = %q, want cli/cli", repo.FullName)
	}

	wfs, err := c.ListWorkflows(ctx, ref)
	if err != nil {
		t.Fatalf("ListWorkflows: %v", err)
	}
	if wfs.TotalCount == 0 {
		t.Error("expected at least 1 workflow")
	}

	runs, err := c.ListRecentRuns(ctx, ref, 5)
	if err != nil {
		t.Fatalf("ListRecentRuns: %v", err)
	}
	t.Logf("Found %d total runs, got %d in page", runs.TotalCount, len(runs.Runs))
	for _, r := range runs.Runs {
		t.Logf("  #%d %s [%s] %s", r.RunNumber, r.DisplayTitle, r.StatusLabel(), r.HeadBranch)
	}
}
