package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/repoboard/repoboard/internal/model"
)

// ListWorkflowRuns fetches the most recent runs of one workflow.
func (c *Client) ListWorkflowRuns(ctx context.Context, ref model.RepoRef, workflowID int64, perPage int) (*model.RunsResponse, error) {
	path := repoPath(ref, fmt.Sprintf("actions/workflows/%d/runs%s", workflowID, perPageQuery(perPage)))

	var resp model.RunsResponse
	err := c.getJSON(ctx, path, &resp)
	if err != nil {
		// Workflow may have been deleted since it was listed
		if notFound(err) {
			return &model.RunsResponse{}, nil
		}
		return nil, fmt.Errorf("list runs for %s workflow %d: %w", ref, workflowID, err)
	}
	return &resp, nil
}

// ListRecentRuns fetches the most recent runs across all of ref's
// workflows.
func (c *Client) ListRecentRuns(ctx context.Context, ref model.RepoRef, perPage int) (*model.RunsResponse, error) {
	path := repoPath(ref, "actions/runs"+perPageQuery(perPage))

	var resp model.RunsResponse
	err := c.getJSON(ctx, path, &resp)
	if err != nil {
		if notFound(err) {
			return &model.RunsResponse{}, nil
		}
		return nil, fmt.Errorf("list recent runs for %s: %w", ref, err)
	}
	return &resp, nil
}

func notFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
