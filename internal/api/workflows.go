package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/repoboard/repoboard/internal/model"
)

// ListWorkflows fetches the workflows configured for ref. A repository
// with no workflows yields an empty list, not an error.
func (c *Client) ListWorkflows(ctx context.Context, ref model.RepoRef) (*model.WorkflowsResponse, error) {
	v := url.Values{}
	v.Set("per_page", "100")

	var resp model.WorkflowsResponse
	err := c.getJSON(ctx, repoPath(ref, "actions/workflows?"+v.Encode()), &resp)
	if err != nil {
		return nil, fmt.Errorf("list workflows for %s: %w", ref, err)
	}
	return &resp, nil
}

func perPageQuery(perPage int) string {
	v := url.Values{}
	if perPage > 0 {
		v.Set("per_page", strconv.Itoa(perPage))
	} else {
		v.Set("per_page", "30")
	}
	return "?" + v.Encode()
}
