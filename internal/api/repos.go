package api

import (
	"context"
	"fmt"

	"github.com/repoboard/repoboard/internal/model"
)

// GetRepository fetches repository metadata for ref.
func (c *Client) GetRepository(ctx context.Context, ref model.RepoRef) (*model.Repository, error) {
	var repo model.Repository
	err := c.getJSON(ctx, repoPath(ref, ""), &repo)
	if err != nil {
		return nil, fmt.Errorf("get repository %s: %w", ref, err)
	}
	return &repo, nil
}
