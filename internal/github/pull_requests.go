package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
)

func (c *client) FindPullRequestByBranch(ctx context.Context, branch string) (*gh.PullRequest, error) {
	opts := &gh.PullRequestListOptions{
		Head:  c.owner + ":" + branch,
		State: "open",
	}
	prs, _, err := c.pullRequests.List(ctx, c.owner, c.repo, opts)
	if err != nil {
		return nil, err
	}
	if len(prs) > 0 {
		return prs[0], nil
	}
	return nil, nil
}
