package github

import (
	"context"
	"strings"

	gh "github.com/google/go-github/v80/github"
)

// FindComment returns the first comment on the pull request (or issue) whose
// body starts with marker, or nil if there is none.
func (c *client) FindComment(ctx context.Context, number int, marker string) (*gh.IssueComment, error) {
	opts := &gh.IssueListCommentsOptions{
		ListOptions: gh.ListOptions{
			PerPage: 100,
		},
	}

	for {
		comments, resp, err := c.issues.ListComments(ctx, c.owner, c.repo, number, opts)
		if err != nil {
			return nil, err
		}

		for _, comment := range comments {
			if strings.HasPrefix(comment.GetBody(), marker) {
				return comment, nil
			}
		}

		if resp == nil || resp.NextPage == 0 {
			return nil, nil
		}
		opts.Page = resp.NextPage
	}
}

func (c *client) CreateComment(ctx context.Context, number int, body string) (*gh.IssueComment, error) {
	created, _, err := c.issues.CreateComment(ctx, c.owner, c.repo, number, &gh.IssueComment{Body: gh.Ptr(body)})
	return created, err
}

func (c *client) EditComment(ctx context.Context, commentID int64, body string) (*gh.IssueComment, error) {
	edited, _, err := c.issues.EditComment(ctx, c.owner, c.repo, commentID, &gh.IssueComment{Body: gh.Ptr(body)})
	return edited, err
}
