package github

import (
	"context"
	"net/http"

	gh "github.com/google/go-github/v80/github"
)

type Client interface {
	FindPullRequestByBranch(ctx context.Context, branch string) (*gh.PullRequest, error)
	FindComment(ctx context.Context, number int, marker string) (*gh.IssueComment, error)
	CreateComment(ctx context.Context, number int, body string) (*gh.IssueComment, error)
	EditComment(ctx context.Context, commentID int64, body string) (*gh.IssueComment, error)
}

type IssuesAdapter interface {
	ListComments(ctx context.Context, owner, repo string, number int, opts *gh.IssueListCommentsOptions) ([]*gh.IssueComment, *gh.Response, error)
	CreateComment(ctx context.Context, owner, repo string, number int, comment *gh.IssueComment) (*gh.IssueComment, *gh.Response, error)
	EditComment(ctx context.Context, owner, repo string, commentID int64, comment *gh.IssueComment) (*gh.IssueComment, *gh.Response, error)
}

type PullRequestsAdapter interface {
	List(ctx context.Context, owner, repo string, opts *gh.PullRequestListOptions) ([]*gh.PullRequest, *gh.Response, error)
}

type client struct {
	issues       IssuesAdapter
	pullRequests PullRequestsAdapter
	owner        string
	repo         string
}

type authTransport struct {
	token string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+t.token)
	return http.DefaultTransport.RoundTrip(req)
}

// New returns a client bound to a single repository.
func New(token, owner, repo string) Client {
	var httpClient *http.Client
	if token != "" {
		httpClient = &http.Client{
			Transport: &authTransport{
				token: token,
			},
		}
	}
	c := gh.NewClient(httpClient)
	return &client{
		issues:       c.Issues,
		pullRequests: c.PullRequests,
		owner:        owner,
		repo:         repo,
	}
}
