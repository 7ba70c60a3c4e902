package github

import (
	"context"
	"errors"
	"testing"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	github "github.com/tracker-tv/tagguard/internal/github/mocks"
)

const marker = "<!-- marker -->"

func TestFindComment_Pagination(t *testing.T) {
	ctx := context.Background()
	issuesSvc := github.NewMockIssuesAdapter(t)

	// Page 1
	issuesSvc.
		EXPECT().
		ListComments(mock.Anything, "org-name", "repo-name", 12,
			mock.MatchedBy(func(o *gh.IssueListCommentsOptions) bool {
				return o.Page == 0 && o.PerPage == 100
			}),
		).
		Once().
		Return(
			[]*gh.IssueComment{
				{ID: gh.Ptr(int64(1)), Body: gh.Ptr("LGTM")},
			},
			&gh.Response{NextPage: 2},
			nil,
		)

	// Page 2
	issuesSvc.
		EXPECT().
		ListComments(mock.Anything, "org-name", "repo-name", 12,
			mock.MatchedBy(func(o *gh.IssueListCommentsOptions) bool {
				return o.Page == 2
			}),
		).
		Once().
		Return(
			[]*gh.IssueComment{
				{ID: gh.Ptr(int64(2)), Body: gh.Ptr("mentions " + marker)},
				{ID: gh.Ptr(int64(3)), Body: gh.Ptr(marker + "\nsummary")},
			},
			&gh.Response{},
			nil,
		)

	c := &client{issues: issuesSvc, owner: "org-name", repo: "repo-name"}

	comment, err := c.FindComment(ctx, 12, marker)

	assert.NoError(t, err)
	assert.NotNil(t, comment)
	assert.Equal(t, int64(3), comment.GetID())
}

func TestFindComment_NotFound(t *testing.T) {
	ctx := context.Background()
	issuesSvc := github.NewMockIssuesAdapter(t)

	issuesSvc.
		EXPECT().
		ListComments(mock.Anything, "org-name", "repo-name", 12, mock.Anything).
		Once().
		Return([]*gh.IssueComment{{ID: gh.Ptr(int64(1)), Body: gh.Ptr("LGTM")}}, nil, nil)

	c := &client{issues: issuesSvc, owner: "org-name", repo: "repo-name"}

	comment, err := c.FindComment(ctx, 12, marker)

	assert.NoError(t, err)
	assert.Nil(t, comment)
}

func TestFindComment_Error(t *testing.T) {
	ctx := context.Background()
	issuesSvc := github.NewMockIssuesAdapter(t)

	issuesSvc.
		EXPECT().
		ListComments(mock.Anything, "org-name", "repo-name", 12, mock.Anything).
		Once().
		Return(nil, nil, errors.New("bad credentials"))

	c := &client{issues: issuesSvc, owner: "org-name", repo: "repo-name"}

	comment, err := c.FindComment(ctx, 12, marker)

	assert.Error(t, err)
	assert.Nil(t, comment)
	assert.Contains(t, err.Error(), "bad credentials")
}

func TestCreateComment_Success(t *testing.T) {
	ctx := context.Background()
	issuesSvc := github.NewMockIssuesAdapter(t)

	issuesSvc.
		EXPECT().
		CreateComment(mock.Anything, "org-name", "repo-name", 12,
			mock.MatchedBy(func(c *gh.IssueComment) bool {
				return c.GetBody() == "hello"
			}),
		).
		Once().
		Return(&gh.IssueComment{ID: gh.Ptr(int64(9)), HTMLURL: gh.Ptr("https://github.com/org-name/repo-name/pull/12#issuecomment-9")}, &gh.Response{}, nil)

	c := &client{issues: issuesSvc, owner: "org-name", repo: "repo-name"}

	comment, err := c.CreateComment(ctx, 12, "hello")

	assert.NoError(t, err)
	assert.Equal(t, int64(9), comment.GetID())
}

func TestCreateComment_Error(t *testing.T) {
	ctx := context.Background()
	issuesSvc := github.NewMockIssuesAdapter(t)

	issuesSvc.
		EXPECT().
		CreateComment(mock.Anything, "org-name", "repo-name", 12, mock.Anything).
		Once().
		Return(nil, nil, errors.New("forbidden"))

	c := &client{issues: issuesSvc, owner: "org-name", repo: "repo-name"}

	comment, err := c.CreateComment(ctx, 12, "hello")

	assert.Error(t, err)
	assert.Nil(t, comment)
}

func TestEditComment_Success(t *testing.T) {
	ctx := context.Background()
	issuesSvc := github.NewMockIssuesAdapter(t)

	issuesSvc.
		EXPECT().
		EditComment(mock.Anything, "org-name", "repo-name", int64(9),
			mock.MatchedBy(func(c *gh.IssueComment) bool {
				return c.GetBody() == "updated"
			}),
		).
		Once().
		Return(&gh.IssueComment{ID: gh.Ptr(int64(9)), Body: gh.Ptr("updated")}, &gh.Response{}, nil)

	c := &client{issues: issuesSvc, owner: "org-name", repo: "repo-name"}

	comment, err := c.EditComment(ctx, 9, "updated")

	assert.NoError(t, err)
	assert.Equal(t, "updated", comment.GetBody())
}

func TestEditComment_Error(t *testing.T) {
	ctx := context.Background()
	issuesSvc := github.NewMockIssuesAdapter(t)

	issuesSvc.
		EXPECT().
		EditComment(mock.Anything, "org-name", "repo-name", int64(9), mock.Anything).
		Once().
		Return(nil, nil, errors.New("not found"))

	c := &client{issues: issuesSvc, owner: "org-name", repo: "repo-name"}

	comment, err := c.EditComment(ctx, 9, "updated")

	assert.Error(t, err)
	assert.Nil(t, comment)
}
