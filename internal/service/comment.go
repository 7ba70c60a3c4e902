package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tracker-tv/tagguard/internal/github"
)

// CommentMarker identifies the sticky summary comment on a pull request.
const CommentMarker = "<!-- tagguard:required-tags -->"

var ErrNoPullRequest = errors.New("no pull request to comment on")

type CommentResult struct {
	PRNumber int
	Action   string // "created", "updated", "skipped"
	URL      string
}

type CommentService interface {
	Upsert(ctx context.Context, summary string) (*CommentResult, error)
}

type commentService struct {
	gh       github.Client
	prNumber int
	headRef  string
}

// NewCommentService comments on prNumber, or on the open pull request for
// headRef when prNumber is zero.
func NewCommentService(gh github.Client, prNumber int, headRef string) CommentService {
	return &commentService{
		gh:       gh,
		prNumber: prNumber,
		headRef:  headRef,
	}
}

func (s *commentService) Upsert(ctx context.Context, summary string) (*CommentResult, error) {
	number, err := s.pullRequestNumber(ctx)
	if err != nil {
		return nil, err
	}

	body := CommentBody(summary)

	existing, err := s.gh.FindComment(ctx, number, CommentMarker)
	if err != nil {
		return nil, fmt.Errorf("finding existing comment: %w", err)
	}

	if existing != nil {
		if existing.GetBody() == body {
			return &CommentResult{PRNumber: number, Action: "skipped", URL: existing.GetHTMLURL()}, nil
		}

		edited, err := s.gh.EditComment(ctx, existing.GetID(), body)
		if err != nil {
			return nil, fmt.Errorf("updating comment %d: %w", existing.GetID(), err)
		}
		return &CommentResult{PRNumber: number, Action: "updated", URL: edited.GetHTMLURL()}, nil
	}

	created, err := s.gh.CreateComment(ctx, number, body)
	if err != nil {
		return nil, fmt.Errorf("creating comment on #%d: %w", number, err)
	}

	return &CommentResult{PRNumber: number, Action: "created", URL: created.GetHTMLURL()}, nil
}

func (s *commentService) pullRequestNumber(ctx context.Context) (int, error) {
	if s.prNumber > 0 {
		return s.prNumber, nil
	}

	if s.headRef == "" {
		return 0, ErrNoPullRequest
	}

	pr, err := s.gh.FindPullRequestByBranch(ctx, s.headRef)
	if err != nil {
		return 0, fmt.Errorf("finding pull request for %s: %w", s.headRef, err)
	}
	if pr == nil {
		return 0, fmt.Errorf("%w: no open pull request for %s", ErrNoPullRequest, s.headRef)
	}

	return pr.GetNumber(), nil
}

func CommentBody(summary string) string {
	return CommentMarker + "\n" + summary + "\n"
}
