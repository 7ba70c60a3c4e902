package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/tracker-tv/tagguard/internal/config"
	"github.com/tracker-tv/tagguard/internal/conftest"
	"github.com/tracker-tv/tagguard/internal/report"
	"github.com/tracker-tv/tagguard/internal/service"
	"github.com/tracker-tv/tagguard/models"
)

// ErrCheckFailed is returned when violations were found (or conftest
// results could not be read) and soft fail is off.
var ErrCheckFailed = errors.New("required tags check failed")

type ResultsParser struct {
	cfg      *config.ParserConfig
	comments service.CommentService
	console  io.Writer
	logger   zerolog.Logger
}

// NewResultsParser wires a parser. comments may be nil to skip the pull
// request comment.
func NewResultsParser(cfg *config.ParserConfig, comments service.CommentService, console io.Writer, logger zerolog.Logger) *ResultsParser {
	return &ResultsParser{cfg: cfg, comments: comments, console: console, logger: logger}
}

func (p *ResultsParser) Run(ctx context.Context) (models.Outcome, error) {
	outcome := conftest.Load(p.cfg.TerraformDir, p.console)
	summary := report.Summary(outcome)

	fmt.Fprintf(p.console, "\n📊 Violations: %d\n", outcome.ViolationsCount())
	fmt.Fprintln(p.console, summary)

	if p.cfg.OutputFile != "" {
		out := NewOutputs(p.cfg.OutputFile)
		out.Set("violations_count", strconv.Itoa(outcome.ViolationsCount()))
		out.Set("passed", strconv.FormatBool(outcome.Passed()))
		out.SetMultiline("violations_summary", summary)
		if err := out.Flush(); err != nil {
			return outcome, err
		}
	}

	if p.cfg.StepSummary != "" {
		if err := AppendStepSummary(p.cfg.StepSummary, summary); err != nil {
			return outcome, err
		}
	}

	if p.comments != nil {
		p.comment(ctx, summary)
	}

	if outcome.Passed() {
		return outcome, nil
	}

	if p.cfg.SoftFail {
		p.logger.Info().Int("violations", outcome.ViolationsCount()).Msg("soft fail enabled, not failing the step")
		return outcome, nil
	}

	return outcome, ErrCheckFailed
}

func (p *ResultsParser) comment(ctx context.Context, summary string) {
	result, err := p.comments.Upsert(ctx, summary)
	if err != nil {
		p.logger.Warn().Err(err).Msg("could not comment on pull request")
		return
	}

	p.logger.Info().
		Int("pr", result.PRNumber).
		Str("action", result.Action).
		Str("url", result.URL).
		Msg("pull request comment")
}
