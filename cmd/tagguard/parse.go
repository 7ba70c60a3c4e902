package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tracker-tv/tagguard/internal/config"
	"github.com/tracker-tv/tagguard/internal/github"
	"github.com/tracker-tv/tagguard/internal/orchestrator"
	"github.com/tracker-tv/tagguard/internal/service"
)

func newParseResultsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse-results",
		Short: "Summarize conftest_results.json and set the step outputs",
		Long: `Read conftest_results.json, print a summary and write the violations_count,
passed and violations_summary outputs. Exits 1 when the check failed unless
SOFT_FAIL is true.

Environment:
  TERRAFORM_DIR        directory holding conftest_results.json (default ".")
  SOFT_FAIL            "true" to never fail the step
  GITHUB_OUTPUT        step outputs file
  GITHUB_STEP_SUMMARY  job summary file
  COMMENT_ON_PR        "true" to keep a summary comment on the pull request
  GITHUB_TOKEN, GITHUB_REPOSITORY, PR_NUMBER, GITHUB_HEAD_REF`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadParser()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			logger := log.With().Str("command", "parse-results").Logger()
			parser := orchestrator.NewResultsParser(cfg, commentService(cfg.Comment, logger), cmd.OutOrStdout(), logger)

			_, err = parser.Run(cmd.Context())
			return err
		},
	}
}

func commentService(cfg config.CommentConfig, logger zerolog.Logger) service.CommentService {
	if !cfg.Enabled {
		return nil
	}

	if cfg.Token == "" || cfg.Owner() == "" || cfg.Repo() == "" {
		logger.Warn().
			Str("repository", cfg.Repository).
			Msg("COMMENT_ON_PR needs GITHUB_TOKEN and GITHUB_REPOSITORY, skipping pull request comment")
		return nil
	}

	gh := github.New(cfg.Token, cfg.Owner(), cfg.Repo())
	return service.NewCommentService(gh, cfg.PRNumber, cfg.HeadRef)
}
