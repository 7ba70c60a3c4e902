package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tracker-tv/tagguard/internal/config"
	"github.com/tracker-tv/tagguard/internal/orchestrator"
)

func newGeneratePolicyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate-policy",
		Short: "Write policies/tags.rego for the tags listed in REQUIRED_TAGS",
		Long: `Write a conftest policy denying Terraform resource changes that miss one of
the required tags or set it to an empty value.

Environment:
  REQUIRED_TAGS  comma or newline separated tag names
  ACTION_PATH    directory receiving policies/tags.rego (default ".")`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadGenerator()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			logger := log.With().Str("command", "generate-policy").Logger()
			_, err = orchestrator.NewPolicyGenerator(cfg, cmd.OutOrStdout(), logger).Run()
			return err
		},
	}
}
