package orchestrator

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tracker-tv/tagguard/internal/config"
	"github.com/tracker-tv/tagguard/internal/policy"
	"github.com/tracker-tv/tagguard/internal/tags"
)

type PolicyGenerator struct {
	cfg     *config.GeneratorConfig
	console io.Writer
	logger  zerolog.Logger
}

func NewPolicyGenerator(cfg *config.GeneratorConfig, console io.Writer, logger zerolog.Logger) *PolicyGenerator {
	return &PolicyGenerator{cfg: cfg, console: console, logger: logger}
}

// Run writes the required tags policy and returns its path. An empty tag
// list is not an error: nothing is written and the path is empty.
func (g *PolicyGenerator) Run() (string, error) {
	required := tags.Parse(g.cfg.RequiredTags)
	if len(required) == 0 {
		fmt.Fprintln(g.console, "⚠️  No required tags specified")
		return "", nil
	}

	fmt.Fprintf(g.console, "📋 Required tags: %s\n", strings.Join(required, ", "))

	path, err := policy.Write(g.cfg.ActionPath, required)
	if err != nil {
		return "", err
	}

	g.logger.Debug().Str("path", path).Int("tags", len(required)).Msg("policy written")
	fmt.Fprintf(g.console, "✅ Generated policy at %s\n", path)

	return path, nil
}
