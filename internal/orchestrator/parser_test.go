package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tracker-tv/tagguard/internal/config"
	"github.com/tracker-tv/tagguard/internal/service"
	serviceMocks "github.com/tracker-tv/tagguard/internal/service/mocks"
)

func newParserConfig(t *testing.T, results string) *config.ParserConfig {
	t.Helper()
	dir := t.TempDir()
	if results != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "conftest_results.json"), []byte(results), 0o644))
	}
	return &config.ParserConfig{
		TerraformDir: dir,
		OutputFile:   filepath.Join(dir, "github_output"),
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestResultsParser_Failure(t *testing.T) {
	cfg := newParserConfig(t, `[{"failures":[{"msg":"missing tag: Owner"}]}]`)
	var console bytes.Buffer

	outcome, err := NewResultsParser(cfg, nil, &console, zerolog.Nop()).Run(context.Background())

	assert.ErrorIs(t, err, ErrCheckFailed)
	assert.Equal(t, 1, outcome.ViolationsCount())
	assert.False(t, outcome.Passed())
	assert.Equal(t,
		"violations_count=1\npassed=false\nviolations_summary<<EOF\n❌ **Found 1 tag violation(s)**\n\n- ❌ missing tag: Owner\nEOF\n",
		readFile(t, cfg.OutputFile))
	assert.Equal(t, "\n📊 Violations: 1\n❌ **Found 1 tag violation(s)**\n\n- ❌ missing tag: Owner\n", console.String())
}

func TestResultsParser_Passed(t *testing.T) {
	cfg := newParserConfig(t, `[]`)

	outcome, err := NewResultsParser(cfg, nil, &bytes.Buffer{}, zerolog.Nop()).Run(context.Background())

	assert.NoError(t, err)
	assert.True(t, outcome.Passed())
	assert.Equal(t,
		"violations_count=0\npassed=true\nviolations_summary<<EOF\n✅ **All resources have required tags**\nEOF\n",
		readFile(t, cfg.OutputFile))
}

func TestResultsParser_Warning(t *testing.T) {
	cfg := newParserConfig(t, `[{"warnings":[{"msg":"low priority"}]}]`)

	outcome, err := NewResultsParser(cfg, nil, &bytes.Buffer{}, zerolog.Nop()).Run(context.Background())

	assert.ErrorIs(t, err, ErrCheckFailed)
	assert.False(t, outcome.Passed())
	assert.True(t, outcome.Violations[0].IsWarning())
	assert.Contains(t, readFile(t, cfg.OutputFile), "- ⚠️ low priority\n")
}

func TestResultsParser_SoftFail(t *testing.T) {
	cfg := newParserConfig(t, `[{"failures":[{"msg":"missing tag: Owner"}]}]`)
	cfg.SoftFail = true

	outcome, err := NewResultsParser(cfg, nil, &bytes.Buffer{}, zerolog.Nop()).Run(context.Background())

	assert.NoError(t, err)
	assert.False(t, outcome.Passed())

	output := readFile(t, cfg.OutputFile)
	assert.Contains(t, output, "violations_count=1\n")
	assert.Contains(t, output, "passed=false\n")
}

func TestResultsParser_MissingResults(t *testing.T) {
	cfg := newParserConfig(t, "")
	var console bytes.Buffer

	outcome, err := NewResultsParser(cfg, nil, &console, zerolog.Nop()).Run(context.Background())

	assert.ErrorIs(t, err, ErrCheckFailed)
	assert.True(t, outcome.ErrorOccurred)
	assert.False(t, outcome.Passed())
	assert.Contains(t, console.String(), "⚠️  Results file not found: ")
	assert.Contains(t, readFile(t, cfg.OutputFile), "violations_summary<<EOF\n⚠️ **Error during validation**\n\nResults file not found: ")
}

func TestResultsParser_NoOutputFile(t *testing.T) {
	cfg := newParserConfig(t, `[]`)
	cfg.OutputFile = ""

	_, err := NewResultsParser(cfg, nil, &bytes.Buffer{}, zerolog.Nop()).Run(context.Background())

	assert.NoError(t, err)
	_, statErr := os.Stat(filepath.Join(cfg.TerraformDir, "github_output"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestResultsParser_OutputError(t *testing.T) {
	cfg := newParserConfig(t, `[]`)
	cfg.OutputFile = filepath.Join(cfg.TerraformDir, "missing", "github_output")

	_, err := NewResultsParser(cfg, nil, &bytes.Buffer{}, zerolog.Nop()).Run(context.Background())

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCheckFailed)
}

func TestResultsParser_StepSummary(t *testing.T) {
	cfg := newParserConfig(t, `[]`)
	cfg.StepSummary = filepath.Join(cfg.TerraformDir, "step_summary")

	_, err := NewResultsParser(cfg, nil, &bytes.Buffer{}, zerolog.Nop()).Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "✅ **All resources have required tags**\n", readFile(t, cfg.StepSummary))
}

func TestResultsParser_Comment(t *testing.T) {
	cfg := newParserConfig(t, `[{"failures":[{"msg":"missing tag: Owner"}]}]`)
	comments := serviceMocks.NewMockCommentService(t)

	comments.
		EXPECT().
		Upsert(mock.Anything, "❌ **Found 1 tag violation(s)**\n\n- ❌ missing tag: Owner").
		Once().
		Return(&service.CommentResult{PRNumber: 3, Action: "created"}, nil)

	_, err := NewResultsParser(cfg, comments, &bytes.Buffer{}, zerolog.Nop()).Run(context.Background())

	assert.ErrorIs(t, err, ErrCheckFailed)
}

func TestResultsParser_CommentErrorIgnored(t *testing.T) {
	cfg := newParserConfig(t, `[]`)
	comments := serviceMocks.NewMockCommentService(t)

	comments.
		EXPECT().
		Upsert(mock.Anything, mock.Anything).
		Once().
		Return(nil, errors.New("bad credentials"))

	outcome, err := NewResultsParser(cfg, comments, &bytes.Buffer{}, zerolog.Nop()).Run(context.Background())

	assert.NoError(t, err)
	assert.True(t, outcome.Passed())
	assert.Contains(t, readFile(t, cfg.OutputFile), "passed=true\n")
}
