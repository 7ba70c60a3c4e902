package orchestrator

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

const defaultDelimiter = "EOF"

// newDelimiter is swapped in tests.
var newDelimiter = func() string {
	return "ghadelimiter_" + uuid.NewString()
}

// Outputs appends step outputs to the file named by GITHUB_OUTPUT.
type Outputs struct {
	path string
	b    strings.Builder
}

func NewOutputs(path string) *Outputs {
	return &Outputs{path: path}
}

func (o *Outputs) Set(name, value string) {
	fmt.Fprintf(&o.b, "%s=%s\n", name, value)
}

// SetMultiline writes value with the heredoc syntax. The delimiter is
// replaced by a random one when value contains it.
func (o *Outputs) SetMultiline(name, value string) {
	delimiter := defaultDelimiter
	if strings.Contains(value, delimiter) {
		delimiter = newDelimiter()
	}
	fmt.Fprintf(&o.b, "%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter)
}

func (o *Outputs) Flush() error {
	if err := appendFile(o.path, o.b.String()); err != nil {
		return fmt.Errorf("writing outputs to %s: %w", o.path, err)
	}
	o.b.Reset()
	return nil
}

// AppendStepSummary adds Markdown to the job summary file named by
// GITHUB_STEP_SUMMARY.
func AppendStepSummary(path, markdown string) error {
	if err := appendFile(path, markdown+"\n"); err != nil {
		return fmt.Errorf("writing step summary to %s: %w", path, err)
	}
	return nil
}

func appendFile(path, content string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
