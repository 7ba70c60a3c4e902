package conftest

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tracker-tv/tagguard/models"
)

const (
	ResultsFilename = "conftest_results.json"

	errorExcerptLen   = 500
	consoleExcerptLen = 200
)

func ResultsPath(dir string) string {
	return filepath.Join(dir, ResultsFilename)
}

// Load reads the conftest results stored in dir. Read and parse problems
// never fail the call: they end up in the outcome as an error, and a notice
// is printed to console.
func Load(dir string, console io.Writer) models.Outcome {
	path := ResultsPath(dir)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return failed(console, fmt.Sprintf("Results file not found: %s", path))
		}
		return failed(console, fmt.Sprintf("Error reading results: %v", err))
	}

	content := string(data)

	// conftest prints plain text when it cannot run at all
	if !strings.HasPrefix(strings.TrimSpace(content), "[") {
		fmt.Fprintf(console, "⚠️  Conftest output is not valid JSON: %s\n", truncate(content, consoleExcerptLen))
		return models.Outcome{
			ErrorOccurred: true,
			ErrorMessage:  "Conftest error: " + truncate(content, errorExcerptLen),
		}
	}

	results, err := FromJSON(data)
	if err != nil {
		return failed(console, fmt.Sprintf("Could not parse results: %v", err))
	}

	return models.Outcome{Violations: Violations(results)}
}

func failed(console io.Writer, msg string) models.Outcome {
	fmt.Fprintf(console, "⚠️  %s\n", msg)
	return models.Outcome{ErrorOccurred: true, ErrorMessage: msg}
}

// truncate keeps the first n characters of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
