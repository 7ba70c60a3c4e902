package report

import (
	"fmt"
	"strings"

	"github.com/tracker-tv/tagguard/models"
)

const (
	errorMarker   = "❌"
	warningMarker = "⚠️"
)

// Summary renders the Markdown summary of an outcome.
func Summary(o models.Outcome) string {
	if o.ErrorOccurred {
		return fmt.Sprintf("%s **Error during validation**\n\n%s", warningMarker, o.ErrorMessage)
	}

	if o.Passed() {
		return "✅ **All resources have required tags**"
	}

	lines := make([]string, 0, len(o.Violations)+1)
	lines = append(lines, fmt.Sprintf("%s **Found %d tag violation(s)**\n", errorMarker, o.ViolationsCount()))
	for _, v := range o.Violations {
		marker := errorMarker
		if v.IsWarning() {
			marker = warningMarker
		}
		lines = append(lines, fmt.Sprintf("- %s %s", marker, v.Message))
	}

	return strings.Join(lines, "\n")
}
