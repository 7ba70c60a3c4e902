package conftest

import (
	"encoding/json"

	"github.com/tracker-tv/tagguard/models"
)

const (
	defaultFailureMsg = "Unknown violation"
	defaultWarningMsg = "Unknown warning"
)

// Result is one entry of `conftest test --output json`.
type Result struct {
	Filename  string    `json:"filename"`
	Namespace string    `json:"namespace"`
	Successes int       `json:"successes"`
	Failures  []Finding `json:"failures"`
	Warnings  []Finding `json:"warnings"`
}

type Finding struct {
	Msg      *string        `json:"msg"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

func (f Finding) message(fallback string) string {
	if f.Msg == nil {
		return fallback
	}
	return *f.Msg
}

func FromJSON(data []byte) ([]Result, error) {
	var results []Result
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Violations flattens results into violations, keeping each result's
// failures ahead of its warnings.
func Violations(results []Result) []models.Violation {
	var violations []models.Violation

	for _, r := range results {
		for _, f := range r.Failures {
			violations = append(violations, models.Violation{
				Message: f.message(defaultFailureMsg),
				Kind:    models.ViolationKindError,
			})
		}
		for _, w := range r.Warnings {
			violations = append(violations, models.Violation{
				Message: w.message(defaultWarningMsg),
				Kind:    models.ViolationKindWarning,
			})
		}
	}

	return violations
}
