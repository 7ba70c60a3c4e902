package tags

import "strings"

// Parse splits a required tags input into tag names. The input is split on
// commas when it contains one, on newlines otherwise. Names are trimmed and
// blank entries dropped; order and duplicates are kept.
func Parse(raw string) []string {
	sep := "\n"
	if strings.Contains(raw, ",") {
		sep = ","
	}

	var result []string
	for _, part := range strings.Split(raw, sep) {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		result = append(result, name)
	}

	return result
}
