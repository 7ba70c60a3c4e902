package policy

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	Dir      = "policies"
	Filename = "tags.rego"
)

// Path returns where the required tags policy lives under basePath.
func Path(basePath string) string {
	return filepath.Join(basePath, Dir, Filename)
}

// Write renders the required tags policy, checks that it parses and writes
// it to Path(basePath), replacing any previous file.
func Write(basePath string, tags []string) (string, error) {
	src, err := RequiredTags(tags).Render()
	if err != nil {
		return "", fmt.Errorf("rendering policy: %w", err)
	}

	path := Path(basePath)
	if err := Validate(path, src); err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating policy directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		return "", fmt.Errorf("writing policy %s: %w", path, err)
	}

	return path, nil
}
