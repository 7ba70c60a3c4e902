package policy

import (
	"fmt"

	"github.com/open-policy-agent/opa/v1/ast"
)

const (
	// Package is the conftest default namespace.
	Package = "main"

	requiredTagsName = "required_tags"
)

// RequiredTags builds the module denying resource changes that lack one of
// the given tags or carry it with an empty value. Deleted resources are
// skipped. tags_all is preferred over tags when resolving a resource's tags.
func RequiredTags(tags []string) *Module {
	resource := Block{Exprs: []string{"resource := input.resource_changes[_]"}}

	return &Module{
		Package: Package,
		Imports: []string{"rego.v1"},
		Constants: []Constant{
			{Name: requiredTagsName, Values: tags},
		},
		Rules: []Rule{
			{
				Comment: "Deny resources missing required tags",
				Head:    "deny contains msg",
				Body: []Block{
					resource,
					{Comment: "Skip deleted resources", Exprs: []string{`resource.change.actions[_] != "delete"`}},
					{
						Comment: "Get tags (prefer tags_all for AWS provider v3.38.0+)",
						Exprs:   []string{"after := resource.change.after", "tags := get_tags(after)"},
					},
					{
						Comment: "Check for missing tags",
						Exprs:   []string{"missing := " + requiredTagsName + "[_]", "not tags[missing]"},
					},
					{Exprs: []string{`msg := sprintf("Resource '%s' is missing required tag: %s", [resource.address, missing])`}},
				},
			},
			{
				Comment: "Deny resources with empty tag values",
				Head:    "deny contains msg",
				Body: []Block{
					resource,
					{Exprs: []string{`resource.change.actions[_] != "delete"`}},
					{Exprs: []string{"after := resource.change.after", "tags := get_tags(after)"}},
					{Exprs: []string{"tag := " + requiredTagsName + "[_]", `tags[tag] == ""`}},
					{Exprs: []string{`msg := sprintf("Resource '%s' has empty value for required tag: %s", [resource.address, tag])`}},
				},
			},
			{
				Comment: "Helper to get tags (prefers tags_all over tags)",
				Head:    "get_tags(after) := after.tags_all",
				Body:    []Block{{Exprs: []string{"after.tags_all"}}},
			},
			{
				Head: "get_tags(after) := after.tags",
				Body: []Block{{Exprs: []string{"not after.tags_all", "after.tags"}}},
			},
			{
				Head: "get_tags(after) := {}",
				Body: []Block{{Exprs: []string{"not after.tags_all", "not after.tags"}}},
			},
		},
	}
}

// Validate parses src as a Rego v1 module.
func Validate(filename, src string) error {
	if _, err := ast.ParseModuleWithOpts(filename, src, ast.ParserOptions{RegoVersion: ast.RegoV1}); err != nil {
		return fmt.Errorf("parsing generated policy: %w", err)
	}
	return nil
}
