package policy

import (
	"bytes"
	"encoding/json"
	"strings"
)

const indent = "    "

// Module is a Rego module assembled from typed parts. Render produces the
// source text.
type Module struct {
	Package   string
	Imports   []string
	Constants []Constant
	Rules     []Rule
}

// Constant is a top-level list of string literals, e.g. `name := ["a"]`.
type Constant struct {
	Name   string
	Values []string
}

// Rule is one rule clause. Head is everything before the `if` keyword.
type Rule struct {
	Comment string
	Head    string
	Body    []Block
}

// Block is a group of body expressions. Blocks are separated by a blank
// line inside the rule body.
type Block struct {
	Comment string
	Exprs   []string
}

func (m *Module) Render() (string, error) {
	var b strings.Builder

	b.WriteString("package " + m.Package + "\n")

	if len(m.Imports) > 0 {
		b.WriteString("\n")
		for _, imp := range m.Imports {
			b.WriteString("import " + imp + "\n")
		}
	}

	if len(m.Constants) > 0 {
		b.WriteString("\n")
		for _, c := range m.Constants {
			line, err := c.render()
			if err != nil {
				return "", err
			}
			b.WriteString(line)
		}
	}

	for _, r := range m.Rules {
		b.WriteString("\n")
		r.render(&b)
	}

	return b.String(), nil
}

func (c Constant) render() (string, error) {
	literals := make([]string, 0, len(c.Values))
	for _, v := range c.Values {
		lit, err := quote(v)
		if err != nil {
			return "", err
		}
		literals = append(literals, lit)
	}
	return c.Name + " := [" + strings.Join(literals, ", ") + "]\n", nil
}

func (r Rule) render(b *strings.Builder) {
	if r.Comment != "" {
		b.WriteString("# " + r.Comment + "\n")
	}
	b.WriteString(r.Head + " if {\n")
	for i, block := range r.Body {
		if i > 0 {
			b.WriteString(indent + "\n")
		}
		if block.Comment != "" {
			b.WriteString(indent + "# " + block.Comment + "\n")
		}
		for _, expr := range block.Exprs {
			b.WriteString(indent + expr + "\n")
		}
	}
	b.WriteString("}\n")
}

// quote renders s as a Rego string literal. Rego strings follow JSON string
// syntax, so plain names come out as "name".
func quote(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
