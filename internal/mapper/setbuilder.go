package mapper

import (
	"fmt"

	"github.com/flarebyte/seshat-papyrus/internal/attr"
	"github.com/flarebyte/seshat-papyrus/internal/expand"
	"github.com/flarebyte/seshat-papyrus/internal/marker"
)

// Template selects attributes by name for the encode direction. A
// negated template removes previously accumulated matches instead of
// adding new ones.
type Template struct {
	Negate bool
	Expr   string
}

// BuildError reports a malformed template list. Offset points into the
// original template text when known, -1 otherwise.
type BuildError struct {
	Text    string
	Offset  int
	Message string
}

func (e *BuildError) Error() string {
	if e.Offset < 0 {
		return e.Message
	}
	return fmt.Sprintf("template error at offset %d: %s", e.Offset, e.Message)
}

// Render returns the caret rendering when an offset is known.
func (e *BuildError) Render() []string {
	if e.Offset < 0 || e.Text == "" {
		return []string{e.Message}
	}
	return marker.Lines(e.Text, e.Offset, e.Message)
}

// ParseTemplates splits the whitespace-separated template list form:
// each token names an attribute, a '!' prefix negates it.
func ParseTemplates(text string) ([]Template, error) {
	var out []Template
	pos := 0
	for pos < len(text) {
		if text[pos] == ' ' || text[pos] == '\t' || text[pos] == '\n' {
			pos++
			continue
		}
		t := Template{}
		if text[pos] == '!' {
			t.Negate = true
			pos++
		}
		start := pos
		for pos < len(text) && text[pos] != ' ' && text[pos] != '\t' && text[pos] != '\n' {
			if text[pos] == '!' {
				return nil, &BuildError{Text: text, Offset: pos, Message: "unexpected '!' inside attribute name"}
			}
			pos++
		}
		if pos == start {
			return nil, &BuildError{Text: text, Offset: start, Message: "expected attribute name"}
		}
		t.Expr = text[start:pos]
		out = append(out, t)
	}
	return out, nil
}

// BuildSet applies templates strictly in order against a source
// attribute collection. Non-negated templates append every matching
// source pair in source order; negated templates remove every
// accumulated pair whose name matches, however many times it appears.
// The returned order is the emission order.
func BuildSet(templates []Template, source attr.List, dict *attr.Dict, eval expand.Func) (attr.List, error) {
	var acc attr.List
	for _, t := range templates {
		name := t.Expr
		if expand.IsTemplate(name) {
			expanded, err := expand.Render(name, eval, nil)
			if err != nil {
				return nil, &BuildError{Offset: -1, Message: err.Error()}
			}
			name = expanded
		}
		def, ok := dict.Lookup(name)
		if !ok {
			return nil, &BuildError{Offset: -1, Message: fmt.Sprintf("unknown attribute %q", name)}
		}
		if t.Negate {
			acc = acc.WithoutNamed(def.Name)
			continue
		}
		acc = append(acc, source.Named(def.Name)...)
	}
	return acc, nil
}
