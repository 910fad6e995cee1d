package expand

import (
	"fmt"
	"strings"
)

// Func evaluates the expression inside one %{...} placeholder against
// the invocation context. It is a host capability: the engine treats
// it as opaque.
type Func func(expr string) (string, error)

// IsTemplate reports whether a source string contains placeholders and
// therefore needs per-invocation expansion.
func IsTemplate(s string) bool { return strings.Contains(s, "%{") }

// Render expands every %{...} placeholder in tmpl via eval. When esc
// is non-nil it is applied to each expansion result (not the literal
// text), so expanded values cannot change the surrounding syntax.
// Placeholders may nest braces; an unterminated placeholder is an
// error.
func Render(tmpl string, eval Func, esc func(string) string) (string, error) {
	var b strings.Builder
	for {
		i := strings.Index(tmpl, "%{")
		if i < 0 {
			b.WriteString(tmpl)
			return b.String(), nil
		}
		b.WriteString(tmpl[:i])
		rest := tmpl[i+2:]
		end, depth := -1, 1
		for j := 0; j < len(rest); j++ {
			switch rest[j] {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					end = j
				}
			}
			if end >= 0 {
				break
			}
		}
		if end < 0 {
			return "", fmt.Errorf("unterminated %%{...} placeholder")
		}
		expr := rest[:end]
		if eval == nil {
			return "", fmt.Errorf("no expansion capability for %%{%s}", expr)
		}
		out, err := eval(expr)
		if err != nil {
			return "", fmt.Errorf("expanding %%{%s}: %w", expr, err)
		}
		if esc != nil {
			out = esc(out)
		}
		b.WriteString(out)
		tmpl = rest[end+1:]
	}
}
