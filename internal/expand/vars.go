package expand

import (
	"fmt"
	"strings"
)

// ParseVars turns repeated "key=value" flags into the expansion
// context. Values stay strings; Lua expressions can convert as needed.
func ParseVars(pairs []string) (map[string]any, error) {
	vars := make(map[string]any, len(pairs))
	for _, p := range pairs {
		i := strings.IndexByte(p, '=')
		if i <= 0 {
			return nil, fmt.Errorf("bad --var %q: want key=value", p)
		}
		vars[p[:i]] = p[i+1:]
	}
	return vars, nil
}
