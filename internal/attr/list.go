package attr

import "strings"

// Pair is one typed attribute record: name, write operator, value.
type Pair struct {
	Name  string
	Op    Op
	Value Value
}

// List is an ordered attribute collection. The same name may appear
// more than once; order is always insertion order.
type List []Pair

// Named returns all pairs whose name matches, case-insensitively, in
// list order.
func (l List) Named(name string) List {
	var out List
	for _, p := range l {
		if strings.EqualFold(p.Name, name) {
			out = append(out, p)
		}
	}
	return out
}

// WithoutNamed returns the list with every pair matching name removed,
// preserving the order of the remainder.
func (l List) WithoutNamed(name string) List {
	out := l[:0:0]
	for _, p := range l {
		if !strings.EqualFold(p.Name, name) {
			out = append(out, p)
		}
	}
	return out
}
