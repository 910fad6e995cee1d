// Package jpath implements the small path-query language used to
// locate leaf values inside a parsed document: member access, array
// indices and slices, wildcards and recursive descent.
package jpath

import (
	"strconv"
	"strings"
)

type stepKind int

const (
	stepKey stepKind = iota
	stepIndex
	stepSlice
	stepWildcard
	stepRecurse
)

type step struct {
	kind  stepKind
	key   string
	index int
	lo    int
	hi    int
	hasLo bool
	hasHi bool
}

// Path is a compiled path expression. It is immutable after Parse and
// safe for concurrent evaluation.
type Path struct {
	steps []step
}

// String renders the canonical form of the path.
func (p *Path) String() string {
	var b strings.Builder
	b.WriteByte('$')
	afterRecurse := false
	for _, s := range p.steps {
		switch s.kind {
		case stepKey:
			if !afterRecurse {
				b.WriteByte('.')
			}
			b.WriteString(escapeKey(s.key))
		case stepIndex:
			b.WriteString("[" + strconv.Itoa(s.index) + "]")
		case stepSlice:
			b.WriteByte('[')
			if s.hasLo {
				b.WriteString(strconv.Itoa(s.lo))
			}
			b.WriteByte(':')
			if s.hasHi {
				b.WriteString(strconv.Itoa(s.hi))
			}
			b.WriteByte(']')
		case stepWildcard:
			b.WriteString("[*]")
		case stepRecurse:
			b.WriteString("..")
			afterRecurse = true
			continue
		}
		afterRecurse = false
	}
	return b.String()
}

func isKeyChar(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '-' || c == '_'
}

func escapeKey(key string) string {
	var b strings.Builder
	for i := 0; i < len(key); i++ {
		if !isKeyChar(key[i]) {
			b.WriteByte('\\')
		}
		b.WriteByte(key[i])
	}
	return b.String()
}

// Escape backslash-escapes every byte that is significant to the path
// grammar, so expanded template output always reads as literal member
// names.
func Escape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if !isKeyChar(s[i]) {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
