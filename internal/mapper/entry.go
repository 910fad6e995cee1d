package mapper

import (
	"github.com/flarebyte/seshat-papyrus/internal/attr"
	"github.com/flarebyte/seshat-papyrus/internal/expand"
)

// SourceKind tags the right-hand side of a map entry.
type SourceKind int

const (
	// SourceLiteral is a path string known verbatim at configuration
	// time, eligible for one-time compilation.
	SourceLiteral SourceKind = iota
	// SourceTemplate contains placeholders and must be expanded and
	// compiled per invocation.
	SourceTemplate
	// SourceNone marks an entry whose source is not a usable path
	// string; such entries are skipped, not errors.
	SourceNone
)

// Source is a map entry's right-hand descriptor.
type Source struct {
	Kind SourceKind
	Text string
}

// SourceFromString classifies a config path string.
func SourceFromString(s string) Source {
	if expand.IsTemplate(s) {
		return Source{Kind: SourceTemplate, Text: s}
	}
	return Source{Kind: SourceLiteral, Text: s}
}

// Entry is one configured map line: a typed target attribute on the
// left, a document path source on the right.
type Entry struct {
	Attribute string
	Op        attr.Op
	Source    Source
}
