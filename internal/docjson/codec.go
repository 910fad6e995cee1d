// Package docjson parses JSON text into an ordered document tree and
// serializes attribute collections back to JSON. Parsing goes through
// the yaml.v3 node model (JSON is valid YAML) because it preserves
// object member order and keeps number literals as exact text.
package docjson

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseError reports a malformed input document. Offset is a byte
// offset into the input, usable in the same caret rendering as path
// compile errors.
type ParseError struct {
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("document parse error at offset %d: %s", e.Offset, e.Message)
}

// SupportsInt64 reports whether the document number decoder can
// represent 64-bit integers. Literals decode through strconv from the
// exact source text, so the full 64-bit range is available.
func SupportsInt64() bool { return true }

var yamlLineRe = regexp.MustCompile(`(?:^|\n)yaml: line (\d+): ([^\n]+)`)

// Parse decodes document text into a tree. Empty input is an error.
func Parse(text string) (*Node, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{Offset: 0, Message: "empty document"}
	}
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(text), &root); err != nil {
		return nil, parseErrorFrom(err, text)
	}
	n := wrap(&root)
	if n == nil {
		return nil, &ParseError{Offset: 0, Message: "empty document"}
	}
	return n, nil
}

func parseErrorFrom(err error, text string) *ParseError {
	msg := err.Error()
	if m := yamlLineRe.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return &ParseError{Offset: lineOffset(text, line), Message: m[2]}
	}
	return &ParseError{Offset: 0, Message: strings.TrimPrefix(msg, "yaml: ")}
}

// lineOffset returns the byte offset of the start of a 1-based line.
func lineOffset(text string, line int) int {
	off := 0
	for line > 1 {
		i := strings.IndexByte(text[off:], '\n')
		if i < 0 {
			break
		}
		off += i + 1
		line--
	}
	return off
}
