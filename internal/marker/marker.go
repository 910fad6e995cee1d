package marker

import "strings"

// Package marker renders offset diagnostics for expression and document
// errors: the offending text followed by a caret line pointing at the
// byte where parsing stopped.

// Lines returns the two-line caret rendering for an error at offset in
// text. The caret line is exactly offset spaces, a caret, a space and
// the message, so the same input always renders byte-for-byte the same.
func Lines(text string, offset int, msg string) []string {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}
	return []string{text, strings.Repeat(" ", offset) + "^ " + msg}
}

// Sprint joins the caret rendering into a single string.
func Sprint(text string, offset int, msg string) string {
	return strings.Join(Lines(text, offset, msg), "\n")
}
