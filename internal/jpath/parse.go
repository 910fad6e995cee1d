package jpath

import (
	"fmt"
	"strconv"
)

// CompileError reports bad path syntax, with the byte offset at which
// parsing stopped making progress.
type CompileError struct {
	Offset  int
	Message string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("jpath syntax error at offset %d: %s", e.Offset, e.Message)
}

type parser struct {
	text string
	pos  int
}

func (p *parser) fail(msg string) *CompileError {
	return &CompileError{Offset: p.pos, Message: msg}
}

func (p *parser) eof() bool { return p.pos >= len(p.text) }

// Parse compiles a path expression. A non-empty input either yields a
// path of at least one step or a *CompileError; trailing garbage is a
// terminal syntax error, never silently ignored.
func Parse(text string) (*Path, error) {
	if text == "" {
		return nil, &CompileError{Offset: 0, Message: "empty jpath expression"}
	}
	p := &parser{text: text}
	if p.text[0] == '$' {
		p.pos++
	}

	var steps []step
	afterRecurse := false
	for !p.eof() {
		c := p.text[p.pos]
		switch {
		case c == '.' && afterRecurse:
			return nil, p.fail("unexpected '.' after '..'")

		case c == '.':
			if p.pos+1 < len(p.text) && p.text[p.pos+1] == '.' {
				steps = append(steps, step{kind: stepRecurse})
				p.pos += 2
				if p.eof() {
					return nil, p.fail("expected member name, wildcard or '[' after '..'")
				}
				afterRecurse = true
				continue
			}
			p.pos++
			if p.eof() {
				return nil, p.fail("expected member name after '.'")
			}
			s, err := p.parseKeyOrWildcard()
			if err != nil {
				return nil, err
			}
			steps = append(steps, s)

		case c == '[':
			s, err := p.parseSelector()
			if err != nil {
				return nil, err
			}
			steps = append(steps, s)

		case len(steps) == 0 || afterRecurse:
			s, err := p.parseKeyOrWildcard()
			if err != nil {
				return nil, err
			}
			steps = append(steps, s)

		default:
			return nil, p.fail("expected '.', '..' or '[' selector")
		}
		afterRecurse = false
	}

	if len(steps) == 0 {
		return nil, p.fail("expected '.' or '[' after root")
	}
	return &Path{steps: steps}, nil
}

func (p *parser) parseKeyOrWildcard() (step, error) {
	if p.text[p.pos] == '*' {
		p.pos++
		return step{kind: stepWildcard}, nil
	}
	start := p.pos
	var key []byte
	for !p.eof() {
		c := p.text[p.pos]
		switch {
		case c == '\\':
			if p.pos+1 >= len(p.text) {
				return step{}, p.fail("unterminated escape")
			}
			key = append(key, p.text[p.pos+1])
			p.pos += 2
		case isKeyChar(c):
			key = append(key, c)
			p.pos++
		default:
			if p.pos == start {
				return step{}, p.fail("expected member name")
			}
			return step{kind: stepKey, key: string(key)}, nil
		}
	}
	return step{kind: stepKey, key: string(key)}, nil
}

func (p *parser) parseSelector() (step, error) {
	p.pos++ // consume '['
	if p.eof() {
		return step{}, p.fail("expected array index, slice or wildcard")
	}

	if p.text[p.pos] == '*' {
		p.pos++
		if err := p.expect(']', "missing closing ']'"); err != nil {
			return step{}, err
		}
		return step{kind: stepWildcard}, nil
	}

	lo, hasLo, err := p.parseInt()
	if err != nil {
		return step{}, err
	}
	if !hasLo && (p.eof() || p.text[p.pos] != ':') {
		return step{}, p.fail("expected array index, slice or wildcard")
	}

	if !p.eof() && p.text[p.pos] == ':' {
		p.pos++
		hi, hasHi, err := p.parseInt()
		if err != nil {
			return step{}, err
		}
		if err := p.expect(']', "missing closing ']'"); err != nil {
			return step{}, err
		}
		return step{kind: stepSlice, lo: lo, hi: hi, hasLo: hasLo, hasHi: hasHi}, nil
	}

	if err := p.expect(']', "expected ':' or ']'"); err != nil {
		return step{}, err
	}
	return step{kind: stepIndex, index: lo}, nil
}

func (p *parser) parseInt() (int, bool, error) {
	start := p.pos
	if !p.eof() && p.text[p.pos] == '-' {
		p.pos++
	}
	for !p.eof() && p.text[p.pos] >= '0' && p.text[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start || (p.pos == start+1 && p.text[start] == '-') {
		p.pos = start
		return 0, false, nil
	}
	n, err := strconv.Atoi(p.text[start:p.pos])
	if err != nil {
		p.pos = start
		return 0, false, p.fail("array index out of range")
	}
	return n, true, nil
}

func (p *parser) expect(c byte, msg string) error {
	if p.eof() || p.text[p.pos] != c {
		return p.fail(msg)
	}
	p.pos++
	return nil
}

// Validate is the scriptable diagnostic surface for path expressions.
// It always returns a value: "<bytes-consumed>:<canonical-path>" on
// success, "<offset>:<error-message>" on failure.
func Validate(text string) string {
	path, err := Parse(text)
	if err != nil {
		var ce *CompileError
		if e, ok := err.(*CompileError); ok {
			ce = e
		} else {
			ce = &CompileError{Offset: 0, Message: err.Error()}
		}
		return fmt.Sprintf("%d:%s", ce.Offset, ce.Message)
	}
	return fmt.Sprintf("%d:%s", len(text), path.String())
}
