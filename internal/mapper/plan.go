package mapper

import (
	"fmt"

	"github.com/flarebyte/seshat-papyrus/internal/attr"
	"github.com/flarebyte/seshat-papyrus/internal/docjson"
	"github.com/flarebyte/seshat-papyrus/internal/jpath"
	"github.com/flarebyte/seshat-papyrus/internal/marker"
)

// int64Supported mirrors the document number decoder's capability,
// probed once; the gate below fails plan construction rather than
// letting 64-bit targets truncate at evaluation time.
var int64Supported = docjson.SupportsInt64()

type slotKind int

const (
	slotStatic slotKind = iota
	slotDynamic
	slotSkip
)

type planSlot struct {
	kind slotKind
	path *jpath.Path
}

// Plan holds the compiled state for a map block: one slot per entry,
// index-aligned with the entry list. Built once at configuration time
// and read-only thereafter, so concurrent runs share it without
// synchronization.
type Plan struct {
	slots []planSlot
}

// ConfigError is a fatal configuration-build failure. Origin names the
// offending entry; Text/Offset carry the caret rendering when the
// failure is a path syntax error.
type ConfigError struct {
	Origin  string
	Text    string
	Offset  int
	Message string
}

func (e *ConfigError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("%s: %s", e.Origin, e.Message)
	}
	return fmt.Sprintf("%s: syntax error at offset %d: %s", e.Origin, e.Offset, e.Message)
}

// Render returns the multi-line diagnostic: origin, offending text,
// caret line.
func (e *ConfigError) Render() []string {
	lines := []string{e.Origin + ": syntax error"}
	if e.Text != "" {
		lines = append(lines, marker.Lines(e.Text, e.Offset, e.Message)...)
	} else {
		lines = append(lines, e.Message)
	}
	return lines
}

// BuildPlan pre-compiles every literal path source and validates each
// entry's target against the dictionary. Any failure aborts the whole
// build; no partial plan escapes.
func BuildPlan(entries []Entry, dict *attr.Dict) (*Plan, error) {
	plan := &Plan{slots: make([]planSlot, len(entries))}
	for i, e := range entries {
		origin := fmt.Sprintf("map entry %d (%s)", i+1, e.Attribute)

		def, ok := dict.Lookup(e.Attribute)
		if !ok {
			return nil, &ConfigError{Origin: origin, Message: "unknown attribute"}
		}
		if def.Type.IsInteger() && def.Type.Bits() == 64 && !int64Supported {
			return nil, &ConfigError{Origin: origin,
				Message: "64-bit integers are not supported by the document number decoder"}
		}

		switch e.Source.Kind {
		case SourceLiteral:
			path, err := jpath.Parse(e.Source.Text)
			if err != nil {
				ce, ok := err.(*jpath.CompileError)
				if !ok {
					return nil, &ConfigError{Origin: origin, Message: err.Error()}
				}
				return nil, &ConfigError{
					Origin:  origin,
					Text:    e.Source.Text,
					Offset:  ce.Offset,
					Message: ce.Message,
				}
			}
			plan.slots[i] = planSlot{kind: slotStatic, path: path}
		case SourceTemplate:
			plan.slots[i] = planSlot{kind: slotDynamic}
		default:
			plan.slots[i] = planSlot{kind: slotSkip}
		}
	}
	return plan, nil
}

// Len returns the number of plan slots.
func (p *Plan) Len() int { return len(p.slots) }
