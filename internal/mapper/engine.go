package mapper

import (
	"fmt"
	"strings"

	"github.com/flarebyte/seshat-papyrus/internal/attr"
	"github.com/flarebyte/seshat-papyrus/internal/docjson"
	"github.com/flarebyte/seshat-papyrus/internal/expand"
	"github.com/flarebyte/seshat-papyrus/internal/jpath"
)

// Outcome is the overall result of one decode run.
type Outcome int

const (
	// OutcomeNoMatch means no entry produced any record. Common and
	// legitimate, never a failure.
	OutcomeNoMatch Outcome = iota
	// OutcomeUpdated means at least one record was produced.
	OutcomeUpdated
	// OutcomeFailed means the run aborted: bad document, bad dynamic
	// path, or failed expansion.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNoMatch:
		return "nomatch"
	case OutcomeUpdated:
		return "updated"
	case OutcomeFailed:
		return "failed"
	}
	return "unknown"
}

// Result is the outcome of a run plus the records it produced. Reason
// is set only on OutcomeFailed.
type Result struct {
	Outcome Outcome
	Pairs   attr.List
	Reason  string
}

// Engine drives decode runs against a shared immutable Plan. The
// parsed document and any dynamically compiled paths are local to each
// Run call.
type Engine struct {
	Dict    *attr.Dict
	Expand  expand.Func
	Lenient bool
}

// JoinFragments concatenates document input fragments in order.
func JoinFragments(frags []string) string {
	return strings.Join(frags, "")
}

func failed(reason string) Result {
	return Result{Outcome: OutcomeFailed, Reason: reason}
}

// Run parses the document once, then walks entries and plan slots in
// lock-step, evaluating each entry's path and appending one record per
// matched leaf. Per-leaf conversion failures are absorbed; per-entry
// fatal conditions short-circuit the run.
func (e *Engine) Run(plan *Plan, entries []Entry, doc string) Result {
	if len(entries) != plan.Len() {
		return failed(fmt.Sprintf("plan has %d slots for %d entries", plan.Len(), len(entries)))
	}
	if doc == "" {
		return failed("document input length must be > 0")
	}

	root, err := docjson.Parse(doc)
	if err != nil {
		return failed(err.Error())
	}

	var pairs attr.List
	for i, en := range entries {
		slot := plan.slots[i]
		def, ok := e.Dict.Lookup(en.Attribute)
		if !ok {
			return failed(fmt.Sprintf("map entry %d: unknown attribute %q", i+1, en.Attribute))
		}

		var path *jpath.Path
		switch slot.kind {
		case slotStatic:
			path = slot.path
		case slotDynamic:
			expanded, err := expand.Render(en.Source.Text, e.Expand, jpath.Escape)
			if err != nil {
				return failed(fmt.Sprintf("map entry %d (%s): %v", i+1, en.Attribute, err))
			}
			path, err = jpath.Parse(expanded)
			if err != nil {
				return failed(fmt.Sprintf("map entry %d (%s): expanded path %q: %v",
					i+1, en.Attribute, expanded, err))
			}
		case slotSkip:
			continue
		}

		for _, leaf := range jpath.EvalLeaves(root, path) {
			v, err := docjson.ToValue(leaf, def.Type, e.Lenient)
			if err != nil {
				// One malformed branch must not void the rest of a
				// multi-value extraction.
				continue
			}
			pairs = append(pairs, attr.Pair{Name: def.Name, Op: en.Op, Value: v})
		}
	}

	if len(pairs) == 0 {
		return Result{Outcome: OutcomeNoMatch}
	}
	return Result{Outcome: OutcomeUpdated, Pairs: pairs}
}
