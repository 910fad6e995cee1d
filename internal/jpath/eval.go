package jpath

import (
	"github.com/flarebyte/seshat-papyrus/internal/docjson"
)

// evalContext carries per-invocation evaluation state. It is owned by
// the invocation that created it and never shared.
type evalContext struct {
	root *docjson.Node
}

// EvalLeaves walks the compiled path against a document node and
// returns every matched node in document traversal order: object
// members in encounter order, array elements by index. Missing members
// and kind mismatches fail soft, producing no candidates rather than
// an error, so zero matches is a legitimate outcome.
func EvalLeaves(root *docjson.Node, p *Path) []*docjson.Node {
	ctx := evalContext{root: root}
	current := []*docjson.Node{ctx.root}
	for _, s := range p.steps {
		if len(current) == 0 {
			return nil
		}
		var next []*docjson.Node
		for _, n := range current {
			next = append(next, applyStep(n, s)...)
		}
		current = next
	}
	return current
}

func applyStep(n *docjson.Node, s step) []*docjson.Node {
	switch s.kind {
	case stepKey:
		return n.Member(s.key)

	case stepIndex:
		elems := n.Elems()
		i := s.index
		if i < 0 {
			i += len(elems)
		}
		if i < 0 || i >= len(elems) {
			return nil
		}
		return elems[i : i+1]

	case stepSlice:
		elems := n.Elems()
		lo, hi := 0, len(elems)
		if s.hasLo {
			lo = clampBound(s.lo, len(elems))
		}
		if s.hasHi {
			hi = clampBound(s.hi, len(elems))
		}
		if lo >= hi {
			return nil
		}
		return elems[lo:hi]

	case stepWildcard:
		return n.Children()

	case stepRecurse:
		return n.Descendants()
	}
	return nil
}

func clampBound(b, n int) int {
	if b < 0 {
		b += n
	}
	if b < 0 {
		return 0
	}
	if b > n {
		return n
	}
	return b
}
