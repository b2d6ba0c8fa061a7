package typecheck

import (
	"github.com/gvvaughan/typecheck/internal/dyn"
	"github.com/gvvaughan/typecheck/internal/typespec"
)

// matchOutcome records how far one permutation walk got. index is the
// zero-based position of the first failure; excess marks a walk that
// matched every declared position but had values left over with no
// variadic tail to absorb them.
type matchOutcome struct {
	ok     bool
	perm   *typespec.Permutation
	index  int
	excess bool
}

// matchPerms walks the permutations longest-first and stops on the first
// full match. When none matches, the failure is attributed to the
// permutation that got furthest before failing; ties keep the earlier
// permutation, which is the longer interpretation.
func matchPerms(perms []typespec.Permutation, t *dyn.Tuple) matchOutcome {
	best := matchOutcome{index: -1}
	for i := range perms {
		p := &perms[i]
		ok, idx, excess := matchPerm(p, t)
		if ok {
			return matchOutcome{ok: true, perm: p}
		}
		if idx > best.index {
			best = matchOutcome{perm: p, index: idx, excess: excess}
		}
	}
	return best
}

func matchPerm(p *typespec.Permutation, t *dyn.Tuple) (ok bool, failIdx int, excess bool) {
	for i, cell := range p.Cells {
		v, present := t.At(i)
		if !matchesAny(cell, v, present) {
			return false, i, false
		}
	}
	if n := t.Len(); n > len(p.Cells) {
		if !p.Dots {
			return false, len(p.Cells), true
		}
		tail := p.Cells[len(p.Cells)-1]
		for i := len(p.Cells); i < n; i++ {
			v, _ := t.At(i)
			if !matchesAny(tail, v, true) {
				return false, i, false
			}
		}
	}
	return true, 0, false
}

// attributeElement re-checks the elements of a container value when the
// failing position accepts a composite token. The first element failing
// every applicable element type is reported with its key; element failures
// take priority over the container-level message.
func attributeElement(tokens []string, v any) (key, element any, ok bool) {
	var elementTypes []string
	for _, tok := range tokens {
		container, elem, composite := typespec.Composite(tok)
		if composite && classify(container, v, true) {
			elementTypes = append(elementTypes, elem)
		}
	}
	if len(elementTypes) == 0 {
		return nil, nil, false
	}
	for _, el := range dyn.Elements(v) {
		if !matchesAny(elementTypes, el.Value, true) {
			return el.Key, el.Value, true
		}
	}
	return nil, nil, false
}

// checkTuple validates a value list against the permutation table, returning
// the matched permutation or the best-attributed error. kind is "argument"
// or "result" and selects both the error code and the envelope wording.
func checkTuple(name, kind string, perms []typespec.Permutation, t *dyn.Tuple) (*typespec.Permutation, *Error) {
	out := matchPerms(perms, t)
	if out.ok {
		return out.perm, nil
	}

	if out.excess {
		max := perms[0].Len()
		desc := excessDescription(kind, max, t.Len())
		return nil, badValue(CodeArityExcess, kind, name, max+1, desc)
	}

	code := CodeArgumentMismatch
	if kind == "result" {
		code = CodeResultMismatch
	}

	cellIdx := out.index
	if cellIdx >= out.perm.Len() {
		cellIdx = out.perm.Len() - 1
	}
	cell := out.perm.Cells[cellIdx]
	v, present := t.At(out.index)
	if present {
		if key, element, ok := attributeElement(cell, v); ok {
			return nil, badValue(code, kind, name, out.index+1, describeMismatch(cell, element, true, key))
		}
	}
	return nil, badValue(code, kind, name, out.index+1, describeMismatch(cell, v, present, nil))
}
