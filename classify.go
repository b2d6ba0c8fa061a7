package typecheck

import (
	"strings"

	"github.com/gvvaughan/typecheck/internal/dyn"
	"github.com/gvvaughan/typecheck/internal/typespec"
)

// classify reports whether one concrete value matches one type token.
// present is false for values beyond the declared arity of a call; an
// explicit nil within it is a present value. classify is a pure predicate
// and has no failure mode: an unrecognized token simply never matches
// unless it names the value's own type.
func classify(tok string, v any, present bool) bool {
	if container, element, ok := typespec.Composite(tok); ok {
		if !classify(container, v, present) {
			return false
		}
		for _, el := range dyn.Elements(v) {
			if !classify(element, el.Value, true) {
				return false
			}
		}
		return true
	}

	switch tok {
	case "nil":
		return !present || v == nil || dyn.Kind(v) == "nil"
	case "any":
		// Explicit nil is a value; only beyond-arity absence fails.
		return present
	case "boolean", "bool":
		return present && dyn.Kind(v) == "boolean"
	case "number":
		return present && dyn.IsNumber(v)
	case "int", "integer":
		return present && dyn.IsIntegral(v)
	case "string":
		return present && v != nil && dyn.Kind(v) == "string"
	case "function", "func":
		return present && dyn.IsFunc(v)
	case "callable", "functable":
		return present && dyn.IsCallable(v)
	case "file":
		return present && dyn.IsFile(v)
	case "table":
		return present && dyn.IsTable(v)
	case "list":
		return present && dyn.IsList(v)
	case "#list":
		if !present || !dyn.IsList(v) {
			return false
		}
		n, _ := dyn.Length(v)
		return n > 0
	case "#table":
		if !present || !dyn.IsTable(v) {
			return false
		}
		n, _ := dyn.Length(v)
		return n > 0
	case "object":
		// Plain kind matches take priority: a value whose apparent type
		// is literally "table" is not an object.
		return present && dyn.IsRecord(v) && dyn.Kind(v) != "table"
	}

	if strings.HasPrefix(tok, literalSentinel) {
		s, ok := v.(string)
		return present && ok && s == tok
	}

	// A named record type matches its own name.
	return present && v != nil && dyn.Kind(v) == tok
}

// literalSentinel prefixes exact-match string tokens such as ":eol".
const literalSentinel = ":"

// matchesAny reports whether the value satisfies at least one token of the
// typespec.
func matchesAny(tokens []string, v any, present bool) bool {
	for _, tok := range tokens {
		if classify(tok, v, present) {
			return true
		}
	}
	return false
}
