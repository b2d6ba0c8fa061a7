package typecheck

import (
	"fmt"
	"strings"

	"github.com/gvvaughan/typecheck/internal/dyn"
	"github.com/gvvaughan/typecheck/internal/typespec"
)

// describeMismatch renders the house-style diagnostic for one failed match:
// "<expected>, got <actual>". key is the container element key when an
// element rather than the whole position mismatched; it switches the
// expected rendering to element context and tags the actual description
// with " at index <key>".
func describeMismatch(tokens []string, v any, present bool, key any) string {
	indexed := key != nil
	actual := actualString(tokens, v, present)
	if indexed {
		actual += fmt.Sprintf(" at index %v", key)
	}
	return expectedString(tokens, indexed, !present) + ", got " + actual
}

// actualString names the actual value for diagnostics.
func actualString(tokens []string, v any, present bool) string {
	if !present {
		return "no value"
	}
	if v == nil || dyn.Kind(v) == "nil" {
		return "nil"
	}
	if dyn.IsCallable(v) && !dyn.IsFunc(v) {
		return "functable"
	}
	if expectsToken(tokens, "int", "integer") && dyn.IsNumber(v) && !dyn.IsIntegral(v) {
		sub, _ := dyn.NumberKind(v)
		return sub + " has no integer representation"
	}
	if expectsLiteral(tokens) {
		if s, ok := v.(string); ok {
			return s
		}
	}
	if dyn.IsTable(v) {
		if n, ok := dyn.Length(v); ok && n == 0 {
			if len(tokens) == 1 && tokens[0] == "#list" {
				return "empty list"
			}
			return "empty " + dyn.Kind(v)
		}
	}
	if dyn.IsRecord(v) {
		// Record types name themselves through their string conversion
		// when they carry one.
		if s, ok := dyn.ToString(v); ok {
			return s
		}
	}
	return dyn.Kind(v)
}

// expectedString joins the display forms of the expected tokens with commas
// and a final " or ", suffixed " expected". In element context composite
// tokens reduce to their element type; at position level they keep the
// whole pluralized phrase. When the value is simply missing, the phrase
// "any value or nil expected" collapses to "argument expected".
func expectedString(tokens []string, indexed, missing bool) string {
	seen := make(map[string]bool, len(tokens))
	display := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		d := displayToken(tok, indexed)
		if seen[d] {
			continue
		}
		seen[d] = true
		display = append(display, d)
	}
	s := joinOr(display) + " expected"
	if missing && s == "any value or nil expected" {
		s = "argument expected"
	}
	return s
}

// displayToken renders one token in its verbose display form.
func displayToken(tok string, indexed bool) string {
	if container, element, ok := typespec.Composite(tok); ok {
		if indexed {
			return displayToken(element, false)
		}
		return displayToken(container, false) + " of " + pluralize(displayToken(element, false))
	}
	switch tok {
	case "func", "function":
		return "function"
	case "bool", "boolean":
		return "boolean"
	case "int", "integer":
		return "integer"
	case "any":
		return "any value"
	case "file":
		return "FILE handle"
	case "#table":
		return "non-empty table"
	case "#list":
		return "non-empty list"
	}
	return tok
}

func pluralize(word string) string {
	if strings.HasSuffix(word, "s") {
		return word
	}
	return word + "s"
}

func joinOr(words []string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	}
	return strings.Join(words[:len(words)-1], ", ") + " or " + words[len(words)-1]
}

func expectsToken(tokens []string, names ...string) bool {
	for _, tok := range tokens {
		for _, name := range names {
			if tok == name {
				return true
			}
		}
	}
	return false
}

func expectsLiteral(tokens []string) bool {
	for _, tok := range tokens {
		if strings.HasPrefix(tok, literalSentinel) {
			return true
		}
	}
	return false
}

// badValue wraps a position diagnostic in the fixed error envelope.
// kind is "argument" or "result".
func badValue(code ErrorCode, kind, name string, pos int, desc string) *Error {
	preposition := "to"
	if kind == "result" {
		preposition = "from"
	}
	err := Errorf(code, "bad %s #%d %s '%s' (%s)", kind, pos, preposition, name, desc)
	return err.at(name, pos)
}

// excessDescription names an over-long value list: "no more than K
// argument(s) expected, got N".
func excessDescription(kind string, max, got int) string {
	plural := "s"
	if max == 1 {
		plural = ""
	}
	return fmt.Sprintf("no more than %d %s%s expected, got %d", max, kind, plural, got)
}
