// Package typespec compiles textual call signatures.
//
// A typespec is a list of alternative type tokens for one value position,
// written "string|number" or "string or number". A declaration is a function
// name, a parenthesised list of positional typespecs, and an optional
// "=> ..." result list. This package turns those strings into normalized
// token sets and positional permutations; it knows nothing about actual
// runtime values.
package typespec

import (
	"regexp"
	"strings"
)

// orWord matches the word "or" used as an alternation separator.
var orWord = regexp.MustCompile(`\s+or\s+`)

// Split splits a typespec string into its normalized token list.
//
// Alternatives are separated by "|" or by the word "or"; surrounding
// whitespace is trimmed. A leading "?" on any token is stripped and instead
// schedules a single "nil" token appended at the end. Tokens keep first-seen
// order and duplicates collapse, so Split is idempotent over its own output
// rejoined with "|".
func Split(spec string) []string {
	parts := strings.Split(orWord.ReplaceAllString(spec, "|"), "|")
	seen := make(map[string]bool, len(parts))
	out := make([]string, 0, len(parts))
	wantNil := false
	for _, tok := range parts {
		tok = strings.TrimSpace(tok)
		if strings.HasPrefix(tok, "?") {
			wantNil = true
			tok = strings.TrimSpace(strings.TrimPrefix(tok, "?"))
		}
		if tok == "" || seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	if wantNil && !seen["nil"] {
		out = append(out, "nil")
	}
	return out
}

// Normalize deduplicates an already-split token list, preserving first-seen
// order. It is the pass-through half of Split for callers that hold token
// lists rather than strings.
func Normalize(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" || seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out
}

// Composite splits a "container of element" token. ok is false when the
// token is not a composite form.
func Composite(tok string) (container, element string, ok bool) {
	i := strings.Index(tok, " of ")
	if i < 0 {
		return "", "", false
	}
	container = strings.TrimSpace(tok[:i])
	element = strings.TrimSpace(tok[i+len(" of "):])
	if container == "" || element == "" {
		return "", "", false
	}
	return container, element, true
}
