package typespec

import (
	"fmt"
	"strings"
)

// Decl is a parsed declaration string, before permutation expansion.
type Decl struct {
	Name    string
	Method  bool       // colon form: the first actual argument is implicit self
	Args    []string   // raw positional specs, bracketing intact
	Results [][]string // alternative result groups, each a list of raw positional specs
}

// Parse splits a declaration of the form
//
//	name(typespec, typespec, ...) [=> typespec, ... [or typespec, ...]*]
//
// into its name, argument positions, and result groups. A ":" instead of "."
// before the final name segment marks a method declaration. Parse fails on
// structural problems only; individual type tokens are never rejected here.
func Parse(decl string) (*Decl, error) {
	open := strings.Index(decl, "(")
	if open < 0 {
		return nil, fmt.Errorf("missing '(' in declaration %q", decl)
	}
	end := strings.Index(decl[open:], ")")
	if end < 0 {
		return nil, fmt.Errorf("missing ')' in declaration %q", decl)
	}
	end += open

	name := strings.TrimSpace(decl[:open])
	if name == "" {
		return nil, fmt.Errorf("missing function name in declaration %q", decl)
	}
	if strings.ContainsAny(name, " \t") {
		return nil, fmt.Errorf("malformed function name %q", name)
	}
	if strings.Count(name, ":") > 1 {
		return nil, fmt.Errorf("malformed function name %q", name)
	}

	d := &Decl{
		Name:   name,
		Method: strings.Contains(name, ":"),
	}

	args, err := splitPositions(decl[open+1 : end])
	if err != nil {
		return nil, fmt.Errorf("argument list of %q: %w", name, err)
	}
	d.Args = args
	if err := checkEllipsis(d.Args); err != nil {
		return nil, fmt.Errorf("argument list of %q: %w", name, err)
	}

	tail := strings.TrimSpace(decl[end+1:])
	if tail == "" {
		return d, nil
	}
	results, ok := strings.CutPrefix(tail, "=>")
	if !ok {
		return nil, fmt.Errorf("unexpected %q after ')' in declaration of %q", tail, name)
	}
	for _, group := range orWord.Split(results, -1) {
		group = strings.TrimSpace(group)
		if group == "" {
			continue
		}
		positions, err := splitPositions(group)
		if err != nil {
			return nil, fmt.Errorf("result list of %q: %w", name, err)
		}
		if len(positions) == 0 {
			return nil, fmt.Errorf("result list of %q: empty result group", name)
		}
		if err := checkEllipsis(positions); err != nil {
			return nil, fmt.Errorf("result list of %q: %w", name, err)
		}
		d.Results = append(d.Results, positions)
	}
	if len(d.Results) == 0 {
		return nil, fmt.Errorf("result list of %q: no result positions after '=>'", name)
	}
	return d, nil
}

// splitPositions splits a comma-separated position list. An entirely empty
// list is allowed ("f()"); an empty position between commas is not.
func splitPositions(list string) ([]string, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	parts := strings.Split(list, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("empty position in %q", list)
		}
		out = append(out, p)
	}
	return out, nil
}

// checkEllipsis rejects "..." anywhere but the final position.
func checkEllipsis(positions []string) error {
	for i, pos := range positions {
		if i < len(positions)-1 && strings.Contains(pos, "...") {
			return fmt.Errorf("ellipsis on non-final position %q", pos)
		}
	}
	return nil
}
