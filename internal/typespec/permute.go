package typespec

import (
	"sort"
	"strings"
)

// Permutation is one concrete shape of a call: one token set per position,
// for one particular combination of optional positions being present. Dots
// marks that the final cell also covers any number of trailing values.
type Permutation struct {
	Cells [][]string
	Dots  bool
}

// Len returns the number of fixed positions in the permutation.
func (p Permutation) Len() int { return len(p.Cells) }

func (p Permutation) with(cell []string, dots bool) Permutation {
	cells := make([][]string, len(p.Cells), len(p.Cells)+1)
	copy(cells, p.Cells)
	return Permutation{Cells: append(cells, cell), Dots: p.Dots || dots}
}

// Permute expands an ordered list of raw position strings into every
// positional permutation arising from optional positions being present or
// absent.
//
// A position wrapped in "[...]" is optional. The final position may carry a
// "..." suffix, either bare ("int...") or outside the bracket ("[int]...",
// normalized to "[int...]" first); the ellipsis marks a variadic tail. A
// bare "..." position is shorthand for "any...".
//
// For k optional positions the result has up to 2^k entries. The first
// entry always represents "all optionals present" and therefore has maximal
// length: when a position is optional the present half of the expansion is
// emitted ahead of the omitted half.
func Permute(positions []string) []Permutation {
	perms := []Permutation{{}}
	for i, pos := range positions {
		pos = strings.TrimSpace(pos)
		if strings.HasSuffix(pos, "]...") {
			pos = pos[:len(pos)-len("]...")] + "...]"
		}
		optional := strings.HasPrefix(pos, "[") && strings.HasSuffix(pos, "]")
		if optional {
			pos = strings.TrimSpace(pos[1 : len(pos)-1])
		}
		dots := false
		if strings.HasSuffix(pos, "...") {
			dots = i == len(positions)-1
			pos = strings.TrimSpace(strings.TrimSuffix(pos, "..."))
			if pos == "" {
				pos = "any"
			}
		}
		cell := Split(pos)
		if optional {
			present := make([]Permutation, 0, len(perms)*2)
			for _, p := range perms {
				present = append(present, p.with(cell, dots))
			}
			perms = append(present, perms...)
		} else {
			for j := range perms {
				perms[j] = perms[j].with(cell, dots)
			}
		}
	}
	return perms
}

// SortByLen re-establishes the longest-first ordering the matcher relies on.
// The sort is stable so permutations of equal length keep construction order.
func SortByLen(perms []Permutation) {
	sort.SliceStable(perms, func(i, j int) bool {
		return perms[i].Len() > perms[j].Len()
	})
}
