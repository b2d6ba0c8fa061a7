package typespec

import (
	"reflect"
	"testing"
)

func TestPermuteNoOptionals(t *testing.T) {
	perms := Permute([]string{"string", "int|nil", "table"})
	if len(perms) != 1 {
		t.Fatalf("expected 1 permutation, got %d", len(perms))
	}
	want := [][]string{{"string"}, {"int", "nil"}, {"table"}}
	if !reflect.DeepEqual(perms[0].Cells, want) {
		t.Errorf("expected cells %v, got %v", want, perms[0].Cells)
	}
	if perms[0].Dots {
		t.Error("expected no dots flag")
	}
}

func TestPermuteOptionalCount(t *testing.T) {
	tests := []struct {
		name      string
		positions []string
		want      int
	}{
		{"no optionals", []string{"string"}, 1},
		{"one optional", []string{"string", "[int]"}, 2},
		{"two optionals", []string{"string", "[int]", "[table]"}, 4},
		{"three optionals", []string{"[string]", "[int]", "[table]"}, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perms := Permute(tt.positions)
			if len(perms) != tt.want {
				t.Errorf("expected %d permutations, got %d", tt.want, len(perms))
			}
			// The first permutation always has every optional present.
			for _, p := range perms[1:] {
				if p.Len() > perms[0].Len() {
					t.Errorf("permutation %v longer than first %v", p.Cells, perms[0].Cells)
				}
			}
		})
	}
}

func TestPermuteOptionalShapes(t *testing.T) {
	perms := Permute([]string{"string", "[int]"})
	if len(perms) != 2 {
		t.Fatalf("expected 2 permutations, got %d", len(perms))
	}
	if !reflect.DeepEqual(perms[0].Cells, [][]string{{"string"}, {"int"}}) {
		t.Errorf("unexpected first permutation %v", perms[0].Cells)
	}
	if !reflect.DeepEqual(perms[1].Cells, [][]string{{"string"}}) {
		t.Errorf("unexpected second permutation %v", perms[1].Cells)
	}
}

func TestPermuteEllipsis(t *testing.T) {
	t.Run("bare tail", func(t *testing.T) {
		perms := Permute([]string{"string", "int..."})
		if len(perms) != 1 {
			t.Fatalf("expected 1 permutation, got %d", len(perms))
		}
		if !perms[0].Dots {
			t.Error("expected dots flag")
		}
		if !reflect.DeepEqual(perms[0].Cells, [][]string{{"string"}, {"int"}}) {
			t.Errorf("unexpected cells %v", perms[0].Cells)
		}
	})

	t.Run("bracketed tail normalizes", func(t *testing.T) {
		perms := Permute([]string{"string", "[int]..."})
		if len(perms) != 2 {
			t.Fatalf("expected 2 permutations, got %d", len(perms))
		}
		if !perms[0].Dots {
			t.Error("expected dots on the present half")
		}
		if perms[1].Dots {
			t.Error("expected no dots on the omitted half")
		}
	})

	t.Run("bare ellipsis means any", func(t *testing.T) {
		perms := Permute([]string{"..."})
		if len(perms) != 1 {
			t.Fatalf("expected 1 permutation, got %d", len(perms))
		}
		if !reflect.DeepEqual(perms[0].Cells, [][]string{{"any"}}) {
			t.Errorf("unexpected cells %v", perms[0].Cells)
		}
		if !perms[0].Dots {
			t.Error("expected dots flag")
		}
	})

	t.Run("nil-or variadic", func(t *testing.T) {
		perms := Permute([]string{"?any..."})
		if len(perms) != 1 {
			t.Fatalf("expected 1 permutation, got %d", len(perms))
		}
		if !reflect.DeepEqual(perms[0].Cells, [][]string{{"any", "nil"}}) {
			t.Errorf("unexpected cells %v", perms[0].Cells)
		}
	})
}

func TestSortByLen(t *testing.T) {
	perms := []Permutation{
		{Cells: [][]string{{"int"}}},
		{Cells: [][]string{{"string"}, {"int"}, {"table"}}},
		{Cells: [][]string{{"string"}, {"int"}}},
	}
	SortByLen(perms)
	lens := []int{perms[0].Len(), perms[1].Len(), perms[2].Len()}
	if !reflect.DeepEqual(lens, []int{3, 2, 1}) {
		t.Errorf("expected descending lengths, got %v", lens)
	}
}
