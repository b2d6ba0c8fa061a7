package checkcmd

import (
	"errors"
	"testing"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name         string
		spec         string
		value        string
		wantMismatch bool
		wantOther    bool
	}{
		{name: "match", spec: "table of int", value: "[1,2,3]"},
		{name: "mismatch", spec: "int", value: `"x"`, wantMismatch: true},
		{name: "alternation match", spec: "int|string", value: `"x"`},
		{name: "invalid json", spec: "int", value: "{", wantOther: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &Cmd{Spec: tt.spec, Value: tt.value}
			err := cmd.Run()
			switch {
			case tt.wantMismatch:
				if !errors.Is(err, ErrMismatch) {
					t.Errorf("expected ErrMismatch, got %v", err)
				}
			case tt.wantOther:
				if err == nil || errors.Is(err, ErrMismatch) {
					t.Errorf("expected a usage-level error, got %v", err)
				}
			default:
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}
