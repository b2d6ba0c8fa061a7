package typecheck

import (
	"errors"
	"testing"
)

func TestNewError(t *testing.T) {
	err := NewError(CodeArgumentMismatch, "integer expected, got string")
	if err.Code != CodeArgumentMismatch {
		t.Errorf("expected code %s, got %s", CodeArgumentMismatch, err.Code)
	}
	if err.Error() != "integer expected, got string" {
		t.Errorf("expected the bare diagnostic, got %q", err.Error())
	}
}

func TestErrorf(t *testing.T) {
	err := Errorf(CodeMalformedDeclaration, "malformed declaration %q", "f(")
	if err.Message != `malformed declaration "f("` {
		t.Errorf("expected formatted message, got %q", err.Message)
	}
}

func TestErrorDetails(t *testing.T) {
	base := NewError(CodeArgumentMismatch, "boom")
	withOne := base.WithDetail("field", "Email")
	if len(base.Details) != 0 {
		t.Error("expected WithDetail not to mutate the receiver")
	}
	if withOne.Details["field"] != "Email" {
		t.Errorf("expected detail to be set, got %v", withOne.Details)
	}

	merged := withOne.WithDetails(map[string]any{"tag": "required", "field": "Name"})
	if merged.Details["tag"] != "required" || merged.Details["field"] != "Name" {
		t.Errorf("expected merged details, got %v", merged.Details)
	}
	if withOne.Details["field"] != "Email" {
		t.Error("expected WithDetails not to mutate the receiver")
	}
}

func TestErrorCarriesPosition(t *testing.T) {
	_, err := New().MustWrap("f(string)", echo)(42)
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if e.Func != "f" {
		t.Errorf("expected func f, got %q", e.Func)
	}
	if e.Position != 1 {
		t.Errorf("expected position 1, got %d", e.Position)
	}
}
