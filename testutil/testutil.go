// Package testutil provides testing helpers for asserting typecheck
// diagnostics in user test suites.
package testutil

import (
	"errors"
	"testing"

	"github.com/gvvaughan/typecheck"
)

// Mismatch asserts that err is a typecheck error carrying exactly the
// wanted diagnostic message.
func Mismatch(t testing.TB, err error, want string) {
	t.Helper()
	e := requireError(t, err)
	if e.Message != want {
		t.Errorf("expected diagnostic %q, got %q", want, e.Message)
	}
}

// Code asserts that err is a typecheck error with the wanted code.
func Code(t testing.TB, err error, want typecheck.ErrorCode) {
	t.Helper()
	e := requireError(t, err)
	if e.Code != want {
		t.Errorf("expected code %s, got %s", want, e.Code)
	}
}

// Position asserts that err is a typecheck error attributed to the wanted
// 1-based argument or result position.
func Position(t testing.TB, err error, want int) {
	t.Helper()
	e := requireError(t, err)
	if e.Position != want {
		t.Errorf("expected position %d, got %d", want, e.Position)
	}
}

// Ok asserts that err is nil, failing the test with the diagnostic
// otherwise.
func Ok(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected check failure: %v", err)
	}
}

func requireError(t testing.TB, err error) *typecheck.Error {
	t.Helper()
	if err == nil {
		t.Fatal("expected a check failure, got nil")
	}
	var e *typecheck.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *typecheck.Error, got %T: %v", err, err)
	}
	return e
}
