package typecheck

import (
	"errors"
	"testing"
)

// echo returns its arguments unchanged.
func echo(args ...any) ([]any, error) {
	return args, nil
}

// constantly builds a Func ignoring its arguments.
func constantly(results ...any) Func {
	return func(args ...any) ([]any, error) {
		return results, nil
	}
}

func wantMismatch(t *testing.T, err error, want string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %q, got nil", want)
	}
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestWrapOptionalArgument(t *testing.T) {
	c := New()
	f := c.MustWrap("f(string, [int]) => string", constantly("ok"))

	// Scenario: the optional second position may be omitted entirely.
	if _, err := f("x"); err != nil {
		t.Errorf("unexpected error with optional omitted: %v", err)
	}
	if _, err := f("x", 3); err != nil {
		t.Errorf("unexpected error with optional present: %v", err)
	}

	_, err := f("x", "y")
	wantMismatch(t, err, "bad argument #2 to 'f' (integer expected, got string)")
}

func TestWrapContainerElementAttribution(t *testing.T) {
	c := New()
	f := c.MustWrap("f(table of int)", echo)

	if _, err := f([]any{1, 2, 3}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	_, err := f([]any{1, 2, "x"})
	wantMismatch(t, err, "bad argument #1 to 'f' (integer expected, got string at index 3)")
}

func TestWrapVariadic(t *testing.T) {
	c := New()
	f := c.MustWrap("f(?any...)", echo)

	// Zero arguments succeed: the single position accepts nil for absence.
	if _, err := f(); err != nil {
		t.Errorf("unexpected error with zero arguments: %v", err)
	}
	if _, err := f("a", 1, nil, true); err != nil {
		t.Errorf("unexpected error with mixed tail: %v", err)
	}

	g := c.MustWrap("g(string, int...)", echo)
	if _, err := g("x", 1, 2, 3); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	_, err := g("x", 1, "y")
	wantMismatch(t, err, "bad argument #3 to 'g' (integer expected, got string)")
}

func TestWrapExcessArguments(t *testing.T) {
	c := New()
	f := c.MustWrap("f(string)", echo)

	_, err := f("x", "y", "z")
	wantMismatch(t, err, "bad argument #2 to 'f' (no more than 1 argument expected, got 3)")

	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if e.Code != CodeArityExcess {
		t.Errorf("expected code %s, got %s", CodeArityExcess, e.Code)
	}

	g := c.MustWrap("g(string, [int])", echo)
	_, err = g("x", 1, 2)
	wantMismatch(t, err, "bad argument #3 to 'g' (no more than 2 arguments expected, got 3)")

	h := c.MustWrap("h(string) => string", constantly("a", "b"))
	_, err = h("x")
	wantMismatch(t, err, "bad result #2 from 'h' (no more than 1 result expected, got 2)")
}

func TestWrapResultChecking(t *testing.T) {
	c := New()

	f := c.MustWrap("f(string) => string", constantly(42))
	_, err := f("x")
	wantMismatch(t, err, "bad result #1 from 'f' (string expected, got number)")

	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if e.Code != CodeResultMismatch {
		t.Errorf("expected code %s, got %s", CodeResultMismatch, e.Code)
	}

	g := c.MustWrap("g(string) => string, int", constantly("ok", 7))
	res, err := g("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 2 || res[0] != "ok" || res[1] != 7 {
		t.Errorf("expected results preserved, got %v", res)
	}
}

func TestWrapResultAlternatives(t *testing.T) {
	c := New()

	// Either a value, or the nil-plus-message failure shape.
	ok := c.MustWrap("f(string) => table or nil, string", constantly(map[string]int{"a": 1}))
	if _, err := ok("x"); err != nil {
		t.Errorf("unexpected error for first group: %v", err)
	}

	fail := c.MustWrap("g(string) => table or nil, string", constantly(nil, "not found"))
	if _, err := fail("x"); err != nil {
		t.Errorf("unexpected error for second group: %v", err)
	}

	bad := c.MustWrap("h(string) => table or nil, string", constantly(42))
	if _, err := bad("x"); err == nil {
		t.Error("expected a result mismatch, got nil")
	}
}

func TestWrapResultArityPreserved(t *testing.T) {
	c := New()
	f := c.MustWrap("f(string) => string, ?int", constantly("ok", nil))
	res, err := f("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 2 {
		t.Fatalf("expected trailing explicit nil preserved, got %v", res)
	}
	if res[1] != nil {
		t.Errorf("expected nil second result, got %v", res[1])
	}
}

func TestWrapMethodSkipsSelf(t *testing.T) {
	c := New()
	f := c.MustWrap("obj:method(string)", echo)

	// The first actual argument is self and is never checked.
	if _, err := f(map[string]int{}, "x"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	_, err := f(map[string]int{}, 42)
	wantMismatch(t, err, "bad argument #1 to 'obj:method' (string expected, got number)")
}

func TestWrapFurthestMismatchAttribution(t *testing.T) {
	c := New()
	f := c.MustWrap("f(string, [int], table)", echo)

	// Both interpretations fail; the one reaching position 3 is reported.
	_, err := f("x", 3, "y")
	wantMismatch(t, err, "bad argument #3 to 'f' (table expected, got string)")

	// With the optional omitted the second position must already be a table.
	if _, err := f("x", map[string]int{}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestWrapNilOrAlternation(t *testing.T) {
	c := New()
	f := c.MustWrap("f(string|number, ?table)", echo)

	// Token order within a position is irrelevant.
	if _, err := f("x", nil); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := f(3, map[string]int{}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	_, err := f(true, nil)
	wantMismatch(t, err, "bad argument #1 to 'f' (string or number expected, got boolean)")
}

func TestWrapPassesErrorThrough(t *testing.T) {
	sentinel := errors.New("backend down")
	c := New()
	f := c.MustWrap("f(string) => string", func(args ...any) ([]any, error) {
		return nil, sentinel
	})

	// The wrapped function's own error is not a contract violation; result
	// checking is skipped and the error propagates unchanged.
	_, err := f("x")
	if !errors.Is(err, sentinel) {
		t.Errorf("expected sentinel error, got %v", err)
	}
}

func TestWrapDisabled(t *testing.T) {
	c := New().WithDisabled()
	called := false
	f := c.MustWrap("f(string)", func(args ...any) ([]any, error) {
		called = true
		return []any{"ran"}, nil
	})

	// Mismatched arguments do not raise; the target runs regardless.
	res, err := f(42, true, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called || len(res) != 1 || res[0] != "ran" {
		t.Errorf("expected pass-through call, got %v (called=%v)", res, called)
	}
}

func TestWrapDisabledSwitchCapturedAtWrapTime(t *testing.T) {
	c := New()
	checked := c.MustWrap("f(string)", echo)

	c.WithDisabled()
	unchecked := c.MustWrap("g(string)", echo)

	// Toggling after wrapping has no effect on existing wrappers.
	c.WithEnabled()

	if _, err := checked(42); err == nil {
		t.Error("expected wrapper built while enabled to keep checking")
	}
	if _, err := unchecked(42); err != nil {
		t.Errorf("expected wrapper built while disabled to stay unchecked: %v", err)
	}
}

func TestMustWrapPanicsOnMalformedDeclaration(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for malformed declaration")
		}
	}()
	New().MustWrap("not a declaration", echo)
}

func TestWrapMalformedDeclaration(t *testing.T) {
	_, err := New().Wrap("f(string", echo)
	if err == nil {
		t.Fatal("expected error for malformed declaration")
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if e.Code != CodeMalformedDeclaration {
		t.Errorf("expected code %s, got %s", CodeMalformedDeclaration, e.Code)
	}
}

func TestWrapLiteralOptions(t *testing.T) {
	c := New()
	f := c.MustWrap(`f(string, :left|:right)`, echo)

	if _, err := f("x", ":left"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	_, err := f("x", ":center")
	wantMismatch(t, err, "bad argument #2 to 'f' (:left or :right expected, got :center)")
}

func TestDeclarationCheckArgs(t *testing.T) {
	d := New().MustCompile("f(string, int)")
	if err := d.CheckArgs("x", 3); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	err := d.CheckArgs("x", "y")
	wantMismatch(t, err, "bad argument #2 to 'f' (integer expected, got string)")

	if err := d.CheckResults("anything"); err != nil {
		t.Errorf("expected no-op result check without a result list, got %v", err)
	}
}
