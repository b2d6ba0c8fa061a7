package typecheck

import (
	"github.com/gvvaughan/typecheck/internal/dyn"
	"github.com/gvvaughan/typecheck/internal/typespec"
)

// Declaration is a compiled call signature: the function name plus the
// precomputed permutation tables for its arguments and, when declared, its
// results. Declarations are immutable after compilation; a wrapped function
// only ever reads them, so one Declaration may safely back concurrent calls.
type Declaration struct {
	name       string
	method     bool
	source     string
	args       []typespec.Permutation
	results    []typespec.Permutation
	hasResults bool
	checker    *Checker
}

// compileDeclaration parses a declaration string and expands its permutation
// tables. Failures are configuration-time errors: they indicate a bug in the
// declaring code, not bad runtime input.
func compileDeclaration(decl string) (*Declaration, error) {
	parsed, err := typespec.Parse(decl)
	if err != nil {
		return nil, Errorf(CodeMalformedDeclaration, "malformed declaration %q: %v", decl, err)
	}

	d := &Declaration{
		name:   parsed.Name,
		method: parsed.Method,
		source: decl,
	}

	d.args = typespec.Permute(parsed.Args)
	typespec.SortByLen(d.args)

	if len(parsed.Results) > 0 {
		d.hasResults = true
		for _, group := range parsed.Results {
			d.results = append(d.results, typespec.Permute(group)...)
		}
		typespec.SortByLen(d.results)
	}
	return d, nil
}

// Name returns the declared function name, colon or dot segments included.
func (d *Declaration) Name() string { return d.name }

// Source returns the declaration string the Declaration was compiled from.
func (d *Declaration) Source() string { return d.source }

// IsMethod reports whether the declaration uses the colon form, marking the
// first actual argument as implicit self, excluded from checking.
func (d *Declaration) IsMethod() bool { return d.method }

// CheckArgs validates an argument list against the declaration without
// invoking anything. The method-form self argument must already be absent
// from args.
func (d *Declaration) CheckArgs(args ...any) error {
	_, err := checkTuple(d.name, "argument", d.args, dyn.NewTuple(args...))
	if err != nil {
		return err
	}
	return nil
}

// CheckResults validates a result list against the declaration. It is a
// no-op for declarations without a result list.
func (d *Declaration) CheckResults(results ...any) error {
	if !d.hasResults {
		return nil
	}
	_, err := checkTuple(d.name, "result", d.results, dyn.NewTuple(results...))
	if err != nil {
		return err
	}
	return nil
}

// Wrap returns a callable that validates every call against the declaration
// before and after invoking fn. The owning checker's enable switch is read
// here, once: a wrapper built while checking is disabled is fn itself, and
// re-enabling later does not retrofit it.
func (d *Declaration) Wrap(fn Func) Func {
	c := d.checker
	if c == nil {
		c = defaultChecker
	}
	cfg := c.snapshot()
	if cfg.disabled {
		return fn
	}
	c.register(d)
	chain := chainInterceptors(cfg.interceptors)

	return func(args ...any) ([]any, error) {
		t := dyn.NewTuple(args...)
		if d.method {
			t = t.Shift()
		}

		perm, cerr := checkTuple(d.name, "argument", d.args, t)
		if cerr != nil {
			return nil, cerr
		}
		if cfg.validateStructs {
			if verr := validateObjectArgs(d.name, perm, t); verr != nil {
				return nil, verr
			}
		}

		// Interceptors see the checked argument list, implicit self
		// excluded; self is reattached when the target is finally invoked.
		invoke := func(in []any) ([]any, error) {
			if d.method && len(args) > 0 {
				in = append([]any{args[0]}, in...)
			}
			return fn(in...)
		}
		var res []any
		var err error
		if chain != nil {
			info := &CallInfo{Name: d.name, Method: d.method, NumArgs: t.Len()}
			res, err = chain(info, t.Values(), invoke)
		} else {
			res, err = fn(args...)
		}
		if err != nil {
			return res, err
		}

		if d.hasResults {
			if _, cerr := checkTuple(d.name, "result", d.results, dyn.NewTuple(res...)); cerr != nil {
				return nil, cerr
			}
		}
		return res, nil
	}
}

// validateObjectArgs runs the opt-in deep struct pass: every matched
// position that accepts "object" and holds a record value is run through
// the struct validator, with field errors folded into the error details.
func validateObjectArgs(name string, perm *typespec.Permutation, t *dyn.Tuple) *Error {
	for i, cell := range perm.Cells {
		if !expectsToken(cell, "object") {
			continue
		}
		v, present := t.At(i)
		if !present || !dyn.IsRecord(v) {
			continue
		}
		err := validate.Struct(v)
		if err == nil {
			continue
		}
		if valErrs, ok := asValidationErrors(err); ok {
			details, messages := foldValidationErrors(valErrs)
			e := badValue(CodeArgumentMismatch, "argument", name, i+1, joinSemicolons(messages))
			return e.WithDetails(details)
		}
		return badValue(CodeArgumentMismatch, "argument", name, i+1, err.Error())
	}
	return nil
}
