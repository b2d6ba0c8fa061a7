package dyn

// Tuple is an argument or result list that remembers its declared arity.
// The declared length is distinct from any length derivable from trailing
// non-nil values: an explicit nil at position 3 of 3 is a present value,
// while position 4 is absent. Diagnostics depend on that distinction.
type Tuple struct {
	vals []any
	n    int
}

// NewTuple builds a tuple over the given values. The declared arity is the
// number of values supplied, explicit nils included.
func NewTuple(vals ...any) *Tuple {
	return &Tuple{vals: vals, n: len(vals)}
}

// Len returns the declared arity.
func (t *Tuple) Len() int { return t.n }

// At returns the value at zero-based position i. present is false beyond
// the declared arity; an explicit nil within it is present.
func (t *Tuple) At(i int) (v any, present bool) {
	if i < 0 || i >= t.n {
		return nil, false
	}
	return t.vals[i], true
}

// Shift returns a tuple without the first value, used to drop the implicit
// self argument of method declarations.
func (t *Tuple) Shift() *Tuple {
	if t.n == 0 {
		return t
	}
	return &Tuple{vals: t.vals[1:], n: t.n - 1}
}

// Values returns the underlying value slice at its declared arity.
func (t *Tuple) Values() []any { return t.vals }
