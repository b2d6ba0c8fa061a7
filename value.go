package typecheck

// Func is the dynamically-typed callable shape the checker wraps: any
// number of arguments in, any number of results out. Explicit nils in
// either list are values; the lists' lengths are their declared arities.
type Func func(args ...any) ([]any, error)

// Callable is the call capability. A value implementing it satisfies the
// "callable" and "functable" type tokens even though it is not a function,
// and is invocable through its call handler. Detection is structural, so
// any type with this method shape qualifies.
type Callable interface {
	Call(args ...any) ([]any, error)
}

// HasLength is the length capability. The classifier queries it ahead of
// the string-conversion capability and ahead of reflection when sizing
// table-like values.
type HasLength interface {
	Len() int
}

// HasStringConversion is the string-conversion capability, queried after
// the length capability.
type HasStringConversion interface {
	String() string
}
