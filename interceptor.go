package typecheck

// Invoker represents the next stage of a checked call. It is passed to
// [Interceptor] functions to invoke the next interceptor or the wrapped
// function itself.
type Invoker func(args []any) ([]any, error)

// CallInfo describes one checked call. For method declarations the
// implicit self argument is excluded from both NumArgs and the argument
// slice interceptors receive; the wrapped function still gets it.
type CallInfo struct {
	Name    string // declaration name
	Method  bool   // declared with the colon form
	NumArgs int    // checked argument count (implicit self excluded)
}

// Interceptor is a hook that wraps execution of a wrapped function.
//
//	func logging(info *typecheck.CallInfo, args []any, next typecheck.Invoker) ([]any, error) {
//	    start := time.Now()
//	    res, err := next(args)
//	    log.Printf("%s took %v", info.Name, time.Since(start))
//	    return res, err
//	}
//
// The next parameter is the next stage in the chain. Interceptors can:
//   - Inspect/modify the arguments before calling next
//   - Inspect/modify the results after calling next
//   - Short-circuit by returning an error without calling next
//
// Interceptors run after argument validation and before result validation,
// and only on the checked path: a disabled checker builds bare
// pass-throughs that never reach them.
type Interceptor func(info *CallInfo, args []any, next Invoker) ([]any, error)

// chainInterceptors combines multiple interceptors into a single one.
// The first interceptor in the slice is the outer-most one (runs first).
func chainInterceptors(interceptors []Interceptor) Interceptor {
	if len(interceptors) == 0 {
		return nil
	}
	if len(interceptors) == 1 {
		return interceptors[0]
	}
	return func(info *CallInfo, args []any, next Invoker) ([]any, error) {
		// Chain: i[0] -> i[1] -> ... -> next
		chain := next
		for i := len(interceptors) - 1; i >= 1; i-- {
			current := interceptors[i]
			tail := chain
			chain = func(args []any) ([]any, error) {
				return current(info, args, tail)
			}
		}
		return interceptors[0](info, args, chain)
	}
}
