// Package typecheck validates dynamically-typed function calls at run time.
//
// A declaration is a compact textual signature:
//
//	f, err := typecheck.Wrap("string.gsub(string, string, [int]) => string, int", gsub)
//
// The returned callable validates every call's arguments against the
// declaration, and the results against the part after "=>", raising errors
// in the fixed house format:
//
//	bad argument #3 to 'string.gsub' (integer expected, got string)
//
// Typespec grammar, per position:
//
//   - alternatives separated by "|" or the word "or": "string|number"
//   - "?" prefix accepts nil as well: "?int"
//   - "[...]" wrapping marks the position itself optional: "[int]"
//   - "..." on the final position repeats its type for all further values
//   - "container of element" checks every element too: "table of int"
//   - ":literal" matches exactly that string, for symbolic options
//
// Checking is disabled globally with Disable; wrappers built while
// disabled are the target functions themselves, at zero overhead. The
// switch is read when a function is wrapped, not per call.
//
// Check validates a single value against a single typespec without
// wrapping anything. New builds a configurable [Checker] instance when the
// package default does not fit.
package typecheck
