package typecheck

import (
	"errors"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/gvvaughan/typecheck/internal/typespec"
)

var validate = validator.New()

// Checker is a configured checking instance: an enable switch, a logger, an
// interceptor chain, a compile cache, and a registry of every declaration
// wrapped through it. The zero value is not usable; call New. A package
// default exists for the common case of one process-wide checker.
type Checker struct {
	mu              sync.RWMutex
	logger          *slog.Logger
	disabled        bool
	validateStructs bool
	interceptors    []Interceptor
	decls           map[string]*Declaration
	cache           map[string]*Declaration
}

// New creates a Checker with checking enabled and no logger.
func New() *Checker {
	return &Checker{
		decls: make(map[string]*Declaration),
		cache: make(map[string]*Declaration),
	}
}

// WithLogger sets a custom logger for the checker.
// If not set, slog.Default() will be used.
func (c *Checker) WithLogger(logger *slog.Logger) *Checker {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = logger
	return c
}

// WithDisabled turns checking off. Wrappers built while the checker is
// disabled are the target functions themselves, with no parsing, no
// permutation computation, and no per-call cost.
func (c *Checker) WithDisabled() *Checker {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disabled = true
	return c
}

// WithEnabled turns checking back on for wrappers built afterwards.
// Already-built wrappers keep the switch value captured when they were
// built.
func (c *Checker) WithEnabled() *Checker {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disabled = false
	return c
}

// Enabled reports whether wrappers built now would check.
func (c *Checker) Enabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.disabled
}

// WithStructValidation opts into the deep struct pass: argument positions
// accepting "object" additionally run record values through the struct
// validator, folding field errors into the error details.
func (c *Checker) WithStructValidation() *Checker {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.validateStructs = true
	return c
}

// WithInterceptor adds an interceptor to wrappers built afterwards.
// Interceptors execute in the order added, outermost first, and only on the
// checked path: a disabled checker builds bare pass-throughs.
func (c *Checker) WithInterceptor(i Interceptor) *Checker {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.interceptors = append(c.interceptors, i)
	return c
}

// checkerConfig is the immutable snapshot a wrapper captures at build time.
type checkerConfig struct {
	logger          *slog.Logger
	disabled        bool
	validateStructs bool
	interceptors    []Interceptor
}

func (c *Checker) snapshot() checkerConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	interceptors := make([]Interceptor, len(c.interceptors))
	copy(interceptors, c.interceptors)
	return checkerConfig{
		logger:          c.logger,
		disabled:        c.disabled,
		validateStructs: c.validateStructs,
		interceptors:    interceptors,
	}
}

// register records a wrapped declaration by name. Wrapping a second
// declaration under a name already in use logs a warning; the newer one
// replaces the older in the registry.
func (c *Checker) register(d *Declaration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, exists := c.decls[d.name]; exists && prev != d {
		logger := c.logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("duplicate declaration registration",
			slog.String("func", d.name),
			slog.String("declaration", d.source),
			slog.String("previous", prev.source))
	}
	c.decls[d.name] = d
}

// Declarations returns the names of every declaration wrapped through the
// checker, sorted.
func (c *Checker) Declarations() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.decls))
	for name := range c.decls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the registered declaration for name.
func (c *Checker) Lookup(name string) (*Declaration, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.decls[name]
	return d, ok
}

// Compile parses a declaration string and precomputes its permutation
// tables. Compiled declarations are memoized by source string, so repeated
// wrapping of the same declaration shares one table.
func (c *Checker) Compile(decl string) (*Declaration, error) {
	c.mu.RLock()
	cached, ok := c.cache[decl]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	d, err := compileDeclaration(decl)
	if err != nil {
		return nil, err
	}
	d.checker = c

	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.cache[decl]; ok {
		return cached, nil
	}
	c.cache[decl] = d
	return d, nil
}

// MustCompile is like Compile but panics on a malformed declaration.
func (c *Checker) MustCompile(decl string) *Declaration {
	d, err := c.Compile(decl)
	if err != nil {
		panic("typecheck: " + err.Error())
	}
	return d
}

// Wrap compiles decl and wraps fn in one step. While the checker is
// disabled it returns fn unchanged without even parsing the declaration.
func (c *Checker) Wrap(decl string, fn Func) (Func, error) {
	if !c.Enabled() {
		return fn, nil
	}
	d, err := c.Compile(decl)
	if err != nil {
		return nil, err
	}
	return d.Wrap(fn), nil
}

// MustWrap is like Wrap but panics on a malformed declaration.
func (c *Checker) MustWrap(decl string, fn Func) Func {
	wrapped, err := c.Wrap(decl, fn)
	if err != nil {
		panic("typecheck: " + err.Error())
	}
	return wrapped
}

// Check validates one value against one typespec, independent of any
// wrapped callable. It returns nil on a match and an *Error carrying the
// house-style diagnostic otherwise.
func (c *Checker) Check(spec string, value any) error {
	tokens := typespec.Split(spec)
	if matchesAny(tokens, value, true) {
		return nil
	}
	if key, element, ok := attributeElement(tokens, value); ok {
		return NewError(CodeArgumentMismatch, describeMismatch(tokens, element, true, key))
	}
	return NewError(CodeArgumentMismatch, describeMismatch(tokens, value, true, nil))
}

// The package-level default checker.
var defaultChecker = New()

// Default returns the package-level checker used by the top-level
// functions.
func Default() *Checker { return defaultChecker }

// Enable turns checking on for wrappers subsequently built on the default
// checker.
func Enable() { defaultChecker.WithEnabled() }

// Disable turns checking off for wrappers subsequently built on the
// default checker. Already-built wrappers are unaffected.
func Disable() { defaultChecker.WithDisabled() }

// Enabled reports the default checker's switch.
func Enabled() bool { return defaultChecker.Enabled() }

// Compile parses a declaration on the default checker.
func Compile(decl string) (*Declaration, error) { return defaultChecker.Compile(decl) }

// MustCompile is like Compile but panics on a malformed declaration.
func MustCompile(decl string) *Declaration { return defaultChecker.MustCompile(decl) }

// Wrap compiles decl on the default checker and wraps fn.
func Wrap(decl string, fn Func) (Func, error) { return defaultChecker.Wrap(decl, fn) }

// MustWrap is like Wrap but panics on a malformed declaration.
func MustWrap(decl string, fn Func) Func { return defaultChecker.MustWrap(decl, fn) }

// Check validates one value against one typespec on the default checker.
func Check(spec string, value any) error { return defaultChecker.Check(spec, value) }

// asValidationErrors unwraps a validator error list.
func asValidationErrors(err error) (validator.ValidationErrors, bool) {
	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		return valErrs, true
	}
	return nil, false
}

func joinSemicolons(messages []string) string {
	return strings.Join(messages, "; ")
}
