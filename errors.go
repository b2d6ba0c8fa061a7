package typecheck

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrorCode represents a machine-readable error code.
type ErrorCode string

const (
	// CodeArgumentMismatch marks an actual argument that failed every
	// acceptable token at some position. Caller misuse.
	CodeArgumentMismatch ErrorCode = "argument_mismatch"

	// CodeResultMismatch marks a return value that failed its declared
	// typespec. A contract violation in the wrapped function itself.
	CodeResultMismatch ErrorCode = "result_mismatch"

	// CodeArityExcess marks more values supplied or returned than the
	// non-variadic declaration allows.
	CodeArityExcess ErrorCode = "arity_excess"

	// CodeMalformedDeclaration marks a declaration string that does not
	// parse. Raised at compile time, never per call.
	CodeMalformedDeclaration ErrorCode = "malformed_declaration"
)

// Error is the standard error envelope raised on any check failure.
// Message carries the full formatted diagnostic, already wrapped in the
// "bad argument #N to 'f' (...)" house envelope where applicable.
type Error struct {
	Code     ErrorCode      `json:"code"`
	Message  string         `json:"message"`
	Func     string         `json:"func,omitempty"`     // declaration name, when known
	Position int            `json:"position,omitempty"` // 1-based argument/result position
	Details  map[string]any `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// NewError creates a new check error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Errorf creates a new check error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithDetail returns a new Error with the key-value pair added to details.
func (e *Error) WithDetail(key string, value any) *Error {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	clone := *e
	clone.Details = details
	return &clone
}

// WithDetails returns a new Error with the provided map merged into details.
// For multiple details, this is more efficient than chaining WithDetail calls.
func (e *Error) WithDetails(details map[string]any) *Error {
	if len(details) == 0 {
		return e
	}
	merged := make(map[string]any, len(e.Details)+len(details))
	for k, v := range e.Details {
		merged[k] = v
	}
	for k, v := range details {
		merged[k] = v
	}
	clone := *e
	clone.Details = merged
	return &clone
}

// at returns a copy of the error bound to a declaration name and 1-based
// position.
func (e *Error) at(name string, position int) *Error {
	clone := *e
	clone.Func = name
	clone.Position = position
	return &clone
}

// foldValidationErrors converts validator field errors into an Error detail
// map keyed by field name.
func foldValidationErrors(valErrs validator.ValidationErrors) (map[string]any, []string) {
	details := make(map[string]any, len(valErrs))
	messages := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		msg := formatValidationError(ve)
		details[ve.Field()] = msg
		messages = append(messages, ve.Field()+": "+msg)
	}
	return details, messages
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "min":
		return fmt.Sprintf("must be at least %s", ve.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", ve.Param())
	case "eq":
		return fmt.Sprintf("must equal %s", ve.Param())
	case "ne":
		return fmt.Sprintf("must not equal %s", ve.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", ve.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", ve.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", ve.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", ve.Param())
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}
