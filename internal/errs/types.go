package errs

import (
	"errors"
	"strings"
)

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "email", "error": "must be a valid email address" }
type FieldError struct {
	// Field is the field name/key the error relates to (e.g. "email").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// Kind classifies an Error. Callers switch on the kind instead of on
// driver-specific error values.
type Kind string

const (
	KindInvalid      Kind = "invalid"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindUnauthorized Kind = "unauthorized"
	KindInternal     Kind = "internal"
)

// Error is the main custom error type of the application.
//
// Fields:
//   - Kind: broad category (invalid, not_found, conflict, ...).
//   - Code: machine-friendly error code (e.g. "USER_ALREADY_EXISTS").
//   - Message: human-friendly message, safe to show to a user.
//   - Override: the message is specific enough to be shown as-is.
//   - Errors: list of per-field errors (validation).
type Error struct {
	Kind     Kind   `json:"kind"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Override bool   `json:"override"`

	// Errors holds field-level validation errors.
	Errors []FieldError `json:"errors,omitempty"`
}

// Error makes *Error satisfy the built-in `error` interface.
func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is an *Error of the same kind.
//
// A target with an empty Kind matches any *Error, so
//
//	errors.Is(err, &errs.Error{})
//
// answers "is this one of ours at all".
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == "" || t.Kind == e.Kind
}

// WithMessage returns a copy of this Error with Message replaced.
func (e *Error) WithMessage(message string) *Error {
	return &Error{
		Kind:     e.Kind,
		Code:     e.Code,
		Message:  message,
		Override: e.Override,
		Errors:   e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"not found" -> "NOT_FOUND"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}

// KindOf returns the kind of err if it is (or wraps) an *Error,
// "" for a nil error and KindInternal otherwise.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
