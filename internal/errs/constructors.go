package errs

// NewUnauthorizedError creates an Unauthorized Error.
//
// Parameters:
//   - message: text to show to the caller
//   - override: whether the message can be shown as-is
func NewUnauthorizedError(message string, override bool) *Error {
	return &Error{
		Kind:     KindUnauthorized,
		Code:     MakeUpperCaseWithUnderscores(string(KindUnauthorized)),
		Message:  message,
		Override: override,
	}
}

// NewInvalidError creates an Invalid Error.
//
// This supports extra payload:
//   - code: optional custom code string (if nil, defaults to "INVALID")
//   - errors: optional slice of field errors (validation errors)
func NewInvalidError(message string, override bool, code *string, errors []FieldError) *Error {
	formattedCode := MakeUpperCaseWithUnderscores(string(KindInvalid))
	if code != nil {
		formattedCode = *code
	}

	return &Error{
		Kind:     KindInvalid,
		Code:     formattedCode,
		Message:  message,
		Override: override,
		Errors:   errors,
	}
}

// NewNotFoundError creates a NotFound Error.
//
// Supports optional custom code override similar to NewInvalidError.
func NewNotFoundError(message string, override bool, code *string) *Error {
	formattedCode := MakeUpperCaseWithUnderscores(string(KindNotFound))
	if code != nil {
		formattedCode = *code
	}

	return &Error{
		Kind:     KindNotFound,
		Code:     formattedCode,
		Message:  message,
		Override: override,
	}
}

// NewConflictError creates a Conflict Error, used when a write collides
// with existing state (e.g. a unique email).
func NewConflictError(message string, override bool, code *string) *Error {
	formattedCode := MakeUpperCaseWithUnderscores(string(KindConflict))
	if code != nil {
		formattedCode = *code
	}

	return &Error{
		Kind:     KindConflict,
		Code:     formattedCode,
		Message:  message,
		Override: override,
	}
}

// NewInternalError creates an Internal Error.
//
// The message is always generic: driver and network details stay in the logs.
func NewInternalError() *Error {
	return &Error{
		Kind:     KindInternal,
		Code:     MakeUpperCaseWithUnderscores(string(KindInternal)),
		Message:  "Internal error",
		Override: false,
	}
}

// ValidationError converts a generic validation error into an Invalid Error.
func ValidationError(err error) *Error {
	return NewInvalidError("Validation failed: "+err.Error(), false, nil, nil)
}
