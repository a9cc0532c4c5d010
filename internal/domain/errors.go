package domain

import "errors"

// ErrValidation is the sentinel all field-validation failures match via
// errors.Is. The concrete error is always a *ValidationError carrying a
// machine-readable reason code.
var ErrValidation = errors.New("validation failed")

// Validation reason codes. Transport layers can branch on these without
// parsing the human-readable message.
const (
	CodeTitleRequired       = "title_required"
	CodeTitleTooLong        = "title_too_long"
	CodeDescriptionTooLong  = "description_too_long"
	CodeInvalidDueDate      = "invalid_due_date"
	CodeInvalidStatus       = "invalid_status"
	CodeForbiddenPattern    = "forbidden_pattern"
	CodeForbiddenCharacters = "forbidden_characters"
)

// ValidationError reports caller-supplied data that fails a field rule.
// It is always recoverable at the transport boundary: the message is safe
// to surface to the caller as the rejection reason.
type ValidationError struct {
	Code    string
	Message string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrValidation) true for every ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a ValidationError with the given reason code
// and caller-facing message.
func NewValidationError(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}
