package errors

import "errors"

// ValidationError reports a codec option that failed validation before
// any operation ran. It names the offending field and carries the
// rejected value so callers can log both without string parsing.
type ValidationError struct {
	Value any    `json:"value"` // The rejected value.
	Field string `json:"field"` // Option field that failed, e.g. "chunkSize".
	Err   error  `json:"error"` // Why the value was rejected.
}

// NewValidationError creates a new ValidationError instance.
func NewValidationError(field string, value any, err error) *ValidationError {
	return &ValidationError{
		Err:   err,
		Field: field,
		Value: value,
	}
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "validation error"
}

// IsValidationError reports whether err is a ValidationError, letting
// callers tell bad configuration apart from operational failures.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AsValidationError attempts to extract a ValidationError from a given error.
func AsValidationError(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
