package params

import (
	"errors"
	"fmt"
)

// Error represents a domain-specific conversion error
type Error struct {
	Code    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Error codes
const (
	ErrCodeUnsupportedParam      = "UNSUPPORTED_PARAM"
	ErrCodeUnsupportedParamValue = "UNSUPPORTED_PARAM_VALUE"
	ErrCodeParamValidation       = "PARAM_VALIDATION"
	ErrCodeInvalidArgument       = "INVALID_ARGUMENT"
)

// NewError creates a new conversion error
func NewError(code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsCode reports whether err (or anything it wraps) carries the given code.
func IsCode(err error, code string) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code == code
	}
	return false
}
