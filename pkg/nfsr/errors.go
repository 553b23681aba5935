package nfsr

import "fmt"

// ErrorCode represents an NFSR calculator error code
type ErrorCode int

const (
	// ErrUnknown represents an unknown error
	ErrUnknown ErrorCode = iota

	// ErrInvalidConfig represents an invalid configuration error
	ErrInvalidConfig

	// ErrInvalidLength represents a register length outside the supported range
	ErrInvalidLength

	// ErrUnknownFunction represents a lookup of a feedback function that is not registered
	ErrUnknownFunction

	// ErrExpression represents a feedback expression that failed to parse or bind
	ErrExpression

	// ErrDecomposition represents a failure inside the cycle decomposition engine
	ErrDecomposition

	// ErrReport represents a failure while rendering or persisting results
	ErrReport
)

// Error represents an NFSR calculator error
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("nfsr error [%d]: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("nfsr error [%d]: %s", e.Code, e.Message)
}

// Unwrap returns the cause of the error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// newError builds an *Error with a formatted message.
func newError(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// wrapError builds an *Error around a cause.
func wrapError(code ErrorCode, cause error, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}
