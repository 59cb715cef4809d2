package apperrors

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess           = 0   // Indicates successful execution.
	ExitErrorGeneric      = 1   // Indicates a generic error (e.g. an output write failure).
	ExitErrorConfig       = 4   // Indicates an argument or flag error.
	ExitErrorInput        = 5   // Indicates an input line that failed to parse.
	ExitErrorPrecondition = 6   // Indicates a bin layout that cannot produce a correct report.
	ExitErrorCanceled     = 130 // Indicates the run was canceled through its context.
)

// ConfigError represents a user configuration error, such as missing
// positional arguments or unknown flags. It indicates that the application
// cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an argument that is present but malformed. It
// identifies which argument failed validation and provides a human-readable
// explanation.
type ValidationError struct {
	// Field is the name of the argument that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
//
// Returns:
//   - string: The error message string.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// InputError reports an input line that could not be parsed as a
// non-negative integer. It carries the raw line so the diagnostic shows
// exactly what was read.
type InputError struct {
	// Line is the 1-based line number of the offending input.
	Line uint64
	// Raw is the line as read, including any trailing newline.
	Raw string
	// Cause is the underlying parse error.
	Cause error
}

// Error returns a message quoting the raw input text.
//
// Returns:
//   - string: The error message string.
func (e InputError) Error() string {
	return fmt.Sprintf("line %d: unable to parse as integer: %s", e.Line, strconv.Quote(e.Raw))
}

// Unwrap returns the underlying parse error.
func (e InputError) Unwrap() error { return e.Cause }

// PreconditionError wraps a violated bin layout precondition, such as a zero
// bin count or a zero bin width meeting an in-range value.
type PreconditionError struct {
	// Cause is the violated precondition.
	Cause error
}

// Error returns the message of the violated precondition.
func (e PreconditionError) Error() string {
	return "precondition violated: " + e.Cause.Error()
}

// Unwrap returns the violated precondition.
func (e PreconditionError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error to the process exit code of its class.
// A nil error maps to ExitSuccess; unclassified errors map to ExitErrorGeneric.
func ExitCodeFor(err error) int {
	var (
		configErr       ConfigError
		validationErr   ValidationError
		inputErr        InputError
		preconditionErr PreconditionError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &configErr), errors.As(err, &validationErr):
		return ExitErrorConfig
	case errors.As(err, &inputErr):
		return ExitErrorInput
	case errors.As(err, &preconditionErr):
		return ExitErrorPrecondition
	case IsContextError(err):
		return ExitErrorCanceled
	default:
		return ExitErrorGeneric
	}
}
