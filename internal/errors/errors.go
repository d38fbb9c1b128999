package apperrors

import (
	"errors"
	"fmt"
	"io"
)

// Application exit codes define the standard exit statuses for the application.
const (
	ExitSuccess       = 0 // Indicates successful execution.
	ExitErrorGeneric  = 1 // Indicates a generic error, including command-line misuse.
	ExitErrorMismatch = 3 // Indicates the reduction did not cover or sum the matrix correctly.
	ExitErrorConfig   = 4 // Indicates a configuration error.
)

// ConfigError represents a user configuration error, such as a malformed
// config file or an unknown cursor kind. The application cannot proceed.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// MismatchError reports a reduction whose totals disagree with the
// sequential reference.
type MismatchError struct {
	// Strategy is the name of the partition strategy that produced the result.
	Strategy string
	// WantRows and GotRows are the expected and observed processed-row totals.
	WantRows, GotRows int
	// WantSum and GotSum are the expected and observed gross sums.
	WantSum, GotSum uint64
}

// Error returns a formatted message describing the mismatch.
func (e MismatchError) Error() string {
	return fmt.Sprintf("%s: processed %d rows (want %d), gross sum %d (want %d)",
		e.Strategy, e.GotRows, e.WantRows, e.GotSum, e.WantSum)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// It returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// ExitCode maps an error to the process exit status it should produce.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var configErr ConfigError
	var validationErr ValidationError
	var mismatchErr MismatchError
	switch {
	case errors.As(err, &configErr), errors.As(err, &validationErr):
		return ExitErrorConfig
	case errors.As(err, &mismatchErr):
		return ExitErrorMismatch
	default:
		return ExitErrorGeneric
	}
}

// HandleError prints err to out and returns the matching exit code.
// A nil error prints nothing and yields ExitSuccess.
func HandleError(err error, out io.Writer) int {
	if err == nil {
		return ExitSuccess
	}
	code := ExitCode(err)
	switch code {
	case ExitErrorConfig:
		fmt.Fprintf(out, "Configuration error: %v\n", err)
	case ExitErrorMismatch:
		fmt.Fprintf(out, "Reduction mismatch: %v\n", err)
	default:
		fmt.Fprintf(out, "Error: %v\n", err)
	}
	return code
}
