package cli

import "fmt"

// Exit codes for growlme's own failures. When the wrapped command runs, its
// exit code is passed through verbatim instead.
const (
	// ExitSuccess indicates the wrapped command succeeded.
	ExitSuccess = 0
	// ExitFailure indicates growlme itself failed before the wrapped
	// command produced an exit code (bad usage, unreadable config).
	ExitFailure = 1
)

// exitError is a custom error type that carries an exit code.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// NewExitError creates a new exit error with the given code.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// ExitCode returns the exit code from an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if e, ok := err.(*exitError); ok {
		return e.code
	}
	return ExitFailure
}
