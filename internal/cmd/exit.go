package cmd

import (
	"errors"

	serrors "github.com/stencilhq/cli/internal/errors"
)

// Exit codes for known failure categories.
const (
	ExitSuccess          = 0
	ExitGeneralError     = 1
	ExitInvalidRequest   = 2
	ExitUnknownFramework = 4
	ExitFilesystemError  = 5
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed records whether the command layer already printed the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, serrors.ErrInvalidRequest):
		return ExitInvalidRequest
	case errors.Is(err, serrors.ErrUnknownFramework):
		return ExitUnknownFramework
	case errors.Is(err, serrors.ErrFilesystem):
		return ExitFilesystemError
	default:
		return ExitGeneralError
	}
}
