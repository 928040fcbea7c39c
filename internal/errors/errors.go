// Package errors provides sentinel errors for the stencil CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrUnknownFramework indicates the requested identifier matches no
	// registered framework.
	ErrUnknownFramework = errors.New("unknown framework")

	// ErrInvalidRequest indicates a structurally malformed request,
	// rejected before any filesystem activity.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrFilesystem indicates an I/O failure while writing the tree.
	ErrFilesystem = errors.New("filesystem error")

	// ErrConflict indicates two builders claimed the same identifier at
	// registration time.
	ErrConflict = errors.New("identifier conflict")
)

// DetailError captures structured error information for user-facing output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is a file or directory path (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString(e.Type)
	b.WriteString(": ")
	b.WriteString(e.Message)

	if e.Location != "" {
		b.WriteString("\n  Location: ")
		b.WriteString(e.Location)
	}
	for k, v := range e.Context {
		b.WriteString("\n  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
	}
	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewUnknownFrameworkError creates an unknown-framework error that names
// the valid identifiers so the caller can self-correct.
func NewUnknownFrameworkError(id string, identifiers []string) error {
	return &DetailError{
		Type:    "unknown framework",
		Message: fmt.Sprintf("no framework registered for %q", id),
		Hint:    "Valid identifiers: " + strings.Join(identifiers, ", "),
		Cause:   ErrUnknownFramework,
	}
}

// NewInvalidRequestError creates an invalid-request error.
func NewInvalidRequestError(message, hint string) error {
	return &DetailError{
		Type:    "invalid request",
		Message: message,
		Hint:    hint,
		Cause:   ErrInvalidRequest,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
