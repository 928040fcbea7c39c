package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailErrorFormat(t *testing.T) {
	err := &DetailError{
		Type:     "filesystem error",
		Message:  "cannot write tree",
		Location: "/srv/projects/demo",
		Hint:     "Check directory permissions.",
		Cause:    ErrFilesystem,
	}

	s := err.Error()
	assert.Contains(t, s, "filesystem error: cannot write tree")
	assert.Contains(t, s, "Location: /srv/projects/demo")
	assert.Contains(t, s, "Hint: Check directory permissions.")
	assert.ErrorIs(t, err, ErrFilesystem)
}

func TestDetailErrorMinimal(t *testing.T) {
	err := &DetailError{Type: "invalid request", Message: "name is empty"}
	assert.Equal(t, "invalid request: name is empty", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

func TestNewUnknownFrameworkError(t *testing.T) {
	err := NewUnknownFrameworkError("ember", []string{"react", "vue"})

	assert.ErrorIs(t, err, ErrUnknownFramework)
	assert.Contains(t, err.Error(), `"ember"`)
	assert.Contains(t, err.Error(), "Valid identifiers: react, vue")

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "unknown framework", detail.Type)
}

func TestNewInvalidRequestError(t *testing.T) {
	err := NewInvalidRequestError("bad name", "Use letters and digits.")
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Contains(t, err.Error(), "bad name")
	assert.Contains(t, err.Error(), "Use letters and digits.")
}

func TestWrap(t *testing.T) {
	err := Wrap(ErrFilesystem, "writing package.json")
	assert.ErrorIs(t, err, ErrFilesystem)
	assert.Equal(t, "writing package.json: filesystem error", err.Error())
}
