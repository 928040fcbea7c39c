package output

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithSpinnerReturnsActionError(t *testing.T) {
	wantErr := errors.New("boom")
	err := RunWithSpinner(context.Background(), func() error {
		return wantErr
	}, WithTitle("Working..."))

	assert.ErrorIs(t, err, wantErr)
}

func TestRunWithSpinnerRunsAction(t *testing.T) {
	ran := false
	err := RunWithSpinner(context.Background(), func() error {
		ran = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, ran)
}

func TestFormatCheckmark(t *testing.T) {
	out := FormatCheckmark("Created project")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "Created project")
}
