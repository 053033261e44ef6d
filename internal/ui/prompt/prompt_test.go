package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", true},
		{"short", true},
		{"1234567", true},
		{"12345678", false},
		{"correct horse battery staple", false},
	}
	for _, tt := range tests {
		err := ValidatePassword(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
		} else {
			assert.NoError(t, err, "input %q", tt.input)
		}
	}
}

func TestPassword(t *testing.T) {
	orig := runForm
	t.Cleanup(func() { runForm = orig })

	t.Run("aborted", func(t *testing.T) {
		runForm = func(context.Context, *huh.Form) error { return huh.ErrUserAborted }

		_, err := Password(context.Background(), "alice")
		assert.ErrorIs(t, err, ErrAborted)
	})

	t.Run("form error is wrapped", func(t *testing.T) {
		boom := errors.New("no tty")
		runForm = func(context.Context, *huh.Form) error { return boom }

		_, err := Password(context.Background(), "alice")
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "password prompt failed")
	})

	t.Run("nothing entered", func(t *testing.T) {
		runForm = func(context.Context, *huh.Form) error { return nil }

		_, err := Password(context.Background(), "alice")
		assert.ErrorIs(t, err, ErrEmptyPassword)
	})
}
