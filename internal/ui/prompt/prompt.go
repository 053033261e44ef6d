// Package prompt asks the operator for input that should not be passed as a flag.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// MinPasswordLength is the shortest password the prompt accepts.
const MinPasswordLength = 8

var (
	// ErrAborted is returned when the operator cancels the prompt.
	ErrAborted = errors.New("prompt aborted")
	// ErrPasswordMismatch is returned when the confirmation differs.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrEmptyPassword is returned when nothing was entered.
	ErrEmptyPassword = errors.New("password is empty")
)

// runForm runs a form; tests replace it.
var runForm = func(ctx context.Context, form *huh.Form) error {
	return form.RunWithContext(ctx)
}

// IsInteractive reports whether stdin and stdout are terminals.
func IsInteractive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Password asks for a password for user and its confirmation.
func Password(ctx context.Context, user string) (string, error) {
	var password, confirm string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Password for %s", user)).
				EchoMode(huh.EchoModePassword).
				Value(&password).
				Validate(ValidatePassword),
			huh.NewInput().
				Title("Confirm password").
				EchoMode(huh.EchoModePassword).
				Value(&confirm),
		),
	)

	if err := runForm(ctx, form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("password prompt failed: %w", err)
	}

	if password == "" {
		return "", ErrEmptyPassword
	}
	if password != confirm {
		return "", ErrPasswordMismatch
	}
	return password, nil
}

// ValidatePassword rejects passwords shorter than MinPasswordLength.
func ValidatePassword(s string) error {
	if len(s) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}
	return nil
}
