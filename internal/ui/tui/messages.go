// Package tui provides a Bubble Tea-based terminal UI for network provisioning.
package tui

import "github.com/imamik/osadmin/internal/provisioning"

// StepMsg reports a workflow step transition.
type StepMsg provisioning.StepUpdate

// ResultMsg carries the finished workflow's outcome.
type ResultMsg struct {
	OK     bool
	Ledger *provisioning.Ledger
}

// TickMsg is sent periodically to refresh the display.
type TickMsg struct{}

// ErrMsg carries an error.
type ErrMsg struct{ Err error }
