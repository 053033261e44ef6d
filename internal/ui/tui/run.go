package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/osadmin/internal/provisioning"
)

// NetworkRunFunc runs the workflow under ctx, reporting steps to listener.
type NetworkRunFunc func(ctx context.Context, listener provisioning.StepListener) (*provisioning.Ledger, bool)

// newProgram builds the Bubble Tea program; tests replace it.
var newProgram = func(ctx context.Context, m tea.Model) *tea.Program {
	return tea.NewProgram(m, tea.WithContext(ctx))
}

// RunNetworkTUI wraps the network workflow with a Bubble Tea TUI and returns
// the workflow's result once the view closes. Closing the view before the
// workflow finishes cancels the steps that have not started yet.
func RunNetworkTUI(ctx context.Context, runFn NetworkRunFunc, project, externalNetwork, cidr string, steps []string) (*provisioning.Ledger, bool, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := NewNetworkModel(project, externalNetwork, cidr, steps)
	p := newProgram(runCtx, m)

	type result struct {
		ledger *provisioning.Ledger
		ok     bool
	}
	resultCh := make(chan result, 1)

	// Run workflow in background goroutine
	go func() {
		ledger, ok := runFn(runCtx, func(u provisioning.StepUpdate) {
			p.Send(StepMsg(u))
		})
		resultCh <- result{ledger: ledger, ok: ok}
		p.Send(ResultMsg{OK: ok, Ledger: ledger})
	}()

	finalModel, err := p.Run()
	cancel()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return nil, false, fmt.Errorf("TUI error: %w", err)
	}

	if fm, isModel := finalModel.(Model); isModel && fm.Err != nil {
		return nil, false, fm.Err
	}

	res := <-resultCh
	return res.ledger, res.ok, nil
}
