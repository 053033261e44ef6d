package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/osadmin/internal/provisioning"
)

// StepRow is one workflow step as displayed.
type StepRow struct {
	Name     string
	Done     bool
	Active   bool
	Err      error
	Duration time.Duration
}

// Model is the Bubble Tea model for the network provisioning view.
type Model struct {
	Project         string
	ExternalNetwork string
	CIDR            string

	Steps []StepRow

	// Set once the workflow returns
	Finished bool
	OK       bool
	Ledger   *provisioning.Ledger

	StartTime    time.Time
	SpinnerFrame int

	// UI state
	Width  int
	Height int
	Err    error
}

// NewNetworkModel creates a model for the given step names.
func NewNetworkModel(project, externalNetwork, cidr string, steps []string) Model {
	rows := make([]StepRow, len(steps))
	for i, name := range steps {
		rows[i] = StepRow{Name: name}
	}
	return Model{
		Project:         project,
		ExternalNetwork: externalNetwork,
		CIDR:            cidr,
		Steps:           rows,
		StartTime:       time.Now(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case StepMsg:
		m.updateStep(msg)

	case ResultMsg:
		m.Finished = true
		m.OK = msg.OK
		m.Ledger = msg.Ledger
		return m, tea.Quit

	case TickMsg:
		m.SpinnerFrame++
		return m, tickCmd()

	case ErrMsg:
		m.Err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) updateStep(msg StepMsg) {
	if msg.Index < 0 || msg.Index >= len(m.Steps) {
		return
	}

	// Mark previous steps as done
	for i := 0; i < msg.Index; i++ {
		m.Steps[i].Done = true
		m.Steps[i].Active = false
	}

	row := &m.Steps[msg.Index]
	switch msg.Status {
	case provisioning.StepRunning:
		row.Active = true
	case provisioning.StepDone:
		row.Active = false
		row.Done = true
		row.Duration = msg.Duration
	case provisioning.StepFailed:
		row.Active = false
		row.Err = msg.Err
		row.Duration = msg.Duration
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}
