// Package style renders one-line command results for plain terminal output.
package style

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e")).Bold(true)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#eab308"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
)

const (
	successMark = "[OK]"
	failureMark = "[!!]"
	warnMark    = "[??]"
)

// Printer writes styled result lines to w.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Success prints a line marked as successful.
func (p *Printer) Success(format string, args ...any) {
	p.line(successStyle, successMark, format, args...)
}

// Failure prints a line marked as failed.
func (p *Printer) Failure(format string, args ...any) {
	p.line(failureStyle, failureMark, format, args...)
}

// Warn prints a line marked as a warning.
func (p *Printer) Warn(format string, args ...any) {
	p.line(warnStyle, warnMark, format, args...)
}

// Resource prints an indented kind/name/id row.
func (p *Printer) Resource(kind, name, id string) {
	fmt.Fprintf(p.w, "    %-16s %-10s %s\n", kind, name, dimStyle.Render(id))
}

func (p *Printer) line(s lipgloss.Style, mark, format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", s.Render(mark), fmt.Sprintf(format, args...))
}
