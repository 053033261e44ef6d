package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// styleFunc is a single-string styling function.
type styleFunc func(string) string

// sf wraps a lipgloss.Style into a styleFunc.
func sf(s lipgloss.Style) styleFunc {
	return func(str string) string { return s.Render(str) }
}

func renderView(m Model) string {
	var b strings.Builder

	renderHeader(&b, m)
	renderProgressBar(&b, m)
	renderSteps(&b, m)

	if m.Finished && !m.OK {
		renderCommitted(&b, m)
	}

	renderFooter(&b, m)

	return b.String()
}

func renderHeader(b *strings.Builder, m Model) {
	title := fmt.Sprintf("osadmin: network for %s", m.Project)
	if m.ExternalNetwork != "" {
		title += fmt.Sprintf(" (via %s)", m.ExternalNetwork)
	}
	b.WriteString(titleStyle.Render(title))

	status := " "
	switch {
	case m.Err != nil:
		status += failedStyle.Render(fmt.Sprintf("Error: %v", m.Err))
	case m.Finished && m.OK:
		status += readyStyle.Render("Ready")
	case m.Finished:
		status += failedStyle.Render("Failed")
	default:
		status += activeStyle.Render(currentSpinner(m.SpinnerFrame)+" ") + warningStyle.Render(activeStep(m))
	}
	b.WriteString(status)
	b.WriteString("\n")
}

func renderProgressBar(b *strings.Builder, m Model) {
	progress := calculateProgress(m)
	barWidth := 40
	if m.Width > 0 && m.Width < 80 {
		barWidth = m.Width - 30
		if barWidth < 10 {
			barWidth = 10
		}
	}
	filled := int(float64(barWidth) * progress)
	if filled > barWidth {
		filled = barWidth
	}

	bar := progressBarFull.Render(strings.Repeat("█", filled)) +
		progressBarEmpty.Render(strings.Repeat("░", barWidth-filled))

	fmt.Fprintf(b, "  %s %d%%\n", bar, int(progress*100))
}

func renderSteps(b *strings.Builder, m Model) {
	b.WriteString(sectionStyle.Render("  Steps"))
	b.WriteString("\n")

	for _, step := range m.Steps {
		var icon string
		var style styleFunc
		switch {
		case step.Err != nil:
			icon = crossMark
			style = sf(failedStyle)
		case step.Done:
			icon = checkMark
			style = sf(readyStyle)
		case step.Active:
			icon = currentSpinner(m.SpinnerFrame)
			style = sf(activeStyle)
		default:
			icon = pending
			style = sf(dimStyle)
		}
		line := fmt.Sprintf("    %s %s", style(icon), style(step.Name))
		if step.Duration > 0 {
			line += dimStyle.Render(" " + formatDuration(step.Duration))
		}
		if step.Err != nil {
			line += " " + dimStyle.Render(step.Err.Error())
		}
		b.WriteString(line + "\n")
	}
}

func renderCommitted(b *strings.Builder, m Model) {
	if m.Ledger == nil {
		return
	}
	committed := m.Ledger.Committed()
	if len(committed) == 0 {
		return
	}

	b.WriteString(sectionStyle.Render("  Left in place"))
	b.WriteString("\n")
	for _, r := range committed {
		fmt.Fprintf(b, "    %s %s %s %s\n",
			warningStyle.Render(warnMark), r.Kind, r.Name, dimStyle.Render(r.ID))
	}
}

func renderFooter(b *strings.Builder, m Model) {
	elapsed := formatDuration(time.Since(m.StartTime))
	parts := []string{fmt.Sprintf("elapsed: %s", elapsed)}
	if m.CIDR != "" {
		parts = append(parts, fmt.Sprintf("subnet: %s", m.CIDR))
	}
	b.WriteString(footerStyle.Render(fmt.Sprintf("  %s  |  q: quit", strings.Join(parts, "  |  "))))
	b.WriteString("\n")
}

// Helper functions

func activeStep(m Model) string {
	for _, s := range m.Steps {
		if s.Active {
			return s.Name
		}
	}
	return "starting"
}

func currentSpinner(frame int) string {
	if frame < 0 {
		frame = -frame
	}
	return spinnerFrames[frame%len(spinnerFrames)]
}

func calculateProgress(m Model) float64 {
	if m.Finished && m.OK {
		return 1.0
	}
	if len(m.Steps) == 0 {
		return 0
	}
	done := 0
	for _, s := range m.Steps {
		if s.Done {
			done++
		}
	}
	return float64(done) / float64(len(m.Steps))
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}
