package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/stravex/internal/ui/style"
)

// View renders the UI.
func (m *Model) View() string {
	if m.ListHeight == 0 {
		return "Waiting for STRAVIS..."
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header(),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, m.stepList(), m.notePane()),
	)
}

func (m *Model) header() string {
	title := "STRAVEX"
	if m.Title != "" {
		title += "  " + m.Title
	}

	switch {
	case m.Finished && m.RunErr != nil:
		return failureTitleStyle.Render(title + "  " + style.Cross + " failed")
	case m.Finished:
		return titleStyle.Render(title + "  " + style.Check + " done")
	default:
		return titleStyle.Render(title)
	}
}

func (m *Model) stepList() string {
	var s strings.Builder

	start := min(m.ListOffset, len(m.Steps))
	end := min(m.ListOffset+m.ListHeight, len(m.Steps))
	for i := start; i < end; i++ {
		s.WriteString(m.renderStepRow(i, m.Steps[i]) + "\n")
	}

	return listStyle.Render(strings.TrimSuffix(s.String(), "\n"))
}

func (m *Model) renderStepRow(index int, step *StepNode) string {
	rowStyle := stepStyle(step)

	cursor := "  "
	if index == m.SelectedIdx {
		cursor = selectedStyle.Render("> ")
		if step.Status == StatusPending || step.Status == StatusRunning {
			rowStyle = selectedStyle
		}
	}

	content := fmt.Sprintf("%s %s", stepIcon(step), step.Name)
	if d := step.Elapsed(m.Now); d > 0 {
		content += " " + d.Round(100*time.Millisecond).String()
	}
	return cursor + rowStyle.Render(content)
}

func stepIcon(step *StepNode) string {
	switch step.Status {
	case StatusRunning:
		return style.Dot
	case StatusDone:
		return style.Check
	case StatusError:
		return style.Cross
	default:
		return style.Circle
	}
}

func stepStyle(step *StepNode) lipgloss.Style {
	switch step.Status {
	case StatusRunning:
		return stepRunningStyle
	case StatusDone:
		return stepDoneStyle
	case StatusError:
		return stepErrorStyle
	default:
		return stepPendingStyle
	}
}

func (m *Model) notePane() string {
	node := m.selected()
	if node == nil {
		return notesStyle.Render("No notes yet")
	}

	mode := "following"
	if !m.FollowMode {
		mode = "manual"
	}
	heading := style.Muted.Render(fmt.Sprintf("%s (%s)", node.Name, mode))

	body := node.Notes.View()
	if m.Finished && m.RunErr != nil && node.Status == StatusError {
		body = strings.TrimRight(body, "\n") + "\n" + stepErrorStyle.Render(m.RunErr.Error())
	}

	return notesStyle.Render(lipgloss.JoinVertical(lipgloss.Left, heading, body))
}
