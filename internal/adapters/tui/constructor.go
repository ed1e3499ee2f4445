// Package tui provides the interactive progress view of an automation run.
package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/stravex/internal/ui/output"
)

const defaultTickInterval = 200 * time.Millisecond

// NewModel creates a Model whose colors follow the terminal behind w.
func NewModel(w io.Writer) Model {
	lipgloss.SetColorProfile(output.New(w).Profile)

	return Model{
		Steps:        make([]*StepNode, 0),
		StepMap:      make(map[string]*StepNode),
		SpanMap:      make(map[string]*StepNode),
		FollowMode:   true,
		TickInterval: defaultTickInterval,
	}
}
