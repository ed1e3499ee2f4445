package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/stravex/internal/core/domain"
)

// Renderer wraps the progress Model as a ports.Renderer.
type Renderer struct {
	program *tea.Program
	model   *Model
	errCh   chan error
}

// NewRenderer creates a new TUI renderer.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	return &Renderer{
		program: tea.NewProgram(model, opts...),
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Start launches the TUI in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Stop signals the TUI to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the TUI has terminated. It returns domain.ErrInterrupted
// when the operator quit before the run finished, so that the run is canceled.
func (r *Renderer) Wait() error {
	err := <-r.errCh
	if errors.Is(err, tea.ErrProgramKilled) {
		// The run context ended; the run reports why.
		return nil
	}
	if err != nil {
		return err
	}
	if r.model.Interrupted {
		return domain.ErrInterrupted
	}
	return nil
}

// OnPlanEmit forwards the planned steps to the TUI.
func (r *Renderer) OnPlanEmit(steps []string) {
	r.program.Send(MsgInitSteps{Steps: steps})
}

// OnStepStart forwards step start events to the TUI.
func (r *Renderer) OnStepStart(spanID, parentID, name string, startTime time.Time) {
	r.program.Send(MsgStepStart{
		SpanID:    spanID,
		ParentID:  parentID,
		Name:      name,
		StartTime: startTime,
	})
}

// OnStepLog forwards step notes to the TUI.
func (r *Renderer) OnStepLog(spanID string, data []byte) {
	r.program.Send(MsgStepLog{SpanID: spanID, Data: data})
}

// OnStepComplete forwards step completion events to the TUI.
func (r *Renderer) OnStepComplete(spanID string, endTime time.Time, err error) {
	r.program.Send(MsgStepComplete{
		SpanID:  spanID,
		EndTime: endTime,
		Err:     err,
	})
}
