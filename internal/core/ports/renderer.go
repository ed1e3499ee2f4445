package ports

import (
	"context"
	"time"
)

// Renderer is the abstraction for output rendering.
// It decouples telemetry collection from presentation logic,
// allowing the same event stream to drive either a rich TUI or linear CI logs.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer and begins its lifecycle.
	// For asynchronous renderers (like TUI), this may launch background goroutines.
	Start(ctx context.Context) error

	// Stop signals the renderer to stop accepting new events and prepare for shutdown.
	// It should flush any buffered output.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	// For synchronous renderers, this may return immediately.
	Wait() error

	// OnPlanEmit is called once the driver knows the ordered step names of a run.
	OnPlanEmit(steps []string)

	// OnStepStart is called when a step begins.
	// parentID is empty for the root span of a run.
	OnStepStart(spanID, parentID, name string, startTime time.Time)

	// OnStepLog is called when a step writes a progress note.
	OnStepLog(spanID string, data []byte)

	// OnStepComplete is called when a step finishes. err is nil on success.
	OnStepComplete(spanID string, endTime time.Time, err error)
}
