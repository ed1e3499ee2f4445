package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/stravex/internal/core/ports"
)

// Bridge feeds driver spans to the progress renderer. The export span of a
// run has no parent; every step and every exported row is its child.
type Bridge struct {
	renderer ports.Renderer
}

// NewBridge returns a Bridge reporting to renderer. A nil renderer drops
// every span.
func NewBridge(renderer ports.Renderer) *Bridge {
	return &Bridge{renderer: renderer}
}

// OnStart announces a step as running.
func (b *Bridge) OnStart(parent context.Context, s sdktrace.ReadWriteSpan) {
	id, ok := b.stepID(s.SpanContext())
	if !ok {
		return
	}

	var parentID string
	if sc := trace.SpanContextFromContext(parent); sc.IsValid() {
		parentID = sc.SpanID().String()
	}
	b.renderer.OnStepStart(id, parentID, s.Name(), s.StartTime())
}

// OnEnd marks a step done, or failed when the driver recorded an error on it.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	id, ok := b.stepID(s.SpanContext())
	if !ok {
		return
	}
	b.renderer.OnStepComplete(id, s.EndTime(), stepFailure(s.Status()))
}

// ForceFlush does nothing: steps are reported as they start and end.
func (b *Bridge) ForceFlush(context.Context) error { return nil }

// Shutdown does nothing.
func (b *Bridge) Shutdown(context.Context) error { return nil }

func (b *Bridge) stepID(sc trace.SpanContext) (string, bool) {
	if b.renderer == nil || !sc.IsValid() {
		return "", false
	}
	return sc.SpanID().String(), true
}

// stepFailure turns an error status into the error shown next to the step.
// The status description holds the driver's error message.
func stepFailure(status sdktrace.Status) error {
	if status.Code != codes.Error {
		return nil
	}
	if status.Description == "" {
		return errors.New("step failed")
	}
	return errors.New(status.Description)
}
