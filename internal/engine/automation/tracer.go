package automation

import (
	"context"

	"go.trai.ch/stravex/internal/core/ports"
)

// noopTracer is used when a run is started without a tracer.
type noopTracer struct{}

func (noopTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

func (noopTracer) EmitPlan(context.Context, []string) {}

type noopSpan struct{}

func (noopSpan) Write(p []byte) (int, error) { return len(p), nil }
func (noopSpan) End()                        {}
func (noopSpan) RecordError(error)           {}
func (noopSpan) SetAttribute(string, any)    {}
