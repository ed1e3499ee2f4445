package telemetry

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/stravex/internal/core/ports"
)

// LogBufferSize determines the size of the async note channel.
const LogBufferSize = 4096

// message is an event delivered to the renderer by the delivery loop.
type message any

type msgStepLog struct {
	spanID string
	data   []byte
}

type msgPlan struct {
	steps []string
}

// msgBarrier is closed by the delivery loop once every earlier message was delivered.
type msgBarrier struct {
	done chan struct{}
}

// Setup installs a tracer provider whose spans are reported to bridge.
// The returned provider must be shut down after the run.
func Setup(bridge *Bridge) *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(bridge))
	otel.SetTracerProvider(tp)
	return tp
}

// OTelTracer implements ports.Tracer using OpenTelemetry.
// Span notes and the plan reach the renderer through a single delivery loop,
// so they arrive in the order they were written.
type OTelTracer struct {
	tracer   trace.Tracer
	renderer ports.Renderer
	logChan  chan message
	loopDone chan struct{}
	mu       sync.RWMutex
	closed   bool
}

// TracerOption configures an OTelTracer.
type TracerOption func(*tracerConfig)

type tracerConfig struct {
	provider trace.TracerProvider
}

// WithTracerProvider uses tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) TracerOption {
	return func(c *tracerConfig) {
		c.provider = tp
	}
}

// NewOTelTracer creates a new OTelTracer with the given instrumentation name.
func NewOTelTracer(name string, opts ...TracerOption) *OTelTracer {
	cfg := tracerConfig{provider: otel.GetTracerProvider()}
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &OTelTracer{
		tracer:   cfg.provider.Tracer(name),
		logChan:  make(chan message, LogBufferSize),
		loopDone: make(chan struct{}),
	}
	go t.runLoop()
	return t
}

// WithRenderer sets the renderer that receives notes and plans.
func (t *OTelTracer) WithRenderer(r ports.Renderer) *OTelTracer {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.renderer = r
	return t
}

func (t *OTelTracer) currentRenderer() ports.Renderer {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.renderer
}

func (t *OTelTracer) runLoop() {
	defer close(t.loopDone)
	for msg := range t.logChan {
		if b, ok := msg.(msgBarrier); ok {
			close(b.done)
			continue
		}

		r := t.currentRenderer()
		if r == nil {
			continue
		}
		switch m := msg.(type) {
		case msgStepLog:
			r.OnStepLog(m.spanID, m.data)
		case msgPlan:
			r.OnPlanEmit(m.steps)
		}
	}
}

// send queues msg for delivery. Without block, msg is dropped when the
// queue is full. Nothing is queued after Shutdown.
func (t *OTelTracer) send(msg message, block bool) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.closed {
		return false
	}
	if block {
		t.logChan <- msg
		return true
	}
	select {
	case t.logChan <- msg:
		return true
	default:
		return false
	}
}

// sync blocks until every message queued so far has been delivered.
func (t *OTelTracer) sync() {
	b := msgBarrier{done: make(chan struct{})}
	if t.send(b, true) {
		<-b.done
	}
}

// Shutdown drains pending notes and stops the delivery loop.
func (t *OTelTracer) Shutdown(ctx context.Context) error {
	t.mu.Lock()
	if !t.closed {
		t.closed = true
		close(t.logChan)
	}
	t.mu.Unlock()

	select {
	case <-t.loopDone:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Start creates a new span.
func (t *OTelTracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx, span := t.tracer.Start(ctx, name)

	s := &OTelSpan{span: span, tracer: t}
	if t.currentRenderer() != nil {
		spanID := span.SpanContext().SpanID().String()
		s.batcher = NewBatchProcessor(0, 0, func(data []byte) {
			// Notes are dropped when the renderer falls behind.
			_ = t.send(msgStepLog{spanID: spanID, data: data}, false)
		})
	}
	return ctx, s
}

// EmitPlan records the planned steps on the current span and hands them to
// the renderer before returning.
func (t *OTelTracer) EmitPlan(ctx context.Context, steps []string) {
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.AddEvent("plan_emitted", trace.WithAttributes(
			attribute.StringSlice("steps", steps),
		))
	}

	if t.currentRenderer() == nil {
		return
	}
	if t.send(msgPlan{steps: steps}, true) {
		t.sync()
	}
}

// OTelSpan implements ports.Span using OpenTelemetry.
type OTelSpan struct {
	span    trace.Span
	tracer  *OTelTracer
	batcher *BatchProcessor
}

// End flushes the span's notes to the renderer and completes the span.
func (s *OTelSpan) End() {
	if s.batcher != nil {
		_ = s.batcher.Close()
		s.tracer.sync()
	}
	s.span.End()
}

// RecordError records an error and marks the span as failed.
func (s *OTelSpan) RecordError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// SetAttribute adds a key-value pair to the span.
func (s *OTelSpan) SetAttribute(key string, value any) {
	switch v := value.(type) {
	case string:
		s.span.SetAttributes(attribute.String(key, v))
	case int:
		s.span.SetAttributes(attribute.Int(key, v))
	case int64:
		s.span.SetAttributes(attribute.Int64(key, v))
	case float64:
		s.span.SetAttributes(attribute.Float64(key, v))
	case bool:
		s.span.SetAttributes(attribute.Bool(key, v))
	case []string:
		s.span.SetAttributes(attribute.StringSlice(key, v))
	default:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", v)))
	}
}

// Write records a note: through the batcher when a renderer is attached,
// otherwise as a span event.
func (s *OTelSpan) Write(p []byte) (int, error) {
	if s.batcher != nil {
		return s.batcher.Write(p)
	}
	s.span.AddEvent("note", trace.WithAttributes(attribute.String("message", string(p))))
	return len(p), nil
}
