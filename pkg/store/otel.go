package store

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for store instrumentation.
const defaultTracerName = "sessionslot"

// TraceConfig configures the OpenTelemetry store instrumentation.
type TraceConfig struct {
	// TracerName is the name of the tracer (default: "sessionslot").
	TracerName string

	// IncludeKey includes the entry key in span attributes.
	// Keys may contain sensitive information - enabled by default since
	// slot keys are normally static identifiers chosen by the caller.
	IncludeKey bool

	// TracerProvider supplies the tracer.
	// Default: the global otel.GetTracerProvider().
	TracerProvider trace.TracerProvider

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// TraceOption configures the OpenTelemetry store instrumentation.
type TraceOption func(*TraceConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TraceOption {
	return func(c *TraceConfig) {
		c.TracerName = name
	}
}

// WithIncludeKey enables/disables including the entry key in spans.
func WithIncludeKey(include bool) TraceOption {
	return func(c *TraceConfig) {
		c.IncludeKey = include
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) TraceOption {
	return func(c *TraceConfig) {
		c.TracerProvider = tp
	}
}

// TracedStore wraps a Store with OpenTelemetry spans.
type TracedStore struct {
	next   Store
	config TraceConfig
}

// Trace wraps a store so every operation creates an OpenTelemetry span.
//
// Spans created:
//   - store.get, store.set, store.delete
//
// Each span carries the store.key attribute (unless disabled) and an error
// status when the operation fails.
func Trace(next Store, opts ...TraceOption) *TracedStore {
	config := TraceConfig{
		TracerName: defaultTracerName,
		IncludeKey: true,
	}
	for _, opt := range opts {
		opt(&config)
	}

	if config.TracerProvider != nil {
		config.tracer = config.TracerProvider.Tracer(config.TracerName)
	} else {
		config.tracer = otel.Tracer(config.TracerName)
	}

	return &TracedStore{
		next:   next,
		config: config,
	}
}

// startSpan begins a span for one store operation.
func (s *TracedStore) startSpan(ctx context.Context, op, key string) (context.Context, trace.Span) {
	ctx, span := s.config.tracer.Start(ctx, "store."+op,
		trace.WithSpanKind(trace.SpanKindClient),
	)
	if s.config.IncludeKey {
		span.SetAttributes(attribute.String("store.key", key))
	}
	return ctx, span
}

// finishSpan records the outcome and ends the span.
func finishSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// Get retrieves the value for key inside a store.get span.
func (s *TracedStore) Get(ctx context.Context, key string) (string, bool, error) {
	ctx, span := s.startSpan(ctx, "get", key)
	v, ok, err := s.next.Get(ctx, key)
	span.SetAttributes(attribute.Bool("store.hit", ok))
	finishSpan(span, err)
	return v, ok, err
}

// Set writes the value for key inside a store.set span.
func (s *TracedStore) Set(ctx context.Context, key, value string) error {
	ctx, span := s.startSpan(ctx, "set", key)
	span.SetAttributes(attribute.Int("store.value_bytes", len(value)))
	err := s.next.Set(ctx, key, value)
	finishSpan(span, err)
	return err
}

// Delete removes the entry for key inside a store.delete span.
func (s *TracedStore) Delete(ctx context.Context, key string) error {
	ctx, span := s.startSpan(ctx, "delete", key)
	err := s.next.Delete(ctx, key)
	finishSpan(span, err)
	return err
}
