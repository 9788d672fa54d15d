package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the creational tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("creational")

// SpanManager handles trace span lifecycle around object creation.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartConstructionSpan starts a span covering a singleton
	// construction. Only the caller that wins the initialization race
	// should hold one of these.
	StartConstructionSpan(ctx context.Context, holder string) (context.Context, trace.Span)

	// StartCreateSpan starts a span for a factory creating a product.
	StartCreateSpan(ctx context.Context, kind string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the
// provider before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartConstructionSpan starts a span covering a singleton construction.
func (m *otelSpanManager) StartConstructionSpan(ctx context.Context, holder string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "creational.singleton.construct",
		trace.WithAttributes(
			attribute.String("holder", holder),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartCreateSpan starts a span for a factory creating a product.
func (m *otelSpanManager) StartCreateSpan(ctx context.Context, kind string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "creational.factory.create."+kind,
		trace.WithAttributes(
			attribute.String("kind", kind),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
