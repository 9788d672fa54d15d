package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records creational metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordConstruction records a singleton construction attempt with its
	// duration and error status.
	RecordConstruction(ctx context.Context, holder string, duration time.Duration, err error)

	// RecordFactoryCreation records a factory producing (or failing to
	// produce) a product of the given kind.
	RecordFactoryCreation(ctx context.Context, kind string, err error)

	// RecordBuild records a builder Build call.
	RecordBuild(ctx context.Context, product string, success bool)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	constructions    metric.Int64Counter
	constructionTime metric.Float64Histogram
	initErrors       metric.Int64Counter
	factoryCreations metric.Int64Counter
	builds           metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("creational")

	constructions, err := meter.Int64Counter("creational.singleton.constructions",
		metric.WithDescription("Number of singleton construction attempts"),
	)
	if err != nil {
		return nil, err
	}

	constructionTime, err := meter.Float64Histogram("creational.singleton.construction_ms",
		metric.WithDescription("Singleton construction latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	initErrors, err := meter.Int64Counter("creational.singleton.init_errors",
		metric.WithDescription("Number of failed singleton constructions"),
	)
	if err != nil {
		return nil, err
	}

	factoryCreations, err := meter.Int64Counter("creational.factory.creations",
		metric.WithDescription("Number of factory product creations"),
	)
	if err != nil {
		return nil, err
	}

	builds, err := meter.Int64Counter("creational.builder.builds",
		metric.WithDescription("Number of builder Build calls"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		constructions:    constructions,
		constructionTime: constructionTime,
		initErrors:       initErrors,
		factoryCreations: factoryCreations,
		builds:           builds,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordConstruction records a singleton construction attempt.
func (m *otelMetrics) RecordConstruction(ctx context.Context, holder string, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("holder", holder),
	}

	m.constructions.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.constructionTime.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))

	if err != nil {
		m.initErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordFactoryCreation records a factory creation.
func (m *otelMetrics) RecordFactoryCreation(ctx context.Context, kind string, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("kind", kind),
		attribute.Bool("success", err == nil),
	}
	m.factoryCreations.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordBuild records a builder Build call.
func (m *otelMetrics) RecordBuild(ctx context.Context, product string, success bool) {
	attrs := []attribute.KeyValue{
		attribute.String("product", product),
		attribute.Bool("success", success),
	}
	m.builds.Add(ctx, 1, metric.WithAttributes(attrs...))
}
