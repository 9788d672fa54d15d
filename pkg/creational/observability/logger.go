// Package observability provides structured logging, metrics, and tracing
// for creational: singleton construction, factory creation, and builder
// builds.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds holder context to a logger.
// Returns a new logger with holder and attempt fields.
func EnrichLogger(logger *slog.Logger, holder string, attempt int) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("holder", holder),
		slog.Int("attempt", attempt),
	)
}

// LogConstructionStart logs the start of a singleton construction.
func LogConstructionStart(logger *slog.Logger, holder string) {
	if logger == nil {
		return
	}
	logger.Debug("singleton construction starting",
		slog.String("holder", holder),
	)
}

// LogConstructionComplete logs a successful singleton construction.
func LogConstructionComplete(logger *slog.Logger, holder string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Info("singleton constructed",
		slog.String("holder", holder),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogConstructionError logs a failed singleton construction. The holder
// stays uninitialized, so a retry may follow.
func LogConstructionError(logger *slog.Logger, holder string, err error) {
	if logger == nil {
		return
	}
	logger.Error("singleton construction failed",
		slog.String("holder", holder),
		slog.String("error", err.Error()),
	)
}

// LogFactoryCreate logs a factory producing a product.
func LogFactoryCreate(logger *slog.Logger, kind, product string) {
	if logger == nil {
		return
	}
	logger.Debug("factory created product",
		slog.String("kind", kind),
		slog.String("product", product),
	)
}

// LogFactoryUnknownKind logs a lookup for an unregistered kind.
func LogFactoryUnknownKind(logger *slog.Logger, kind string) {
	if logger == nil {
		return
	}
	logger.Warn("unknown factory kind requested",
		slog.String("kind", kind),
	)
}

// LogBuildComplete logs a successful builder Build.
func LogBuildComplete(logger *slog.Logger, product, id string) {
	if logger == nil {
		return
	}
	logger.Debug("build completed",
		slog.String("product", product),
		slog.String("id", id),
	)
}

// LogBuildError logs a failed builder Build.
func LogBuildError(logger *slog.Logger, product string, err error) {
	if logger == nil {
		return
	}
	logger.Error("build failed",
		slog.String("product", product),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in
// milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
