package factory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/randalmurphal/creational/pkg/creational/observability"
)

// Package-level observability sinks for factory lookups. Both selectors
// (ForKind, NewPayment) report through these; the defaults are silent.
var (
	observeMu      sync.RWMutex
	observeLogger  *slog.Logger
	observeMetrics observability.MetricsRecorder = observability.NoopMetrics{}
)

// SetObservability wires a logger and metrics recorder into factory
// lookups. A nil logger disables logging; a nil metrics recorder resets
// to the no-op.
func SetObservability(logger *slog.Logger, metrics observability.MetricsRecorder) {
	observeMu.Lock()
	defer observeMu.Unlock()
	observeLogger = logger
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	observeMetrics = metrics
}

// observeCreation records one factory lookup outcome.
func observeCreation(kind, product string, err error) {
	observeMu.RLock()
	logger, metrics := observeLogger, observeMetrics
	observeMu.RUnlock()

	metrics.RecordFactoryCreation(context.Background(), kind, err)
	if err != nil {
		observability.LogFactoryUnknownKind(logger, kind)
		return
	}
	observability.LogFactoryCreate(logger, kind, product)
}
