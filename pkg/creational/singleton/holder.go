package singleton

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/randalmurphal/creational/pkg/creational/observability"
)

// Holder lazily constructs and thereafter always returns the same shared
// value, safely under concurrent access.
//
// The zero value is not usable; create holders with NewHolder. A holder
// moves through exactly two states, uninitialized then initialized, and
// never transitions back. The one construction happens inside the mutex;
// every access after that takes the lock-free fast path.
//
// Construction is observable: wire a logger, metrics recorder, or span
// manager with the holder options and the guarded construction step emits
// through them. Defaults are no-ops.
type Holder[T any] struct {
	instance atomic.Pointer[T]

	mu    sync.Mutex
	build func() (*T, error)

	// constructions counts successful constructor runs. It is incremented
	// inside the guarded construction step, so it can never exceed 1.
	constructions atomic.Int64

	// name is used in error, log, and metric context. Optional.
	name string

	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// HolderOption configures a holder.
type HolderOption[T any] func(*Holder[T])

// WithName sets the name reported in initialization errors, logs, and
// metrics.
func WithName[T any](name string) HolderOption[T] {
	return func(h *Holder[T]) {
		h.name = name
	}
}

// WithLogger sets the logger used around the construction step.
// A nil logger disables logging (the default).
func WithLogger[T any](logger *slog.Logger) HolderOption[T] {
	return func(h *Holder[T]) {
		h.logger = logger
	}
}

// WithMetrics sets the recorder for construction attempts and failures.
// Default: observability.NoopMetrics.
func WithMetrics[T any](metrics observability.MetricsRecorder) HolderOption[T] {
	return func(h *Holder[T]) {
		if metrics != nil {
			h.metrics = metrics
		}
	}
}

// WithSpans sets the span manager covering the construction step.
// Default: observability.NoopSpanManager.
func WithSpans[T any](spans observability.SpanManager) HolderOption[T] {
	return func(h *Holder[T]) {
		if spans != nil {
			h.spans = spans
		}
	}
}

// NewHolder creates a holder around the given constructor. The constructor
// is not called until the first Instance call.
//
// Panics if build is nil.
func NewHolder[T any](build func() (*T, error), opts ...HolderOption[T]) *Holder[T] {
	if build == nil {
		panic("singleton: " + ErrNilConstructor.Error())
	}
	h := &Holder[T]{
		build:   build,
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Instance returns the shared value, constructing it on first call.
//
// Safe to call from any number of goroutines. After any call returns
// successfully, every caller observes the same pointer. The constructor
// runs at most once per successful initialization; if it fails, the error
// is returned wrapped in *InitializationError, the holder remains
// uninitialized, and a later call retries.
func (h *Holder[T]) Instance() (*T, error) {
	// Fast path: no lock once initialized. The atomic load pairs with the
	// atomic store below, so a non-nil result is always fully constructed.
	if v := h.instance.Load(); v != nil {
		return v, nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	// Second check: another goroutine may have initialized between the
	// fast-path read and our lock acquisition.
	if v := h.instance.Load(); v != nil {
		return v, nil
	}

	// Only the caller that wins the race reaches the construction step, so
	// spans and metrics see one attempt per constructor run.
	observability.LogConstructionStart(h.logger, h.name)
	ctx, span := h.spans.StartConstructionSpan(context.Background(), h.name)

	start := time.Now()
	v, err := h.build()
	duration := time.Since(start)

	if err == nil && v == nil {
		err = ErrNilConstructor
	}

	h.metrics.RecordConstruction(ctx, h.name, duration, err)
	h.spans.EndSpanWithError(span, err)

	if err != nil {
		observability.LogConstructionError(h.logger, h.name, err)
		return nil, &InitializationError{Op: h.name, Err: err}
	}

	observability.LogConstructionComplete(h.logger, h.name, float64(duration.Milliseconds()))
	h.constructions.Add(1)
	h.instance.Store(v)
	return v, nil
}

// MustInstance returns the shared value, panicking if construction fails.
func (h *Holder[T]) MustInstance() *T {
	v, err := h.Instance()
	if err != nil {
		panic(err)
	}
	return v
}

// Initialized reports whether the value has been constructed.
// It never blocks.
func (h *Holder[T]) Initialized() bool {
	return h.instance.Load() != nil
}

// Constructions returns how many times the constructor has run
// successfully. The holder invariant keeps this at 0 or 1.
func (h *Holder[T]) Constructions() int64 {
	return h.constructions.Load()
}
