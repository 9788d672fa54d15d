package singleton

import "sync"

// Lazy computes a value once on first access and caches it for every
// subsequent call. Use it when the constructor cannot fail; for fallible
// construction with retry, use Holder.
//
// The once-guarded initialization is the Go analogue of holder-class
// lazy loading: nothing runs until the first Value call, and the runtime
// guarantees exactly one execution with full visibility to all callers.
type Lazy[T any] struct {
	once   sync.Once
	result T
	f      func() T
}

// NewLazy creates a Lazy with the given constructor.
//
// Panics if f is nil.
func NewLazy[T any](f func() T) *Lazy[T] {
	if f == nil {
		panic("singleton: " + ErrNilConstructor.Error())
	}
	return &Lazy[T]{f: f}
}

// Value returns the computed value, computing it on first access.
func (l *Lazy[T]) Value() T {
	l.once.Do(func() {
		l.result = l.f()
	})
	return l.result
}
