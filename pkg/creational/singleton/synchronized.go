package singleton

import "sync"

// Synchronized is a lazy holder that takes its mutex on every access,
// including after initialization. It provides the same construct-once and
// same-identity guarantees as Holder but without the lock-free fast path,
// so every call pays the lock cost.
//
// It exists for comparison against Holder; see the benchmarks directory.
// New code should use Holder.
type Synchronized[T any] struct {
	mu            sync.Mutex
	instance      *T
	build         func() (*T, error)
	constructions int64
}

// NewSynchronized creates a fully-locked lazy holder.
//
// Panics if build is nil.
func NewSynchronized[T any](build func() (*T, error)) *Synchronized[T] {
	if build == nil {
		panic("singleton: " + ErrNilConstructor.Error())
	}
	return &Synchronized[T]{build: build}
}

// Instance returns the shared value, constructing it under the lock on
// first call. Construction failures leave the holder uninitialized so a
// later call retries.
func (s *Synchronized[T]) Instance() (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.instance != nil {
		return s.instance, nil
	}

	v, err := s.build()
	if err != nil {
		return nil, &InitializationError{Err: err}
	}
	if v == nil {
		return nil, &InitializationError{Err: ErrNilConstructor}
	}

	s.constructions++
	s.instance = v
	return v, nil
}

// Constructions returns how many times the constructor has run
// successfully. At most 1.
func (s *Synchronized[T]) Constructions() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.constructions
}
