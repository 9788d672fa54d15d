package singleton

// Eager holds a value constructed up front, at NewEager time, rather than
// on first access. The accessor never blocks and never fails.
//
// Eager initialization trades startup cost for access speed: the value
// exists even if it is never used. Prefer Holder or Lazy when construction
// is expensive or conditional.
type Eager[T any] struct {
	instance *T
}

// NewEager constructs the value immediately and returns its holder.
// A construction failure is returned here, before any accessor exists.
func NewEager[T any](build func() (*T, error)) (*Eager[T], error) {
	if build == nil {
		return nil, ErrNilConstructor
	}
	v, err := build()
	if err != nil {
		return nil, &InitializationError{Err: err}
	}
	if v == nil {
		return nil, &InitializationError{Err: ErrNilConstructor}
	}
	return &Eager[T]{instance: v}, nil
}

// Instance returns the shared value.
func (e *Eager[T]) Instance() *T {
	return e.instance
}
