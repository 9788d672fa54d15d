package singleton

import "sync/atomic"

// Guard enforces a construct-once contract from inside a type's own
// constructor. The zero value is ready to use.
//
// A type whose instances must only be created through a singleton accessor
// embeds a package-level Guard in its construction path: the first Acquire
// succeeds, and every later attempt, from any goroutine, fails with
// ErrIllegalConstruction. The compare-and-swap makes the decision atomic,
// so two racing constructors can never both succeed.
type Guard struct {
	acquired atomic.Bool
}

// Acquire claims the one permitted construction. It succeeds exactly once;
// all later calls return ErrIllegalConstruction.
func (g *Guard) Acquire() error {
	if !g.acquired.CompareAndSwap(false, true) {
		return ErrIllegalConstruction
	}
	return nil
}

// Release returns the guard to its unacquired state. Intended for
// constructors that fail after acquiring, so the next attempt can proceed.
func (g *Guard) Release() {
	g.acquired.Store(false)
}

// Acquired reports whether the construction slot has been claimed.
func (g *Guard) Acquired() bool {
	return g.acquired.Load()
}
