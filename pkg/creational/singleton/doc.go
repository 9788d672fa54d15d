// Package singleton provides thread-safe lazy initialization primitives.
//
// The package centers on Holder, an explicit, injectable singleton holder
// that guarantees exactly one successful construction of a shared value no
// matter how many goroutines race on first access. Holders are ordinary
// values with a documented lifecycle rather than hidden package globals,
// so the construct-once contract stays auditable and testable.
//
// # Holder
//
// Create a holder with the constructor for the underlying value, then call
// Instance from any goroutine:
//
//	holder := singleton.NewHolder(func() (*Database, error) {
//	    return openDatabase("app.db")
//	})
//
//	db, err := holder.Instance()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Instance uses double-checked locking: an atomic pointer read on the fast
// path (no lock once initialized) and a mutex-guarded second check around
// the one construction. All callers observe the same pointer identity.
//
// If construction fails, the error is returned to the caller that
// triggered it, the holder stays uninitialized, and a later call may retry:
//
//	db, err := holder.Instance() // fails, holder still empty
//	db, err = holder.Instance()  // retries construction
//
// # Variants
//
// Lazy is a sync.Once-based holder for constructors that cannot fail.
// Eager constructs its value up front and its accessor never blocks.
// Synchronized locks on every access; it exists for comparison and is
// strictly slower than Holder after first initialization.
//
// # Guard
//
// Guard enforces the construct-once contract from inside a type's own
// constructor. The first Acquire succeeds; every later one returns
// ErrIllegalConstruction, so direct construction outside the holder's
// accessor is rejected:
//
//	var managerGuard singleton.Guard
//
//	func NewManager() (*Manager, error) {
//	    if err := managerGuard.Acquire(); err != nil {
//	        return nil, err // singleton.ErrIllegalConstruction
//	    }
//	    return &Manager{}, nil
//	}
//
// # Thread Safety
//
// All types in this package are safe for concurrent use. The mutex
// acquire/release in Holder establishes the happens-before edge that makes
// the constructed value fully visible to every caller; the fast-path read
// is atomic, so no partially-constructed value is ever observable.
package singleton
