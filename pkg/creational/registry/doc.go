// Package registry provides a generic thread-safe registry, the backbone
// for factory selection and per-key lazy initialization.
//
// Registry is built for read-heavy workloads using sync.RWMutex. Keys may
// be any comparable type and values any type.
//
// # Factory Selection
//
// Register constructors under their product names, then look them up at
// the decision point:
//
//	type PaymentFactory func(amount float64) (Payment, error)
//
//	factories := registry.New[string, PaymentFactory]()
//	factories.Register("card", newCardPayment)
//	factories.Register("upi", newUPIPayment)
//
//	factory, ok := factories.Get("card")
//	if !ok {
//	    return ErrUnknownPaymentMethod
//	}
//	payment, err := factory(1500)
//
// # Per-Key Singletons
//
// GetOrCreate gives each key its own construct-once guarantee:
//
//	pools := registry.New[string, *Pool]()
//	pool := pools.GetOrCreate("users_db", func() *Pool {
//	    return NewPool("users_db")
//	})
//
// The create function runs at most once per key, even when many goroutines
// race on the same key. GetOrCreateErr is the fallible variant: a failed
// create stores nothing, the error goes to the caller that triggered it,
// and a later call may retry.
package registry
