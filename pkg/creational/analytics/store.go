// Package analytics provides process-wide usage counters with pluggable
// persistence.
//
// A Store keeps named monotonic counters. MemoryStore is for tests and
// short-lived processes; SQLiteStore persists counters across restarts.
// Recorder is the domain layer on top: run and submit counts for a judge
// process, reached through a lazily-initialized shared instance.
package analytics

import "errors"

// Store keeps named monotonic counters.
// Implementations must be safe for concurrent use.
type Store interface {
	// Increment adds 1 to a counter, creating it at 1 if absent, and
	// returns the new value.
	Increment(counter string) (int64, error)

	// Total returns the current value of a counter, 0 if absent.
	Total(counter string) (int64, error)

	// Totals returns a snapshot of all counters.
	Totals() (map[string]int64, error)

	// Reset zeroes all counters.
	Reset() error

	// Close releases any resources (connections, files).
	Close() error
}

// Sentinel errors for store operations.
var (
	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("analytics store closed")
)

// Counter names used by Recorder.
const (
	CounterRuns    = "runs"
	CounterSubmits = "submits"
)
