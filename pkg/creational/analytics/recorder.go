package analytics

import (
	"github.com/randalmurphal/creational/pkg/creational/singleton"
)

// Recorder tracks run and submit counts for a judge process on top of a
// Store. Recorders are cheap to create around an injected store; the
// process-wide instance is reached through Shared.
type Recorder struct {
	store Store
}

// NewRecorder creates a recorder over the given store.
func NewRecorder(store Store) *Recorder {
	return &Recorder{store: store}
}

// RecordRun counts one run and returns the running total.
func (r *Recorder) RecordRun() (int64, error) {
	return r.store.Increment(CounterRuns)
}

// RecordSubmit counts one submission and returns the running total.
func (r *Recorder) RecordSubmit() (int64, error) {
	return r.store.Increment(CounterSubmits)
}

// Runs returns the total run count.
func (r *Recorder) Runs() (int64, error) {
	return r.store.Total(CounterRuns)
}

// Submits returns the total submit count.
func (r *Recorder) Submits() (int64, error) {
	return r.store.Total(CounterSubmits)
}

// sharedRecorder guards the one process-wide recorder. It defaults to an
// in-memory store; processes that want persistence build their own
// Recorder over a SQLiteStore and inject it where needed.
var sharedRecorder = singleton.NewHolder(func() (*Recorder, error) {
	return NewRecorder(NewMemoryStore()), nil
}, singleton.WithName[Recorder]("analytics recorder"))

// Shared returns the process-wide recorder, constructing it on first call.
// Every caller receives the same instance.
func Shared() *Recorder {
	return sharedRecorder.MustInstance()
}
