package analytics

import "sync"

// MemoryStore is an in-memory counter store. Data is lost when the process
// exits.
type MemoryStore struct {
	mu       sync.RWMutex
	counters map[string]int64
	closed   bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		counters: make(map[string]int64),
	}
}

// Increment implements Store.
func (m *MemoryStore) Increment(counter string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return 0, ErrStoreClosed
	}

	m.counters[counter]++
	return m.counters[counter], nil
}

// Total implements Store.
func (m *MemoryStore) Total(counter string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return 0, ErrStoreClosed
	}
	return m.counters[counter], nil
}

// Totals implements Store.
func (m *MemoryStore) Totals() (map[string]int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	snapshot := make(map[string]int64, len(m.counters))
	for k, v := range m.counters {
		snapshot[k] = v
	}
	return snapshot, nil
}

// Reset implements Store.
func (m *MemoryStore) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	m.counters = make(map[string]int64)
	return nil
}

// Close implements Store. Closing twice is a no-op.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
