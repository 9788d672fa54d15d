package benchmarks

import (
	"testing"

	"github.com/randalmurphal/creational/pkg/creational/singleton"
)

// payload stands in for a realistic shared value.
type payload struct {
	values [16]int64
}

func newPayload() (*payload, error) {
	return &payload{}, nil
}

// BenchmarkHolderFastPath measures access cost after initialization, the
// case double-checked locking optimizes for.
func BenchmarkHolderFastPath(b *testing.B) {
	h := singleton.NewHolder(newPayload)
	if _, err := h.Instance(); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := h.Instance(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkHolderFastPathParallel measures contended reads after
// initialization. The fast path takes no lock, so this should scale.
func BenchmarkHolderFastPathParallel(b *testing.B) {
	h := singleton.NewHolder(newPayload)
	if _, err := h.Instance(); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := h.Instance(); err != nil {
				b.Fatal(err)
			}
		}
	})
}

// BenchmarkSynchronized measures the fully-locked variant, which pays the
// mutex on every access.
func BenchmarkSynchronized(b *testing.B) {
	s := singleton.NewSynchronized(newPayload)
	if _, err := s.Instance(); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Instance(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSynchronizedParallel shows the contention cost the fully-locked
// variant pays that Holder avoids.
func BenchmarkSynchronizedParallel(b *testing.B) {
	s := singleton.NewSynchronized(newPayload)
	if _, err := s.Instance(); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := s.Instance(); err != nil {
				b.Fatal(err)
			}
		}
	})
}

// BenchmarkLazy measures the sync.Once variant.
func BenchmarkLazy(b *testing.B) {
	l := singleton.NewLazy(func() *payload { return &payload{} })
	l.Value()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Value()
	}
}

// BenchmarkLazyParallel measures contended sync.Once reads.
func BenchmarkLazyParallel(b *testing.B) {
	l := singleton.NewLazy(func() *payload { return &payload{} })
	l.Value()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Value()
		}
	})
}

// BenchmarkHolderFirstAccess measures the full initialization path,
// holder creation included.
func BenchmarkHolderFirstAccess(b *testing.B) {
	for i := 0; i < b.N; i++ {
		h := singleton.NewHolder(newPayload)
		if _, err := h.Instance(); err != nil {
			b.Fatal(err)
		}
	}
}
