package singleton

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type service struct {
	id int
}

func TestNewHolderNilConstructor(t *testing.T) {
	assert.Panics(t, func() {
		NewHolder[service](nil)
	})
}

func TestInstanceConstructsOnce(t *testing.T) {
	calls := 0
	h := NewHolder(func() (*service, error) {
		calls++
		return &service{id: 7}, nil
	})

	first, err := h.Instance()
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, 7, first.id)

	second, err := h.Instance()
	require.NoError(t, err)

	// Same identity, not just equal values
	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, int64(1), h.Constructions())
}

func TestInstanceLazy(t *testing.T) {
	calls := 0
	h := NewHolder(func() (*service, error) {
		calls++
		return &service{}, nil
	})

	// Constructor must not run before first access
	assert.Equal(t, 0, calls)
	assert.False(t, h.Initialized())

	_, err := h.Instance()
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.True(t, h.Initialized())
}

func TestInstanceConcurrent(t *testing.T) {
	var constructed atomic.Int64
	h := NewHolder(func() (*service, error) {
		constructed.Add(1)
		return &service{id: 42}, nil
	})

	const callers = 100

	results := make([]*service, callers)
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			<-start
			v, err := h.Instance()
			if assert.NoError(t, err) {
				results[idx] = v
			}
		}(i)
	}

	close(start)
	wg.Wait()

	// Exactly one construction, all callers see the same identity
	assert.Equal(t, int64(1), constructed.Load())
	assert.Equal(t, int64(1), h.Constructions())
	for i := 1; i < callers; i++ {
		assert.Same(t, results[0], results[i])
	}
}

func TestInstanceConstructionFailureRetries(t *testing.T) {
	boom := errors.New("db unreachable")
	attempts := 0
	h := NewHolder(func() (*service, error) {
		attempts++
		if attempts == 1 {
			return nil, boom
		}
		return &service{id: 1}, nil
	}, WithName[service]("db"))

	// First attempt fails and is surfaced to the caller
	v, err := h.Instance()
	assert.Nil(t, v)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	var initErr *InitializationError
	require.ErrorAs(t, err, &initErr)
	assert.Equal(t, "db", initErr.Op)

	// Holder stayed uninitialized so the next call retries
	assert.False(t, h.Initialized())
	assert.Equal(t, int64(0), h.Constructions())

	v, err = h.Instance()
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, int64(1), h.Constructions())
}

func TestInstanceNilFromConstructor(t *testing.T) {
	h := NewHolder(func() (*service, error) {
		return nil, nil
	})

	_, err := h.Instance()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNilConstructor)
	assert.False(t, h.Initialized())
}

func TestMustInstance(t *testing.T) {
	h := NewHolder(func() (*service, error) {
		return &service{id: 3}, nil
	})

	v := h.MustInstance()
	assert.Equal(t, 3, v.id)
}

func TestMustInstancePanicsOnFailure(t *testing.T) {
	h := NewHolder(func() (*service, error) {
		return nil, errors.New("nope")
	})

	assert.Panics(t, func() {
		h.MustInstance()
	})
}

func TestInstanceConcurrentWithFailures(t *testing.T) {
	// First few constructions fail; eventually one succeeds. No caller may
	// ever observe a second distinct instance.
	var attempts atomic.Int64
	h := NewHolder(func() (*service, error) {
		if attempts.Add(1) <= 3 {
			return nil, errors.New("transient")
		}
		return &service{id: 9}, nil
	})

	const callers = 50

	var wg sync.WaitGroup
	var winner atomic.Pointer[service]

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				v, err := h.Instance()
				if err != nil {
					continue
				}
				if !winner.CompareAndSwap(nil, v) {
					assert.Same(t, winner.Load(), v)
				}
				return
			}
		}()
	}

	wg.Wait()
	assert.Equal(t, int64(1), h.Constructions())
}
