package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewNilMap(t *testing.T) {
	c := New(nil)
	assert.NotNil(t, c.Raw())
	assert.False(t, c.Has("anything"))
}

func TestString(t *testing.T) {
	c := New(map[string]any{"name": "judge", "count": 3})

	assert.Equal(t, "judge", c.String("name", "fallback"))
	assert.Equal(t, "fallback", c.String("missing", "fallback"))
	assert.Equal(t, "fallback", c.String("count", "fallback")) // wrong type
}

func TestBool(t *testing.T) {
	c := New(map[string]any{"enabled": true, "name": "x"})

	assert.True(t, c.Bool("enabled", false))
	assert.False(t, c.Bool("missing", false))
	assert.True(t, c.Bool("name", true)) // wrong type -> default
}

func TestInt(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
	}{
		{"int", 5, 5},
		{"int64", int64(6), 6},
		{"whole float", float64(7), 7},
		{"fractional float", 7.5, -1}, // default
		{"string", "8", -1},           // default
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(map[string]any{"key": tt.value})
			assert.Equal(t, tt.want, c.Int("key", -1))
		})
	}

	assert.Equal(t, -1, New(nil).Int("missing", -1))
}

func TestFloat(t *testing.T) {
	c := New(map[string]any{"f": 1.5, "i": 2, "i64": int64(3)})

	assert.Equal(t, 1.5, c.Float("f", 0))
	assert.Equal(t, 2.0, c.Float("i", 0))
	assert.Equal(t, 3.0, c.Float("i64", 0))
	assert.Equal(t, 9.9, c.Float("missing", 9.9))
}

func TestDuration(t *testing.T) {
	c := New(map[string]any{
		"str":     "1m30s",
		"badstr":  "not-a-duration",
		"seconds": 10,
		"frac":    0.5,
		"typed":   5 * time.Second,
	})

	assert.Equal(t, 90*time.Second, c.Duration("str", 0))
	assert.Equal(t, time.Minute, c.Duration("badstr", time.Minute))
	assert.Equal(t, 10*time.Second, c.Duration("seconds", 0))
	assert.Equal(t, 500*time.Millisecond, c.Duration("frac", 0))
	assert.Equal(t, 5*time.Second, c.Duration("typed", 0))
	assert.Equal(t, time.Hour, c.Duration("missing", time.Hour))
}

func TestStringSlice(t *testing.T) {
	c := New(map[string]any{
		"typed": []string{"a", "b"},
		"any":   []any{"c", "d"},
		"mixed": []any{"e", 1},
	})

	assert.Equal(t, []string{"a", "b"}, c.StringSlice("typed", nil))
	assert.Equal(t, []string{"c", "d"}, c.StringSlice("any", nil))
	assert.Equal(t, []string{"z"}, c.StringSlice("mixed", []string{"z"}))
	assert.Nil(t, c.StringSlice("missing", nil))
}

func TestSub(t *testing.T) {
	c := New(map[string]any{
		"db": map[string]any{"host": "localhost", "port": 5432},
	})

	db := c.Sub("db")
	assert.Equal(t, "localhost", db.String("host", ""))
	assert.Equal(t, 5432, db.Int("port", 0))

	// Missing or non-map keys yield an empty Config, not a panic
	assert.False(t, c.Sub("missing").Has("host"))
}
