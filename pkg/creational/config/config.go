package config

import "time"

// Config wraps a map[string]any with type-safe accessors. Every accessor
// returns the given default when the key is missing or the value cannot be
// converted, so call sites never branch on lookup errors.
type Config struct {
	values map[string]any
}

// New creates a Config from the given map. A nil map yields an empty Config.
func New(values map[string]any) Config {
	if values == nil {
		values = make(map[string]any)
	}
	return Config{values: values}
}

// Has returns true if the key exists.
func (c Config) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// String returns the string for key, or defaultVal.
func (c Config) String(key, defaultVal string) string {
	if s, ok := c.values[key].(string); ok {
		return s
	}
	return defaultVal
}

// Bool returns the bool for key, or defaultVal.
func (c Config) Bool(key string, defaultVal bool) bool {
	if b, ok := c.values[key].(bool); ok {
		return b
	}
	return defaultVal
}

// Int returns the int for key, or defaultVal.
//
// JSON and YAML decoders produce different numeric types, so int, int64,
// and whole-valued float64 are all accepted.
func (c Config) Int(key string, defaultVal int) int {
	switch v := c.values[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		if v == float64(int(v)) {
			return int(v)
		}
	}
	return defaultVal
}

// Float returns the float64 for key, or defaultVal. Integer values are
// widened.
func (c Config) Float(key string, defaultVal float64) float64 {
	switch v := c.values[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return defaultVal
}

// Duration returns the duration for key, or defaultVal.
//
// Strings are parsed with time.ParseDuration; bare numbers are taken as
// seconds.
func (c Config) Duration(key string, defaultVal time.Duration) time.Duration {
	switch v := c.values[key].(type) {
	case string:
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	case int:
		return time.Duration(v) * time.Second
	case int64:
		return time.Duration(v) * time.Second
	case float64:
		return time.Duration(v * float64(time.Second))
	case time.Duration:
		return v
	}
	return defaultVal
}

// StringSlice returns the string slice for key, or defaultVal. A []any
// value converts only if every element is a string.
func (c Config) StringSlice(key string, defaultVal []string) []string {
	switch v := c.values[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return defaultVal
			}
			out = append(out, s)
		}
		return out
	}
	return defaultVal
}

// Sub returns the nested Config under key, or an empty Config if the key
// is missing or not a map.
func (c Config) Sub(key string) Config {
	if m, ok := c.values[key].(map[string]any); ok {
		return New(m)
	}
	return New(nil)
}

// Raw returns the underlying map. Callers must not modify it.
func (c Config) Raw() map[string]any {
	return c.values
}
