//go:build unit || e2e

package testutil

// Field sets key on a request map; a nil value removes the key so required-field cases stay one-liners.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// Without drops several keys at once, e.g. both ends of a time range.
func Without(keys ...string) func(m map[string]any) {
	return func(m map[string]any) {
		for _, k := range keys {
			delete(m, k)
		}
	}
}
