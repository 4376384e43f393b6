// Copyright (c) 2026 The rcfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package maps

// Clone returns a deep copy of nested map[string]any and []any values.
// Other values are returned as is.
func Clone(value any) any {
	switch val := value.(type) {
	case map[string]any:
		values := make(map[string]any, len(val))
		for k, v := range val {
			values[k] = Clone(v)
		}

		return values
	case []any:
		values := make([]any, len(val))
		for i, v := range val {
			values[i] = Clone(v)
		}

		return values
	default:
		return value
	}
}
