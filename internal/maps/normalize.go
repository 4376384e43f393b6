// Copyright (c) 2026 The rcfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package maps

import "fmt"

// Normalize converts nested map[any]any (e.g. YAML mappings with non-string keys)
// into map[string]any with keys formatted by fmt.Sprint, recursing into []any.
// Other values are returned as is.
func Normalize(value any) any {
	switch val := value.(type) {
	case map[string]any:
		for k, v := range val {
			val[k] = Normalize(v)
		}

		return val
	case map[any]any:
		values := make(map[string]any, len(val))
		for k, v := range val {
			values[fmt.Sprint(k)] = Normalize(v)
		}

		return values
	case []any:
		for i, v := range val {
			val[i] = Normalize(v)
		}

		return val
	default:
		return value
	}
}
