// Copyright (c) 2026 The rcfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package rcfg

import (
	"slices"

	"github.com/nil-go/rcfg/internal/maps"
)

// Merge recursively merges the data of the given fragments into a new map.
// The fragments are ordered from the highest priority to the lowest.
//
// Key conflicts are resolved by preferring the fragment with higher priority,
// or recursively descending, if both values are map.
// The fragments are not modified.
func Merge(fragments []Fragment) map[string]any {
	values := make(map[string]any)
	for _, fragment := range slices.Backward(fragments) {
		maps.Merge(values, fragment.Data)
	}

	return values
}
