// Copyright (c) 2026 The rcfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package rcfg

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/nil-go/rcfg/internal/maps"
)

// Unmarshal decodes the value under the given path of the merged configuration
// into the object pointed to by target. The path is split by `.`,
// and the empty path decodes the whole configuration.
//
// It supports `rcfg` tags on struct fields, and converts strings
// (e.g. from environment variables) into the type of the target.
func Unmarshal(config map[string]any, path string, target any) error {
	decoder, err := mapstructure.NewDecoder(
		&mapstructure.DecoderConfig{
			Result:           target,
			WeaklyTypedInput: true,
			DecodeHook:       defaultDecodeHook,
			TagName:          "rcfg",
		},
	)
	if err != nil {
		return fmt.Errorf("new decoder: %w", err)
	}

	if err := decoder.Decode(maps.Sub(config, strings.Split(path, "."))); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	return nil
}

// Get returns the value under the given path of the merged configuration.
// It returns zero value if there is an error.
func Get[T any](config map[string]any, path string) T { //nolint:ireturn
	var value T
	if err := Unmarshal(config, path, &value); err != nil {
		slog.Error(
			"Could not read config, return empty value instead.",
			"error", err,
			"path", path,
			"type", reflect.TypeOf(value),
		)

		return *new(T)
	}

	return value
}

//nolint:gochecknoglobals
var defaultDecodeHook = mapstructure.ComposeDecodeHookFunc(
	mapstructure.StringToTimeDurationHookFunc(),
	mapstructure.StringToSliceHookFunc(","),
	mapstructure.TextUnmarshallerHookFunc(),
)
