// Copyright (c) 2026 The rcfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package format defines the configuration file formats rcfg recognizes.
//
// A Format associates file extensions with an unmarshal function,
// which must be able to unmarshal the file content into a map[string]any.
// JSON and YAML are recognized by default, TOML is available on demand.
package format

import (
	"encoding/json"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file format.
type Format struct {
	// Extensions claimed by the format, without the leading dot.
	// A format without extensions claims every file.
	Extensions []string
	// Unmarshal parses the file content into the value pointed to by out.
	Unmarshal func(data []byte, out any) error
}

// Claims reports whether the format claims files with the given extension.
func (f Format) Claims(ext string) bool {
	return len(f.Extensions) == 0 || slices.Contains(f.Extensions, ext)
}

//nolint:gochecknoglobals
var (
	// JSON parses files with `json` extension by [encoding/json].
	JSON = Format{Extensions: []string{"json"}, Unmarshal: json.Unmarshal}
	// YAML parses files with `yml` and `yaml` extensions by [gopkg.in/yaml.v3].
	YAML = Format{Extensions: []string{"yml", "yaml"}, Unmarshal: yaml.Unmarshal}
	// TOML parses files with `toml` extension by [github.com/pelletier/go-toml/v2].
	TOML = Format{Extensions: []string{"toml"}, Unmarshal: toml.Unmarshal}
)

// Default returns the formats recognized by default: JSON and YAML, in that order.
func Default() []Format {
	return []Format{JSON, YAML}
}

// Extensions returns all extensions claimed by the given formats,
// deduplicated and in the order they first appear.
func Extensions(formats ...Format) []string {
	var exts []string
	for _, format := range formats {
		for _, ext := range format.Extensions {
			if !slices.Contains(exts, ext) {
				exts = append(exts, ext)
			}
		}
	}

	return exts
}

// Candidates returns the formats which claim the extension of the given path,
// in their original order. If none of them claims it, all formats are returned.
func Candidates(path string, formats []Format) []Format {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")

	var candidates []Format
	for _, format := range formats {
		if format.Claims(ext) {
			candidates = append(candidates, format)
		}
	}
	if len(candidates) == 0 {
		return formats
	}

	return candidates
}
