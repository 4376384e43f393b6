// Copyright (c) 2026 The rcfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package rcfg

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/nil-go/rcfg/format"
	"github.com/nil-go/rcfg/internal/maps"
)

var (
	// ErrLoad is returned if the file given by `--config` could not be read.
	ErrLoad = errors.New("failed to load")
	// ErrParse is returned if a file could not be parsed by any recognized format.
	ErrParse = errors.New("failed to parse")
)

// Load loads the file with the given path as a Fragment tagged SourceFile.
//
// It returns nil without error if the file could not be read,
// or ErrParse if none of the candidate formats could parse its content.
func (s *Scope) Load(path string) (*Fragment, error) {
	bytes, err := s.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.Logger().Debug("Config file does not exist.", "file", path)
		} else {
			s.Logger().LogAttrs(
				context.Background(), slog.LevelWarn,
				"Error when reading config file, skip it.",
				slog.String("file", path),
				slog.Any("error", err),
			)
		}

		return nil, nil //nolint:nilnil
	}

	fragment, err := s.parse(path, bytes)
	if err != nil {
		return nil, err
	}

	return &fragment, nil
}

func (s *Scope) parse(path string, bytes []byte) (Fragment, error) {
	for _, candidate := range format.Candidates(path, s.formats()) {
		var values map[string]any
		if err := candidate.Unmarshal(bytes, &values); err != nil {
			s.Logger().Debug("Could not parse config file.", "file", path, "extensions", candidate.Extensions, "error", err)

			continue
		}
		if values == nil {
			// Empty document.
			values = make(map[string]any)
		}
		maps.Normalize(values)
		s.Logger().Debug("Loaded config file.", "file", path)

		return Fragment{Meta: Meta{Source: SourceFile, File: path}, Data: values}, nil
	}

	return Fragment{}, fmt.Errorf("%w %s", ErrParse, path)
}
