// Copyright (c) 2026 The rcfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package rcfg

import (
	"log/slog"

	"github.com/nil-go/rcfg/format"
)

// Scope is the state of a single resolution that Resolvers read from.
// It is constructed for every resolution and must not be modified by Resolvers.
//
// A Scope built by the caller reads from the OS file system, logs to slog.Default()
// and resolves sequentially.
type Scope struct {
	// Name is the application name.
	Name string
	// Cwd is the absolute working directory.
	Cwd string
	// Home is the home directory of the user, or empty if unknown.
	Home string
	// Platform is the operating system in the form of runtime.GOOS.
	Platform string
	// Manifest is the file name of the project manifest.
	Manifest string
	// ManifestField is the field name in the project manifest.
	ManifestField string
	// Environ is the environment variables in the form "key=value".
	Environ []string
	// Args is the command-line arguments.
	Args []string
	// Formats is the recognized file formats.
	Formats []format.Format
	// Default is the default configuration, if any.
	Default map[string]any

	fs     fileSystem
	logger *slog.Logger
	runner runner
}

// Logger returns the slog.Logger of the resolution,
// or slog.Default() if the Scope has not been created by a resolution.
func (s *Scope) Logger() *slog.Logger {
	if s.logger == nil {
		return slog.Default()
	}

	return s.logger
}

func (s *Scope) each(n int, fn func(int) error) error {
	if s.runner == nil {
		return sequential{}.each(n, fn)
	}

	return s.runner.each(n, fn)
}

func (s *Scope) formats() []format.Format {
	if s.Formats == nil {
		return format.Default()
	}

	return s.Formats
}
