// Copyright (c) 2026 The rcfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package rcfg

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/nil-go/rcfg/format"
)

// WithCwd provides the working directory where the upward searches start.
//
// By default, it uses the working directory of the process.
func WithCwd(dir string) Option {
	return func(options *options) {
		options.Cwd = dir
	}
}

// WithHome provides the home directory of the user.
//
// By default, it uses [os.UserHomeDir]. The per-user sources are skipped
// if the home directory could not be determined.
func WithHome(dir string) Option {
	return func(options *options) {
		options.Home = dir
	}
}

// WithEnviron provides the environment variables in the form "key=value".
//
// By default, it uses [os.Environ].
func WithEnviron(environ []string) Option {
	return func(options *options) {
		options.Environ = append([]string{}, environ...)
	}
}

// WithArgs provides the command-line arguments (without the program name)
// where the `--config <file>` override is looked up.
// A relative path given by `--config` is resolved against the working directory
// set by [WithCwd], not the working directory of the process.
//
// By default, it uses os.Args[1:].
func WithArgs(args []string) Option {
	return func(options *options) {
		options.Args = append([]string{}, args...)
	}
}

// WithFS provides the file system that all files are read from.
// It must be rooted at the root directory, so absolute paths are
// resolved by trimming the leading separator, e.g. `/etc/apprc` as `etc/apprc`.
//
// By default, it reads from the OS file system.
func WithFS(fsys fs.FS) Option {
	return func(options *options) {
		options.fsys = fsys
	}
}

// WithPlatform provides the operating system in the form of [runtime.GOOS].
// The system-wide sources under /etc are skipped on windows.
//
// By default, it uses runtime.GOOS.
func WithPlatform(goos string) Option {
	return func(options *options) {
		options.Platform = goos
	}
}

// WithManifest provides the file name of the project manifest.
// The nearest manifest bounds the upward search of rc files,
// and its field named after the application is a source.
//
// The default manifest is `package.json`.
func WithManifest(filename string) Option {
	return func(options *options) {
		options.Manifest = filename
	}
}

// WithManifestField provides the field name in the project manifest.
//
// The default field is the application name.
func WithManifestField(field string) Option {
	return func(options *options) {
		options.ManifestField = field
	}
}

// WithDefault provides the default configuration, which has the lowest priority.
func WithDefault(values map[string]any) Option {
	return func(options *options) {
		options.Default = values
	}
}

// WithSources replaces the default source list with the given sources.
// Each source takes precedence over the sources after it.
func WithSources(sources ...Source) Option {
	return WithSourceFunc(func([]Source) []Source {
		return sources
	})
}

// WithSourceFunc transforms the default source list with the given function.
func WithSourceFunc(fn func(defaults []Source) []Source) Option {
	return func(options *options) {
		options.sources = fn
	}
}

// WithFormats replaces the default formats (JSON and YAML) with the given formats.
// The formats are tried in order when a file extension is claimed by none or several of them.
func WithFormats(formats ...format.Format) Option {
	return WithFormatFunc(func([]format.Format) []format.Format {
		return formats
	})
}

// WithFormatFunc transforms the default formats with the given function,
// e.g. appending [format.TOML].
func WithFormatFunc(fn func(defaults []format.Format) []format.Format) Option {
	return func(options *options) {
		options.formats = fn
	}
}

// WithMerge provides the function used to merge the resolved fragments,
// which are ordered from the highest priority to the lowest.
//
// By default, it uses [Merge].
func WithMerge(merge func(fragments []Fragment) map[string]any) Option {
	return func(options *options) {
		options.merge = merge
	}
}

// WithLogger provides the slog.Logger for resolution.
//
// By default, it uses slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(options *options) {
		options.logger = logger
	}
}

// Option configures the resolution with specific options.
type Option func(*options)

type options struct {
	Scope

	fsys    fs.FS
	sources func([]Source) []Source
	formats func([]format.Format) []format.Format
	merge   func([]Fragment) map[string]any
}

func apply(name string, opts []Option) (options, error) {
	option := options{
		Scope: Scope{Name: name},
	}
	for _, opt := range opts {
		opt(&option)
	}

	if option.Cwd == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return options{}, fmt.Errorf("get working directory: %w", err)
		}
		option.Cwd = cwd
	}
	cwd, err := filepath.Abs(option.Cwd)
	if err != nil {
		return options{}, fmt.Errorf("resolve working directory: %w", err)
	}
	option.Cwd = cwd
	if option.Home == "" {
		// Ignore error: per-user sources are skipped without home directory.
		option.Home, _ = os.UserHomeDir()
	}
	if option.Environ == nil {
		option.Environ = os.Environ()
	}
	if option.Args == nil && len(os.Args) > 1 {
		option.Args = os.Args[1:]
	}
	if option.Platform == "" {
		option.Platform = runtime.GOOS
	}
	if option.Manifest == "" {
		option.Manifest = "package.json"
	}
	if option.ManifestField == "" {
		option.ManifestField = name
	}
	option.Formats = format.Default()
	if option.formats != nil {
		option.Formats = option.formats(option.Formats)
	}
	if option.merge == nil {
		option.merge = Merge
	}
	if option.logger == nil {
		option.logger = slog.Default()
	}
	option.logger = option.logger.WithGroup("rcfg")
	option.fs = fileSystem{fs: option.fsys}

	return option, nil
}
