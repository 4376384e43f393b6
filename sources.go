// Copyright (c) 2026 The rcfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package rcfg

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/nil-go/rcfg/format"
	"github.com/nil-go/rcfg/internal/maps"
)

// DefaultSources returns the default source list for the given Scope,
// ordered from the highest priority to the lowest:
//
//   - environment variables prefixed with `<name>_`, see [Env];
//   - the file given by `--config <file>`, see [CLI];
//   - the nearest `.<name>rc` or `.<name>` file, see [Nearest];
//   - the `<name>` field in the nearest project manifest, see [Manifest];
//   - `~/.<name>rc` and `~/.<name>`, then `~/.<name>/config`;
//   - `~/.config/<name>rc` and `~/.config/<name>`, then `~/.config/<name>/config`;
//   - `/etc/<name>rc` and `/etc/<name>`, then `/etc/<name>/config` (except on windows);
//   - the default configuration provided by [WithDefault].
//
// Every file name is also tried with the extensions of the recognized formats,
// e.g. `.<name>rc.json`.
func DefaultSources(scope *Scope) []Source {
	var (
		exts    = format.Extensions(scope.Formats...)
		name    = scope.Name
		dotRC   = "." + name + "rc"
		dotName = "." + name
		rc      = name + "rc"
		home    = scope.Home
		config  = filepath.Join(home, ".config")
	)

	return []Source{
		Func(Env),
		Func(CLI),
		Func(Nearest(Variate(dotRC, []string{dotRC, dotName}, exts)...)),
		Func(Manifest),
		When(home != "",
			Path(Variate(filepath.Join(home, dotRC), []string{dotRC, dotName}, exts)...),
			Path(Variate(filepath.Join(home, dotName, "config"), nil, exts)...),
			Path(Variate(filepath.Join(config, rc), []string{rc, name}, exts)...),
			Path(Variate(filepath.Join(config, name, "config"), nil, exts)...),
		),
		When(scope.Platform != "windows",
			Path(Variate("/etc/"+rc, []string{rc, name}, exts)...),
			Path(Variate("/etc/"+name+"/config", nil, exts)...),
		),
		Literal(Fragment{Meta: Meta{Source: SourceDef}, Data: scope.Default}),
	}
}

// Env resolves the environment variables whose names start with `<name>_`.
//
// The prefix is trimmed and the rest of the name is split by `__` into nested keys,
// e.g. `app_server__port=8080` is resolved as `{server: {port: "8080"}}`.
// The values are kept as string. It always resolves a Fragment tagged SourceEnv.
func Env(scope *Scope) (Source, error) {
	prefix := scope.Name + "_"
	values := make(map[string]any)
	for _, env := range scope.Environ {
		key, value, _ := strings.Cut(env, "=")
		name, ok := strings.CutPrefix(key, prefix)
		if !ok || name == "" {
			continue
		}

		keys := strings.Split(name, "__")
		if slices.Contains(keys, "") {
			scope.Logger().Debug("Skip environment variable with empty key.", "name", key)

			continue
		}
		maps.Insert(values, keys, value)
	}

	return Literal(Fragment{Meta: Meta{Source: SourceEnv}, Data: values}), nil
}

// CLI resolves the file given by `--config <file>` (or `--config=<file>`)
// in the command-line arguments. Relative paths are resolved against the working directory.
//
// It resolves nothing if the flag is absent.
// Unlike other files, it returns ErrLoad if the file could not be read.
func CLI(scope *Scope) (Source, error) {
	path := configFlag(scope.Args)
	if path == "" {
		return Source{}, nil
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(scope.Cwd, path)
	}

	bytes, err := scope.fs.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("%w %s: %w", ErrLoad, path, err)
	}
	fragment, err := scope.parse(path, bytes)
	if err != nil {
		return Source{}, err
	}
	fragment.Meta.Source = SourceCLI

	return Literal(fragment), nil
}

func configFlag(args []string) string {
	for i, arg := range args {
		if arg == "--config" {
			if i+1 < len(args) {
				return args[i+1]
			}

			return ""
		}
		if path, ok := strings.CutPrefix(arg, "--config="); ok {
			return path
		}
	}

	return ""
}

// Nearest returns a Resolver which resolves the file nearest to the working directory
// among the given file names, see [Scope.Locate].
func Nearest(filenames ...string) Resolver {
	return func(scope *Scope) (Source, error) {
		return Path(scope.Locate(filenames...)), nil
	}
}

// Manifest resolves the field in the nearest project manifest,
// which is an empty map if the field does not exist or is not a map.
//
// It resolves nothing if there is no project manifest.
func Manifest(scope *Scope) (Source, error) {
	dir := scope.up(scope.Manifest)
	if dir == "" {
		scope.Logger().Debug("Project manifest is not found.", "manifest", scope.Manifest, "cwd", scope.Cwd)

		return Source{}, nil
	}

	fragment, err := scope.Load(filepath.Join(dir, scope.Manifest))
	if err != nil || fragment == nil {
		return Source{}, err
	}

	values, _ := maps.Sub(fragment.Data, []string{scope.ManifestField}).(map[string]any)
	if values == nil {
		values = make(map[string]any)
	}
	fragment.Meta.Source = SourcePkg
	fragment.Data = values

	return Literal(*fragment), nil
}
