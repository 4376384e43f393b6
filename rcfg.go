// Copyright (c) 2026 The rcfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package rcfg

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/nil-go/rcfg/internal/credential"
)

// Resolve resolves the configuration of the application with the given name
// from the sources in priority order, and returns the merged configuration.
//
// It blocks until all sources have been resolved.
// It returns an empty map if no source resolves anything.
func Resolve(name string, opts ...Option) (map[string]any, error) {
	option, err := apply(name, opts)
	if err != nil {
		return nil, err
	}
	option.runner = sequential{}

	return resolve(option)
}

// ResolveAsync resolves the configuration of the application with the given name
// like [Resolve], but without blocking. The sources are resolved concurrently,
// and the callback is called exactly once with the merged configuration or the error.
//
// The result is identical to Resolve for the same file system and environment.
// It panics if callback is nil.
func ResolveAsync(name string, callback func(config map[string]any, err error), opts ...Option) {
	if callback == nil {
		panic("cannot resolve configuration with nil callback")
	}

	option, err := apply(name, opts)
	if err != nil {
		go callback(nil, err)

		return
	}
	option.runner = concurrent{}

	go func() {
		callback(resolve(option))
	}()
}

func resolve(option options) (map[string]any, error) {
	scope := &option.Scope

	sources := DefaultSources(scope)
	if option.sources != nil {
		sources = option.sources(sources)
	}
	sources = flatten(sources)

	// Resolve dynamic sources.
	resolved := make([]Source, len(sources))
	if err := scope.each(len(sources), func(i int) error {
		source, err := scope.resolve(sources[i])
		resolved[i] = source

		return err
	}); err != nil {
		return nil, err
	}

	// Load files.
	entries := flatten(resolved)
	fragments := make([]*Fragment, len(entries))
	if err := scope.each(len(entries), func(i int) error {
		switch entry := entries[i]; entry.kind {
		case kindLiteral:
			fragments[i] = &entry.fragment
		case kindPath:
			fragment, err := scope.Load(entry.path)
			if err != nil {
				return err
			}
			fragments[i] = fragment
		}

		return nil
	}); err != nil {
		return nil, err
	}

	present := make([]Fragment, 0, len(fragments))
	for _, fragment := range fragments {
		if fragment != nil && fragment.Data != nil {
			present = append(present, *fragment)
		}
	}
	scope.logMerge(present)

	values := option.merge(present)
	if values == nil {
		values = make(map[string]any)
	}

	return values, nil
}

// resolve calls the Resolver of the source until the result is not a Resolver.
func (s *Scope) resolve(source Source) (Source, error) {
	for source.kind == kindFunc {
		var err error
		if source, err = source.resolver(s); err != nil {
			return Source{}, err
		}
	}

	if source.kind == kindGroup {
		sources := make([]Source, 0, len(source.sources))
		for _, src := range flatten(source.sources) {
			resolved, err := s.resolve(src)
			if err != nil {
				return Source{}, err
			}
			sources = append(sources, resolved)
		}

		return Group(sources...), nil
	}

	return source, nil
}

func (s *Scope) logMerge(fragments []Fragment) {
	ctx := context.Background()
	if !s.Logger().Enabled(ctx, slog.LevelDebug) {
		return
	}

	attrs := make([]any, 0, len(fragments))
	for i, fragment := range fragments {
		attrs = append(attrs, slog.Group(
			fragment.Meta.Source+"#"+strconv.Itoa(i),
			slog.String("file", fragment.Meta.File),
			slog.Any("data", credential.Redact(fragment.Data)),
		))
	}
	s.Logger().DebugContext(ctx, "Merging configuration fragments.", attrs...)
}
