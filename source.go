// Copyright (c) 2026 The rcfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package rcfg

import "strings"

// Origins of a Fragment.
const (
	SourceEnv  = "env"
	SourceCLI  = "cli"
	SourceFile = "file"
	SourcePkg  = "pkg"
	SourceDef  = "def"
)

// Meta describes where a Fragment has been resolved from.
type Meta struct {
	// Source is the kind of origin, e.g. SourceEnv.
	Source string
	// File is the path of the file the Fragment has been loaded from, if any.
	File string
}

// Fragment is the configuration resolved from a single source.
// Its Data is a nested map[string]any like `{parent: {child: {key: 1}}}`.
type Fragment struct {
	Meta Meta
	Data map[string]any
}

// Resolver resolves a Source dynamically with the given Scope.
//
// It returns the zero Source if there is nothing to resolve,
// or an error which aborts the whole resolution.
type Resolver func(scope *Scope) (Source, error)

type sourceKind uint8

const (
	kindNone sourceKind = iota
	kindLiteral
	kindFunc
	kindPath
	kindGroup
)

// Source is an entry of the priority ordered source list.
// It is either a literal Fragment, a Resolver, a file path or a group of sources.
//
// The zero Source is empty and is dropped before resolution.
type Source struct {
	kind     sourceKind
	fragment Fragment
	resolver Resolver
	path     string
	sources  []Source
}

// Literal returns a Source of the given Fragment.
// It returns the zero Source if the Fragment has no data.
func Literal(fragment Fragment) Source {
	if fragment.Data == nil {
		return Source{}
	}

	return Source{kind: kindLiteral, fragment: fragment}
}

// Func returns a Source which is resolved by the given Resolver.
func Func(resolver Resolver) Source {
	if resolver == nil {
		return Source{}
	}

	return Source{kind: kindFunc, resolver: resolver}
}

// Path returns a Source of the files with the given paths,
// which are loaded in order. Files that could not be read are skipped.
func Path(paths ...string) Source {
	sources := make([]Source, 0, len(paths))
	for _, path := range paths {
		if path != "" {
			sources = append(sources, Source{kind: kindPath, path: path})
		}
	}

	return Group(sources...)
}

// Group returns a Source of the given sources, which keeps their order
// and is flattened into the list it belongs to.
func Group(sources ...Source) Source {
	switch len(sources) {
	case 0:
		return Source{}
	case 1:
		return sources[0]
	default:
		return Source{kind: kindGroup, sources: sources}
	}
}

// When returns a Group of the given sources if cond is true,
// otherwise it returns the zero Source.
func When(cond bool, sources ...Source) Source {
	if !cond {
		return Source{}
	}

	return Group(sources...)
}

// IsZero reports whether s is the zero Source.
func (s Source) IsZero() bool {
	return s.kind == kindNone
}

func (s Source) String() string {
	switch s.kind {
	case kindLiteral:
		if s.fragment.Meta.File != "" {
			return s.fragment.Meta.Source + ":" + s.fragment.Meta.File
		}

		return s.fragment.Meta.Source
	case kindFunc:
		return "func"
	case kindPath:
		return "path:" + s.path
	case kindGroup:
		names := make([]string, 0, len(s.sources))
		for _, source := range s.sources {
			names = append(names, source.String())
		}

		return "[" + strings.Join(names, " ") + "]"
	default:
		return "none"
	}
}

// flatten expands the groups recursively and drops the zero sources.
func flatten(sources []Source) []Source {
	flattened := make([]Source, 0, len(sources))
	for _, source := range sources {
		switch source.kind {
		case kindNone:
		case kindGroup:
			flattened = append(flattened, flatten(source.sources)...)
		default:
			flattened = append(flattened, source)
		}
	}

	return flattened
}
