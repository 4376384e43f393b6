// Copyright (c) 2026 The rcfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

/*
Package rcfg resolves the configuration of an application from conventional
sources and merges them into a single nested map[string]any.

By default, the sources in priority order are: environment variables prefixed
with `<name>_`, the file given by `--config <file>`, the nearest `.<name>rc`
file (bounded by the nearest project manifest), the `<name>` field of the
nearest project manifest, the rc files in the home directory and under /etc,
and the default configuration. See [DefaultSources] for the complete list.

Maps from all sources are merged recursively, while other values are taken
from the source with the highest priority.

[Resolve] blocks until the configuration has been resolved, while
[ResolveAsync] resolves the sources concurrently and delivers the result to
a callback. Both return the same configuration for the same file system and
environment.

The source list, the file formats and the merge function can all be
customized with [Option]s.
*/
package rcfg
