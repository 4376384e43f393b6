// Copyright (c) 2026 The rcfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package rcfg

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// fileSystem reads files with absolute OS paths,
// either from the OS file system or from a fs.FS rooted at `/`.
type fileSystem struct {
	fs fs.FS
}

func (f fileSystem) ReadFile(path string) ([]byte, error) {
	if f.fs == nil {
		return os.ReadFile(path)
	}

	return fs.ReadFile(f.fs, f.rel(path))
}

// IsFile reports whether a regular file exists at the given path.
func (f fileSystem) IsFile(path string) bool {
	var (
		info fs.FileInfo
		err  error
	)
	if f.fs == nil {
		info, err = os.Stat(path)
	} else {
		info, err = fs.Stat(f.fs, f.rel(path))
	}

	return err == nil && !info.IsDir()
}

func (f fileSystem) rel(path string) string {
	path = filepath.ToSlash(strings.TrimPrefix(path, filepath.VolumeName(path)))
	path = strings.TrimLeft(path, "/")
	if path == "" {
		return "."
	}

	return path
}
