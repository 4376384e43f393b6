// Copyright (c) 2026 The rcfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package rcfg

import (
	"path/filepath"
	"strings"
)

// Variate returns src followed by the sibling paths `dir(src)/basename.ext`
// for every basename and extension, basename-major.
// If no basename is given, the basename of src is used.
//
// For example, Variate("x", nil, []string{"json", "yml"}) returns
// ["x", "x.json", "x.yml"].
func Variate(src string, basenames []string, exts []string) []string {
	if len(basenames) == 0 {
		basenames = []string{filepath.Base(src)}
	}

	dir := filepath.Dir(src)
	variants := make([]string, 0, 1+len(basenames)*len(exts))
	variants = append(variants, src)
	for _, basename := range basenames {
		for _, ext := range exts {
			variants = append(variants, filepath.Join(dir, basename+"."+ext))
		}
	}

	return variants
}

// Locate returns the absolute path of the file nearest to the working directory
// among the given file names, or empty string if none qualifies.
//
// The search never accepts a file above the directory of the nearest project manifest.
// If several file names qualify, the first one in the given order wins.
func (s *Scope) Locate(filenames ...string) string {
	// The last slot is for the manifest.
	dirs := make([]string, len(filenames)+1)
	_ = s.each(len(dirs), func(i int) error {
		if i == len(filenames) {
			dirs[i] = s.up(s.Manifest)
		} else {
			dirs[i] = s.up(filenames[i])
		}

		return nil
	})

	manifest := dirs[len(filenames)]
	for i, filename := range filenames {
		dir := dirs[i]
		if dir == "" {
			continue
		}
		if manifest != "" && !within(dir, manifest) {
			s.Logger().Debug("Skip config file above project manifest.", "file", filepath.Join(dir, filename), "manifest", manifest)

			continue
		}

		return filepath.Join(dir, filename)
	}

	return ""
}

// up returns the nearest directory from the working directory upwards
// which contains the given file, or empty string if not found.
func (s *Scope) up(filename string) string {
	dir := s.Cwd
	for {
		if s.fs.IsFile(filepath.Join(dir, filename)) {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// within reports whether dir is root or a descendant of root.
func within(dir, root string) bool {
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
