// Copyright (c) 2026 The rcfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package rcfg_test

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/nil-go/rcfg"
)

func TestVariate(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		description string
		src         string
		basenames   []string
		exts        []string
		expected    []string
	}{
		{
			description: "own basename",
			src:         "x",
			exts:        []string{"json", "yml", "yaml"},
			expected:    []string{"x", "x.json", "x.yml", "x.yaml"},
		},
		{
			description: "no extensions",
			src:         "/etc/app/config",
			expected:    []string{"/etc/app/config"},
		},
		{
			description: "multiple basenames",
			src:         "/home/u/.apprc",
			basenames:   []string{".apprc", ".app"},
			exts:        []string{"json", "yml"},
			expected: []string{
				"/home/u/.apprc",
				"/home/u/.apprc.json",
				"/home/u/.apprc.yml",
				"/home/u/.app.json",
				"/home/u/.app.yml",
			},
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, testcase.expected, rcfg.Variate(testcase.src, testcase.basenames, testcase.exts))
		})
	}
}

func TestNearest(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		description string
		files       map[string]string
		cwd         string
		filenames   []string
		expected    map[string]any
	}{
		{
			description: "in working directory",
			files:       map[string]string{"w/p/.apprc": `{"file":"w/p"}`},
			cwd:         "/w/p",
			filenames:   []string{".apprc"},
			expected:    map[string]any{"file": "w/p"},
		},
		{
			description: "nearest one",
			files: map[string]string{
				"w/.apprc":   `{"file":"w"}`,
				"w/p/.apprc": `{"file":"w/p"}`,
			},
			cwd:       "/w/p/s",
			filenames: []string{".apprc"},
			expected:  map[string]any{"file": "w/p"},
		},
		{
			description: "no manifest",
			files:       map[string]string{".apprc": `{"file":"root"}`},
			cwd:         "/w/p/s",
			filenames:   []string{".apprc"},
			expected:    map[string]any{"file": "root"},
		},
		{
			description: "above manifest",
			files: map[string]string{
				"w/.apprc":          `{"file":"w"}`,
				"w/p/package.json":  `{}`,
				"w/p/s/placeholder": ``,
			},
			cwd:       "/w/p/s",
			filenames: []string{".apprc"},
			expected:  map[string]any{},
		},
		{
			description: "in manifest directory",
			files: map[string]string{
				"w/p/.apprc":       `{"file":"w/p"}`,
				"w/p/package.json": `{}`,
			},
			cwd:       "/w/p/s",
			filenames: []string{".apprc"},
			expected:  map[string]any{"file": "w/p"},
		},
		{
			description: "below manifest",
			files: map[string]string{
				"w/p/s/.apprc":   `{"file":"w/p/s"}`,
				"w/package.json": `{}`,
			},
			cwd:       "/w/p/s/t",
			filenames: []string{".apprc"},
			expected:  map[string]any{"file": "w/p/s"},
		},
		{
			description: "first file name wins",
			files: map[string]string{
				"w/p/.apprc.json": `{"file":"json"}`,
				"w/p/s/.apprc":    `{"file":"rc"}`,
			},
			cwd:       "/w/p/s",
			filenames: []string{".apprc.json", ".apprc"},
			expected:  map[string]any{"file": "json"},
		},
		{
			description: "first file name above manifest",
			files: map[string]string{
				"w/.apprc.json":    `{"file":"json"}`,
				"w/p/.apprc":       `{"file":"rc"}`,
				"w/p/package.json": `{}`,
			},
			cwd:       "/w/p",
			filenames: []string{".apprc.json", ".apprc"},
			expected:  map[string]any{"file": "rc"},
		},
		{
			description: "directory with the file name",
			files: map[string]string{
				"w/p/.apprc/config": `{"file":"dir"}`,
				"w/.apprc":          `{"file":"w"}`,
			},
			cwd:       "/w/p",
			filenames: []string{".apprc"},
			expected:  map[string]any{"file": "w"},
		},
		{
			description: "not found",
			files:       map[string]string{},
			cwd:         "/w/p",
			filenames:   []string{".apprc", ".app.json"},
			expected:    map[string]any{},
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			values, err := resolve(t, "app",
				rcfg.WithFS(with(fstest.MapFS{}, testcase.files)),
				rcfg.WithCwd(testcase.cwd),
				rcfg.WithSources(rcfg.Func(rcfg.Nearest(testcase.filenames...))),
				rcfg.WithLogger(logger()),
			)
			require.NoError(t, err)
			require.Equal(t, testcase.expected, values)
		})
	}
}

func TestScope_zero(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write(t, filepath.Join(dir, "package.json"), `{"app":{"a":"pkg"}}`)
	write(t, filepath.Join(dir, "src", ".apprc"), "b: 1\n")
	cwd := filepath.Join(dir, "src")

	scope := &rcfg.Scope{Name: "app", Cwd: cwd, Manifest: "package.json", ManifestField: "app"}
	path := scope.Locate(".apprc")
	require.Equal(t, filepath.Join(cwd, ".apprc"), path)

	fragment, err := scope.Load(path)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"b": 1}, fragment.Data)

	source, err := rcfg.Manifest(scope)
	require.NoError(t, err)
	require.Equal(t, "pkg:"+filepath.Join(dir, "package.json"), source.String())
}
