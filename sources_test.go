// Copyright (c) 2026 The rcfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package rcfg_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/nil-go/rcfg"
)

func TestEnv(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		description string
		environ     []string
		expected    map[string]any
	}{
		{
			description: "no environment variables",
			expected:    map[string]any{},
		},
		{
			description: "nested keys",
			environ: []string{
				"app_host=localhost",
				"app_server__port=8080",
				"app_server__tls__enabled=true",
			},
			expected: map[string]any{
				"host": "localhost",
				"server": map[string]any{
					"port": "8080",
					"tls":  map[string]any{"enabled": "true"},
				},
			},
		},
		{
			description: "verbatim values",
			environ:     []string{"app_url=a=b", "app_empty="},
			expected:    map[string]any{"url": "a=b", "empty": ""},
		},
		{
			description: "other prefixes",
			environ:     []string{"apple_x=1", "APP_x=1", "app=1", "PATH=/bin"},
			expected:    map[string]any{},
		},
		{
			description: "empty keys",
			environ:     []string{"app_=1", "app_a____b=1", "app___c=1", "app_d__=1"},
			expected:    map[string]any{},
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			var fragments []rcfg.Fragment
			values, err := rcfg.Resolve("app",
				rcfg.WithFS(fstest.MapFS{}),
				rcfg.WithEnviron(testcase.environ),
				rcfg.WithSources(rcfg.Func(rcfg.Env)),
				rcfg.WithMerge(func(f []rcfg.Fragment) map[string]any {
					fragments = f

					return rcfg.Merge(f)
				}),
			)
			require.NoError(t, err)
			require.Equal(t, testcase.expected, values)
			require.Len(t, fragments, 1)
			require.Equal(t, rcfg.SourceEnv, fragments[0].Meta.Source)
		})
	}
}

func TestManifest(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		description string
		files       map[string]string
		opts        []rcfg.Option
		expected    []rcfg.Fragment
	}{
		{
			description: "no manifest",
			files:       map[string]string{"w/p/.apprc": `{}`},
		},
		{
			description: "field",
			files:       map[string]string{"w/package.json": `{"name":"p","app":{"a":1}}`},
			expected: []rcfg.Fragment{
				{
					Meta: rcfg.Meta{Source: rcfg.SourcePkg, File: "/w/package.json"},
					Data: map[string]any{"a": float64(1)},
				},
			},
		},
		{
			description: "no field",
			files:       map[string]string{"w/package.json": `{"name":"p"}`},
			expected: []rcfg.Fragment{
				{
					Meta: rcfg.Meta{Source: rcfg.SourcePkg, File: "/w/package.json"},
					Data: map[string]any{},
				},
			},
		},
		{
			description: "non-map field",
			files:       map[string]string{"w/package.json": `{"app":"v"}`},
			expected: []rcfg.Fragment{
				{
					Meta: rcfg.Meta{Source: rcfg.SourcePkg, File: "/w/package.json"},
					Data: map[string]any{},
				},
			},
		},
		{
			description: "custom manifest and field",
			files: map[string]string{
				"w/package.json": `{"app":{"a":1}}`,
				"w/p/go.yaml":    "tool:\n  a: 2\n",
			},
			opts: []rcfg.Option{rcfg.WithManifest("go.yaml"), rcfg.WithManifestField("tool")},
			expected: []rcfg.Fragment{
				{
					Meta: rcfg.Meta{Source: rcfg.SourcePkg, File: "/w/p/go.yaml"},
					Data: map[string]any{"a": 2},
				},
			},
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			var fragments []rcfg.Fragment
			opts := append([]rcfg.Option{
				rcfg.WithFS(with(fstest.MapFS{}, testcase.files)),
				rcfg.WithCwd("/w/p/s"),
				rcfg.WithSources(rcfg.Func(rcfg.Manifest)),
				rcfg.WithMerge(func(f []rcfg.Fragment) map[string]any {
					fragments = f

					return rcfg.Merge(f)
				}),
			}, testcase.opts...)
			_, err := rcfg.Resolve("app", opts...)
			require.NoError(t, err)
			if len(testcase.expected) == 0 {
				require.Empty(t, fragments)

				return
			}
			require.Equal(t, testcase.expected, fragments)
		})
	}
}

func TestDefaultSources(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		description string
		scope       rcfg.Scope
		expected    []string
	}{
		{
			description: "linux",
			scope:       rcfg.Scope{Name: "app", Home: "/home/u", Platform: "linux"},
			expected: []string{
				"func", "func", "func", "func",
				"[path:/home/u/.apprc path:/home/u/.app/config path:/home/u/.config/apprc path:/home/u/.config/app/config]",
				"[path:/etc/apprc path:/etc/app/config]",
			},
		},
		{
			description: "windows without home",
			scope:       rcfg.Scope{Name: "app", Platform: "windows", Default: map[string]any{"a": 1}},
			expected:    []string{"func", "func", "func", "func", "def"},
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			sources := rcfg.DefaultSources(&testcase.scope)
			var actual []string
			for _, source := range sources {
				if !source.IsZero() {
					actual = append(actual, source.String())
				}
			}
			require.Equal(t, testcase.expected, actual)
		})
	}
}
