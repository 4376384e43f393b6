// Copyright (c) 2026 The rcfg authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nil-go/rcfg"
	"github.com/nil-go/rcfg/format"
	"github.com/nil-go/rcfg/internal/maps"
)

type rootFlags struct {
	cwd      string
	config   string
	manifest string
	field    string
	defaults map[string]string
	output   string
	path     string
	toml     bool
	async    bool
	verbose  bool
}

func newRootCommand() *cobra.Command {
	var flags rootFlags
	cmd := &cobra.Command{
		Use:   "rcfg <name>",
		Short: "Print the resolved configuration of an application",
		Long: `rcfg resolves the configuration of the named application from environment
variables, the --config file, rc files, the project manifest and the defaults,
and prints the merged result.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.cwd, "cwd", "", "working directory where the upward search starts")
	cmd.Flags().StringVar(&flags.config, "config", "", "configuration file which overrides the other files, relative to --cwd if set")
	cmd.Flags().StringVar(&flags.manifest, "manifest", "", "file name of the project manifest (default package.json)")
	cmd.Flags().StringVar(&flags.field, "field", "", "field name in the project manifest (default the application name)")
	cmd.Flags().StringToStringVar(&flags.defaults, "set", nil, "default values as dotted.key=value pairs")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "json", "output format: json, yaml or toml")
	cmd.Flags().StringVar(&flags.path, "path", "", "print only the value under the dotted path")
	cmd.Flags().BoolVar(&flags.toml, "toml", false, "recognize TOML configuration files")
	cmd.Flags().BoolVar(&flags.async, "async", false, "resolve sources concurrently")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "log resolution steps to stderr")

	return cmd
}

func run(out, errOut io.Writer, name string, flags rootFlags) error {
	level := slog.LevelWarn
	if flags.verbose {
		level = slog.LevelDebug
	}
	opts := []rcfg.Option{
		rcfg.WithLogger(slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))),
		rcfg.WithArgs(nil),
	}
	if flags.config != "" {
		opts = append(opts, rcfg.WithArgs([]string{"--config", flags.config}))
	}
	if flags.cwd != "" {
		opts = append(opts, rcfg.WithCwd(flags.cwd))
	}
	if flags.manifest != "" {
		opts = append(opts, rcfg.WithManifest(flags.manifest))
	}
	if flags.field != "" {
		opts = append(opts, rcfg.WithManifestField(flags.field))
	}
	if len(flags.defaults) > 0 {
		defaults := make(map[string]any)
		for key, value := range flags.defaults {
			maps.Insert(defaults, strings.Split(key, "."), value)
		}
		opts = append(opts, rcfg.WithDefault(defaults))
	}
	if flags.toml {
		opts = append(opts, rcfg.WithFormatFunc(func(formats []format.Format) []format.Format {
			return append(formats, format.TOML)
		}))
	}

	config, err := resolve(name, flags.async, opts)
	if err != nil {
		return err
	}

	var value any = config
	if flags.path != "" {
		value = maps.Sub(config, strings.Split(flags.path, "."))
	}

	return encode(out, flags.output, value)
}

func resolve(name string, async bool, opts []rcfg.Option) (map[string]any, error) {
	if !async {
		return rcfg.Resolve(name, opts...)
	}

	type result struct {
		config map[string]any
		err    error
	}
	results := make(chan result, 1)
	rcfg.ResolveAsync(name, func(config map[string]any, err error) {
		results <- result{config: config, err: err}
	}, opts...)
	res := <-results

	return res.config, res.err
}

func encode(out io.Writer, output string, value any) error {
	switch output {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case "yaml", "yml":
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	case "toml":
		if _, ok := value.(map[string]any); !ok {
			return errTOMLTable
		}
		if err := toml.NewEncoder(out).Encode(value); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
	default:
		return fmt.Errorf("unknown output format %q", output) //nolint:goerr113
	}

	return nil
}

var errTOMLTable = errors.New("toml output requires a table, use json or yaml for single values")
