// Package main provides the CLI entrypoint for nanobind-stubgen.
//
// nanobind-stubgen writes Python type stubs (.pyi) for nanobind extension
// modules. Signatures are recovered from the runtime documentation of each
// member, validated, and written one artifact per module.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"nanobind-stubgen/internal/config"
	"nanobind-stubgen/internal/logging"
	"nanobind-stubgen/internal/stubgen"
	"nanobind-stubgen/internal/watch"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := config.Load()

	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "nanobind-stubgen <module>",
		Short: "Generate Python stubs for a nanobind module",
		Long: `Generate .pyi stubs for a nanobind extension module.

The module is imported by a Python interpreter and every public member is
described from its runtime documentation. A module with sub-modules becomes a
package directory with __init__.pyi.

Examples:
  nanobind-stubgen geometry --out typings
  nanobind-stubgen core --package mylib
  nanobind-stubgen geometry --save-snapshot geometry.yaml
  nanobind-stubgen geometry --snapshot geometry.yaml --watch`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Module = args[0]
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := logging.Setup(stderr, cfg.Verbose)

			gen, err := stubgen.New(cfg, logger, stdout)
			if err != nil {
				return err
			}

			if _, err := gen.Run(cmd.Context()); err != nil {
				return err
			}

			if !cfg.Watch {
				return nil
			}

			return runWatch(cmd.Context(), gen, cfg.Snapshot, debounce, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Package, "package", cfg.Package, "package to import the module from")
	flags.StringVarP(&cfg.OutputDir, "out", "o", cfg.OutputDir, "output directory for the generated .pyi files (env "+config.EnvOut+")")
	flags.StringVar(&cfg.Python, "python", cfg.Python, "Python interpreter used to import the module (env "+config.EnvPython+")")
	flags.StringVar(&cfg.Snapshot, "snapshot", "", "read module metadata from a YAML/JSON snapshot instead of importing it")
	flags.StringVar(&cfg.SaveSnapshot, "save-snapshot", "", "write the introspected module metadata to this file")
	flags.BoolVarP(&cfg.Watch, "watch", "w", false, "regenerate whenever the snapshot file changes")
	flags.DurationVar(&debounce, "debounce", watch.DefaultDebounceDelay, "quiet period before regenerating in watch mode")
	flags.BoolVar(&cfg.DumpTree, "dump-tree", false, "print the stub tree before writing")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func runWatch(ctx context.Context, gen *stubgen.Generator, path string, debounce time.Duration, logger *slog.Logger) error {
	w, err := watch.New(path, func(ctx context.Context) error {
		_, err := gen.Run(ctx)

		return err
	},
		watch.WithDebounceDelay(debounce),
		watch.WithOnError(func(err error) {
			logger.Error("regeneration failed", "error", err)
		}),
	)
	if err != nil {
		return err
	}

	logger.Info("watching snapshot", "path", path, "debounce", debounce)

	err = w.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}
