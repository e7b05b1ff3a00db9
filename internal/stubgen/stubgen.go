// Package stubgen runs the generator once: it loads the module metadata,
// maps it to a stub tree, writes the artifacts and reports diagnostics.
package stubgen

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"

	"nanobind-stubgen/internal/config"
	"nanobind-stubgen/internal/diagnostic"
	"nanobind-stubgen/internal/export"
	"nanobind-stubgen/internal/introspect"
	"nanobind-stubgen/internal/mapper"
	"nanobind-stubgen/internal/pysyntax"
	"nanobind-stubgen/internal/signature"
	"nanobind-stubgen/internal/stub"
)

// Result summarizes one run.
type Result struct {
	Module   string
	Files    []string
	Bytes    int64
	Members  int
	Warnings int
}

// Generator runs the pipeline. The validation cache is shared by all runs
// of one Generator.
type Generator struct {
	cfg       config.Config
	logger    *slog.Logger
	dump      io.Writer
	validator *pysyntax.Validator
}

// New creates a Generator. Tree dumps go to dump.
func New(cfg config.Config, logger *slog.Logger, dump io.Writer) (*Generator, error) {
	v, err := pysyntax.NewValidator(pysyntax.DefaultCacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating validator: %w", err)
	}

	return &Generator{cfg: cfg, logger: logger, dump: dump, validator: v}, nil
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	SortKeys:                true,
}

// Run performs one generation. Findings, including the failure that ended
// the run, are logged once before Run returns.
func (g *Generator) Run(ctx context.Context) (Result, error) {
	diags := &diagnostic.Diagnostics{}

	res, err := g.run(ctx, diags)
	if err != nil {
		diags.AddError(diagnostic.CodeRunFailed, err.Error(), g.cfg.Module, "")
	}

	diags.Report(g.logger)

	if err != nil {
		return Result{}, err
	}

	res.Warnings = len(diags.Warnings)

	g.logger.Info("stubs generated",
		"module", res.Module,
		"files", len(res.Files),
		"size", humanize.Bytes(uint64(res.Bytes)),
		"members", humanize.Comma(int64(res.Members)),
		"warnings", res.Warnings,
	)

	return res, nil
}

func (g *Generator) run(ctx context.Context, diags *diagnostic.Diagnostics) (Result, error) {
	snap, err := g.load(ctx)
	if err != nil {
		return Result{}, err
	}

	if g.cfg.SaveSnapshot != "" {
		if err := introspect.WriteFile(snap, g.cfg.SaveSnapshot); err != nil {
			return Result{}, err
		}

		g.logger.Debug("snapshot saved", "path", g.cfg.SaveSnapshot)
	}

	m := mapper.New(signature.NewRecoverer(g.validator, diags), diags)

	root, err := m.MapNamespace(snap.Root.Name, snap.Root)
	if err != nil {
		return Result{}, err
	}

	if g.cfg.DumpTree && g.dump != nil {
		dumpConfig.Fdump(g.dump, root)
	}

	exported, err := export.New(export.Config{OutputDir: g.cfg.OutputDir}).Export(root)
	if err != nil {
		return Result{}, fmt.Errorf("exporting %s: %w", snap.Module, err)
	}

	res := Result{
		Module:  snap.Module,
		Bytes:   exported.Bytes,
		Members: countMembers(root),
	}

	for _, f := range exported.Files {
		res.Files = append(res.Files, f.Path)
		g.logger.Debug("stub written", "path", f.Path, "size", humanize.Bytes(uint64(len(f.Content))))
	}

	return res, nil
}

func (g *Generator) load(ctx context.Context) (*introspect.Snapshot, error) {
	if g.cfg.Snapshot == "" {
		g.logger.Debug("probing module", "module", g.cfg.Module, "python", g.cfg.Python)

		return introspect.NewProbe(g.cfg.Python, g.cfg.Package).Load(ctx, g.cfg.Module)
	}

	snap, err := introspect.LoadFile(g.cfg.Snapshot)
	if err != nil {
		return nil, err
	}

	if g.cfg.Module != "" && snap.Module != g.cfg.Module {
		g.logger.Warn("snapshot was taken from another module",
			"snapshot", snap.Module, "module", g.cfg.Module)
	}

	return snap, nil
}

func countMembers(root *stub.Node) int {
	n := 0
	root.Walk(func(*stub.Node) { n++ })

	return n - 1
}
