// Package config holds the run configuration of the generator.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"nanobind-stubgen/internal/introspect"
)

// Environment variables consulted by Load.
const (
	EnvPython = "NANOBIND_STUBGEN_PYTHON"
	EnvOut    = "NANOBIND_STUBGEN_OUT"
)

// Config describes one generator run.
type Config struct {
	// Module is the import name of the target module.
	Module string
	// Package is the optional package the module is imported from.
	Package string
	// OutputDir receives the generated artifacts.
	OutputDir string
	// Python is the interpreter running the probe.
	Python string
	// Snapshot, when set, replaces the probe with a snapshot file.
	Snapshot string
	// SaveSnapshot, when set, records the introspected module.
	SaveSnapshot string
	// Watch re-runs the generator whenever Snapshot changes.
	Watch bool
	// DumpTree prints the stub tree before export.
	DumpTree bool
	// Verbose enables debug logging.
	Verbose bool
}

// Validation errors.
var (
	ErrNoModule       = errors.New("module name is required")
	ErrWatchSnapshot  = errors.New("watch mode requires a snapshot file")
	ErrSnapshotTarget = errors.New("snapshot and save-snapshot must differ")
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutputDir: ".",
		Python:    introspect.DefaultPython,
	}
}

// Load returns Default overridden by the environment. A .env file in the
// working directory is read first when present; real environment variables
// win over it.
func Load() Config {
	_ = godotenv.Load()

	cfg := Default()
	cfg.Python = firstNonEmpty(strings.TrimSpace(os.Getenv(EnvPython)), cfg.Python)
	cfg.OutputDir = firstNonEmpty(strings.TrimSpace(os.Getenv(EnvOut)), cfg.OutputDir)

	return cfg
}

// Validate reports the first inconsistency in c.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Module) == "" {
		return ErrNoModule
	}

	if c.Watch && c.Snapshot == "" {
		return ErrWatchSnapshot
	}

	if c.Snapshot != "" && c.Snapshot == c.SaveSnapshot {
		return ErrSnapshotTarget
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
