package introspect

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultPython is the interpreter used when none is configured.
const DefaultPython = "python3"

// ErrProbeFailed is returned when the interpreter cannot import or describe
// the module.
var ErrProbeFailed = errors.New("introspection probe failed")

//go:embed probe.py
var probeScript string

// Probe imports a module in a Python interpreter and reads back a Snapshot.
type Probe struct {
	// Python is the interpreter executable.
	Python string
	// Package is the anchor for relative module names.
	Package string
	// Dir is the working directory of the interpreter; it is put on sys.path.
	Dir string
}

// NewProbe creates a Probe using the given interpreter, or DefaultPython.
func NewProbe(python, pkg string) *Probe {
	if python == "" {
		python = DefaultPython
	}

	return &Probe{Python: python, Package: pkg}
}

// Load imports module and returns its snapshot.
func (p *Probe) Load(ctx context.Context, module string) (*Snapshot, error) {
	cmd := exec.CommandContext(ctx, p.Python, "-c", probeScript, module, p.Package)
	cmd.Dir = p.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}

		return nil, fmt.Errorf("%w: %s: %s", ErrProbeFailed, module, msg)
	}

	snap, err := Parse(stdout.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrProbeFailed, module, err)
	}

	return snap, nil
}
