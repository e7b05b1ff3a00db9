package introspect

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"nanobind-stubgen/internal/common"
)

// FormatVersion is the snapshot format written by this package.
const FormatVersion = "1"

// ErrNoRoot is returned for snapshots without a root entry.
var ErrNoRoot = errors.New("snapshot has no root entry")

// LoadFile loads and parses a YAML or JSON snapshot from the given path.
func LoadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML (or JSON) data into a Snapshot.
func Parse(data []byte) (*Snapshot, error) {
	var s Snapshot

	err := yaml.Unmarshal(data, &s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	if s.Root == nil {
		return nil, ErrNoRoot
	}

	applyDefaults(&s)

	return &s, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(s *Snapshot) {
	if s.Version == "" {
		s.Version = FormatVersion
	}

	if s.Root.Name == "" {
		s.Root.Name = common.LastSegment(s.Module)
	}

	if s.Module == "" {
		s.Module = s.Root.Name
	}

	if s.Root.Kind == "" {
		s.Root.Kind = EntryModule
	}
}

// Marshal serializes a Snapshot to YAML.
func Marshal(s *Snapshot) ([]byte, error) {
	return yaml.Marshal(s)
}

// WriteFile writes a Snapshot to the given path.
func WriteFile(s *Snapshot, path string) error {
	data, err := Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", path, err)
	}

	return nil
}
