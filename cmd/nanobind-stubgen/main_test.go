package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nanobind-stubgen/internal/config"
)

var geometrySnapshot = filepath.Join("..", "..", "internal", "introspect", "testdata", "geometry.yaml")

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(t.Context())

	return stdout.String(), err
}

func TestRootCmd_GeneratesFromSnapshot(t *testing.T) {
	out := t.TempDir()

	_, err := execute(t, "geometry", "--snapshot", geometrySnapshot, "--out", out)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(out, "geometry", "__init__.pyi"))
	assert.FileExists(t, filepath.Join(out, "geometry", "io.pyi"))
}

func TestRootCmd_DumpTree(t *testing.T) {
	stdout, err := execute(t, "geometry", "--snapshot", geometrySnapshot, "--out", t.TempDir(), "--dump-tree")
	require.NoError(t, err)

	assert.Contains(t, stdout, `"Color"`)
}

func TestRootCmd_OutFromEnvironment(t *testing.T) {
	out := filepath.Join(t.TempDir(), "typings")
	t.Setenv(config.EnvOut, out)

	_, err := execute(t, "geometry", "--snapshot", geometrySnapshot)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(out, "geometry", "__init__.pyi"))
	require.NoError(t, err)
}

func TestRootCmd_Errors(t *testing.T) {
	_, err := execute(t)
	require.Error(t, err)

	_, err = execute(t, "geometry", "--watch", "--out", t.TempDir())
	require.ErrorIs(t, err, config.ErrWatchSnapshot)

	_, err = execute(t, "geometry", "--snapshot", filepath.Join(t.TempDir(), "missing.yaml"), "--out", t.TempDir())
	require.Error(t, err)
}
