package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"nanobind-stubgen/internal/stub"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

const (
	stubExt     = ".pyi"
	packageInit = "__init__" + stubExt
)

// ErrNoModule is returned when there is nothing to export.
var ErrNoModule = errors.New("root is not a module")

// File is one planned artifact. Path is relative to the output directory.
type File struct {
	Path    string
	Content []byte
}

// Config controls where artifacts go.
type Config struct {
	// OutputDir is created when missing.
	OutputDir string
}

// DefaultConfig writes into the working directory.
func DefaultConfig() Config {
	return Config{OutputDir: "."}
}

// Result summarizes one export.
type Result struct {
	Files []File
	Bytes int64
}

// Exporter writes stub trees to disk.
type Exporter struct {
	config Config
}

// New creates an Exporter.
func New(config Config) *Exporter {
	return &Exporter{config: config}
}

// Export plans and writes every artifact of root.
func (e *Exporter) Export(root *stub.Node) (Result, error) {
	if root == nil || root.Kind != stub.KindModule {
		return Result{}, ErrNoModule
	}

	files := Plan(root)

	n, err := WriteFiles(files, e.config.OutputDir)
	if err != nil {
		return Result{}, err
	}

	return Result{Files: files, Bytes: n}, nil
}

// Plan lays out the artifacts of root, parents before children.
func Plan(root *stub.Node) []File {
	var files []File

	planModule(root, "", &files)

	return files
}

func planModule(mod *stub.Node, dir string, files *[]File) {
	content := []byte(Render(mod))

	if !mod.HasSubModules() {
		*files = append(*files, File{Path: filepath.Join(dir, mod.Name+stubExt), Content: content})

		return
	}

	pkgDir := filepath.Join(dir, mod.Name)
	*files = append(*files, File{Path: filepath.Join(pkgDir, packageInit), Content: content})

	for _, sub := range mod.SubModules() {
		planModule(sub, pkgDir, files)
	}
}

// WriteFiles writes all planned files below outputDir, creating directories
// as needed, and returns the number of bytes written.
// Files written before a failure stay on disk.
func WriteFiles(files []File, outputDir string) (int64, error) {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return 0, fmt.Errorf("creating output directory: %w", err)
	}

	var written int64

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Path)

		err := os.MkdirAll(filepath.Dir(outputPath), dirPerm)
		if err != nil {
			return written, fmt.Errorf("creating directory for %s: %w", file.Path, err)
		}

		err = os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return written, fmt.Errorf("writing file %s: %w", file.Path, err)
		}

		written += int64(len(file.Content))
	}

	return written, nil
}
