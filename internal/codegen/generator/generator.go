package generator

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/Alia5/sigexport/internal/export"
	"github.com/Alia5/sigexport/signature"
)

// DefaultMacroFile is the file name the macro target writes.
const DefaultMacroFile = "signatures.h"

// Generator writes export artifacts for one or more targets into a single
// output directory.
type Generator struct {
	outputDir string
	logger    *slog.Logger
	builder   *export.Builder

	ClassName string
	Prefix    string
	MacroFile string
}

// TargetGenerator writes the files of one target and returns their paths.
type TargetGenerator func(g *Generator, set *signature.Set) ([]string, error)

var targets = map[string]TargetGenerator{
	"class": generateClass,
	"macro": generateMacro,
}

// Targets lists the supported target names in order.
func Targets() []string {
	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// New returns a Generator writing into outputDir. A nil logger discards
// records and a nil builder gets the default field types.
func New(outputDir string, logger *slog.Logger, builder *export.Builder) *Generator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if builder == nil {
		builder = export.NewBuilder(logger)
	}
	return &Generator{
		outputDir: outputDir,
		logger:    logger,
		builder:   builder,
		MacroFile: DefaultMacroFile,
	}
}

// GenAll runs every target in name order.
func (g *Generator) GenAll(set *signature.Set) ([]string, error) {
	var written []string
	for _, name := range Targets() {
		paths, err := g.GenerateTarget(name, set)
		if err != nil {
			return written, fmt.Errorf("generate %s: %w", name, err)
		}
		written = append(written, paths...)
	}
	return written, nil
}

// GenerateTarget creates the output directory and runs the named target.
func (g *Generator) GenerateTarget(name string, set *signature.Set) ([]string, error) {
	gen, ok := targets[name]
	if !ok {
		return nil, fmt.Errorf("unsupported target '%s' (supported: %v)", name, Targets())
	}

	g.logger.Info("Generating artifacts", "target", name)

	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths, err := gen(g, set)
	if err != nil {
		return nil, err
	}

	g.logger.Info("Artifact generation complete", "target", name, "files", paths)
	return paths, nil
}

func generateClass(g *Generator, set *signature.Set) ([]string, error) {
	art := g.builder.Class(set, g.ClassName)
	headerPath, sourcePath, err := art.SaveTo(g.outputDir)
	if err != nil {
		return nil, err
	}
	return []string{headerPath, sourcePath}, nil
}

func generateMacro(g *Generator, set *signature.Set) ([]string, error) {
	header, err := g.builder.MacroHeader(set, g.Prefix)
	if err != nil {
		return nil, err
	}
	name := g.MacroFile
	if name == "" {
		name = DefaultMacroFile
	}
	path := filepath.Join(g.outputDir, name)
	if err := export.Save(path, header); err != nil {
		return nil, err
	}
	return []string{path}, nil
}
