package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Alia5/sigexport/internal/export"
)

// Class writes <name>.hpp and <name>.cpp into Dir.
type Class struct {
	Projects    []string `arg:"" name:"project" help:"Signature project files (.json, .yaml, .yml, .toml); later files are appended"`
	Name        string   `help:"Generated class name" default:"addresses" env:"SIGEXPORT_CLASS_NAME"`
	Dir         string   `help:"Directory receiving the header and source" default:"." env:"SIGEXPORT_DIR"`
	IntegerType string   `help:"C++ type of address and error fields" default:"unsigned long" env:"SIGEXPORT_INTEGER_TYPE"`
	StringType  string   `help:"C++ type of tag fields" default:"std::string" env:"SIGEXPORT_STRING_TYPE"`
}

// Run is called by Kong when the class command is executed.
func (c *Class) Run(logger *slog.Logger) error {
	set, err := loadProjects(logger, c.Projects)
	if err != nil {
		return err
	}

	b := export.NewBuilder(logger)
	b.IntegerType = c.IntegerType
	b.StringType = c.StringType
	art := b.Class(set, c.Name)

	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	headerPath, sourcePath, err := art.SaveTo(c.Dir)
	if err != nil {
		return err
	}

	logger.Info("Exported class", "class", art.ClassName, "entries", art.Entries, "header", headerPath, "source", sourcePath)
	return nil
}
