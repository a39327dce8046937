package cmd

import (
	"log/slog"

	"github.com/Alia5/sigexport/internal/codegen/generator"
	"github.com/Alia5/sigexport/internal/export"
)

// Generate writes the selected targets for the loaded projects into one
// output directory.
type Generate struct {
	Projects    []string `arg:"" name:"project" help:"Signature project files (.json, .yaml, .yml, .toml); later files are appended"`
	Output      string   `help:"Output directory for generated artifacts" default:"./generated" env:"SIGEXPORT_GENERATE_OUTPUT"`
	Target      string   `help:"Artifact target: class, macro, or 'all'" default:"all" enum:"class,macro,all" env:"SIGEXPORT_GENERATE_TARGET"`
	Name        string   `help:"Generated class name" default:"addresses" env:"SIGEXPORT_CLASS_NAME"`
	Prefix      string   `help:"Prefix for every macro name" env:"SIGEXPORT_PREFIX"`
	MacroFile   string   `help:"File name of the macro header" default:"signatures.h" env:"SIGEXPORT_MACRO_FILE"`
	IntegerType string   `help:"C++ type of address and error fields" default:"unsigned long" env:"SIGEXPORT_INTEGER_TYPE"`
	StringType  string   `help:"C++ type of tag fields" default:"std::string" env:"SIGEXPORT_STRING_TYPE"`
}

// Run is called by Kong when the generate command is executed.
func (c *Generate) Run(logger *slog.Logger) error {
	logger.Info("Starting artifact generation", "output", c.Output, "target", c.Target)

	set, err := loadProjects(logger, c.Projects)
	if err != nil {
		return err
	}

	b := export.NewBuilder(logger)
	b.IntegerType = c.IntegerType
	b.StringType = c.StringType

	gen := generator.New(c.Output, logger, b)
	gen.ClassName = c.Name
	gen.Prefix = c.Prefix
	gen.MacroFile = c.MacroFile

	if c.Target == "all" {
		_, err = gen.GenAll(set)
		return err
	}
	_, err = gen.GenerateTarget(c.Target, set)
	return err
}
