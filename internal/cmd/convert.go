package cmd

import (
	"errors"
	"log/slog"
	"os"

	"github.com/Alia5/sigexport/signature"
)

// Convert rewrites a signature project in the format implied by the output
// extension.
type Convert struct {
	Input  string `arg:"" help:"Source project file"`
	Output string `arg:"" help:"Destination project file (.json, .yaml, .yml, .toml)"`
	Force  bool   `help:"Overwrite if the file already exists"`
}

// Run is called by Kong when the convert command is executed.
func (c *Convert) Run(logger *slog.Logger) error {
	if !c.Force {
		if _, err := os.Stat(c.Output); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}

	set, err := signature.Load(c.Input)
	if err != nil {
		return err
	}
	if err := signature.Save(c.Output, set); err != nil {
		return err
	}
	logger.Info("Converted project", "from", c.Input, "to", c.Output, "count", set.Len())
	return nil
}
