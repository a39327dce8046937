package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/Alia5/sigexport/internal/export"
)

// Macro writes a flat #define header to Output, or stdout when Output is
// empty.
type Macro struct {
	Projects []string `arg:"" name:"project" help:"Signature project files (.json, .yaml, .yml, .toml); later files are appended"`
	Prefix   string   `help:"Prefix for every macro name; an underscore is appended when missing" env:"SIGEXPORT_PREFIX"`
	Output   string   `short:"o" help:"Header file to write (stdout when empty)" placeholder:"FILE" env:"SIGEXPORT_OUTPUT"`

	out io.Writer
}

// Run is called by Kong when the macro command is executed.
func (m *Macro) Run(logger *slog.Logger) error {
	set, err := loadProjects(logger, m.Projects)
	if err != nil {
		return err
	}

	header, err := export.NewBuilder(logger).MacroHeader(set, m.Prefix)
	if err != nil {
		return err
	}

	if m.Output == "" {
		out := m.out
		if out == nil {
			out = os.Stdout
		}
		_, err := io.WriteString(out, header)
		return err
	}

	if err := export.Save(m.Output, header); err != nil {
		return err
	}
	logger.Info("Exported macro header", "path", m.Output, "macros", set.Len())
	return nil
}
