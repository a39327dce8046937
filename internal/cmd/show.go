package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/Alia5/sigexport/internal/export"
)

// Show prints artifacts to stdout. On a terminal each file is preceded by a
// banner naming it; piped output is the bare artifact text.
type Show struct {
	Projects []string `arg:"" name:"project" help:"Signature project files (.json, .yaml, .yml, .toml); later files are appended"`
	Name     string   `help:"Generated class name" default:"addresses" env:"SIGEXPORT_CLASS_NAME"`
	Macro    bool     `help:"Show the macro header instead of the class"`
	Prefix   string   `help:"Macro name prefix (with --macro)" env:"SIGEXPORT_PREFIX"`

	out      io.Writer
	terminal func() bool
}

// Run is called by Kong when the show command is executed.
func (s *Show) Run(logger *slog.Logger) error {
	set, err := loadProjects(logger, s.Projects)
	if err != nil {
		return err
	}
	out, banners := s.output()
	b := export.NewBuilder(logger)

	type file struct{ name, text string }
	var files []file
	if s.Macro {
		header, err := b.MacroHeader(set, s.Prefix)
		if err != nil {
			return err
		}
		files = append(files, file{"macros.h", header})
	} else {
		art := b.Class(set, s.Name)
		files = append(files,
			file{art.ClassName + export.HeaderExt, art.Header},
			file{art.ClassName + export.SourceExt, art.Source},
		)
	}

	for _, f := range files {
		if banners {
			if _, err := fmt.Fprintf(out, "// ---- %s ----\n", f.name); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(out, f.text); err != nil {
			return err
		}
	}
	return nil
}

func (s *Show) output() (io.Writer, bool) {
	if s.out != nil {
		return s.out, s.terminal != nil && s.terminal()
	}
	return os.Stdout, term.IsTerminal(int(os.Stdout.Fd()))
}
