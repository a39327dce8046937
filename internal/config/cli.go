// Package config declares the command line surface. Every flag can also be
// set from a SIGEXPORT_* environment variable or a JSON, YAML or TOML
// configuration file.
package config

import (
	"github.com/alecthomas/kong"

	"github.com/Alia5/sigexport/internal/cmd"
)

type CLI struct {
	Config  string           `help:"Configuration file (json, yaml or toml)" placeholder:"FILE" env:"SIGEXPORT_CONFIG"`
	Version kong.VersionFlag `help:"Print version and exit"`
	Log     Log              `embed:"" prefix:"log."`

	Class     cmd.Class         `cmd:"" help:"Export signatures as a C++ class (header and source)"`
	Macro     cmd.Macro         `cmd:"" help:"Export signatures as a header of #define macros"`
	Generate  cmd.Generate      `cmd:"" help:"Write class and/or macro artifacts into one directory"`
	Show      cmd.Show          `cmd:"" help:"Print generated artifacts without writing files"`
	Convert   cmd.Convert       `cmd:"" help:"Convert a signature project between json, yaml and toml"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
}

type Log struct {
	Level string `help:"Log level" default:"info" enum:"trace,debug,info,warn,error" env:"SIGEXPORT_LOG_LEVEL"`
	File  string `help:"Also write logs to this file" placeholder:"FILE" env:"SIGEXPORT_LOG_FILE"`
}
