package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/Alia5/sigexport/internal/configpaths"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// ConfigCommand groups config-related subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Generate a configuration template"`
}

// ConfigInit scaffolds a configuration file holding the defaults of one
// command's flags plus the logging flags.
type ConfigInit struct {
	Command string `arg:"" name:"command" help:"Command to generate config for" enum:"class,macro,generate,show"`
	Format  string `help:"Output format" enum:"json,yaml,toml" default:"json"`
	Output  string `help:"Destination file path (defaults to sigexport.<format> in the current directory)"`
	Force   bool   `help:"Overwrite if the file already exists"`
}

// logTemplate mirrors the embedded log flags of the root CLI.
type logTemplate struct {
	Level string `default:"info"`
	File  string
}

// Run generates the template by reflecting over the command struct tags.
func (c *ConfigInit) Run(logger *slog.Logger) error {
	format := normalizeFormat(c.Format)
	if format == "" {
		return fmt.Errorf("unsupported format: %s", c.Format)
	}

	var root map[string]any
	switch c.Command {
	case "class":
		root = buildMapFromStruct(reflect.TypeOf(Class{}))
	case "macro":
		root = buildMapFromStruct(reflect.TypeOf(Macro{}))
	case "generate":
		root = buildMapFromStruct(reflect.TypeOf(Generate{}))
	case "show":
		root = buildMapFromStruct(reflect.TypeOf(Show{}))
	default:
		return errors.New("unknown command; expected 'class', 'macro', 'generate' or 'show'")
	}
	root["log"] = buildMapFromStruct(reflect.TypeOf(logTemplate{}))

	dest := c.Output
	if dest == "" {
		dest = "sigexport." + format
	}
	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}

	var data []byte
	var err error
	switch format {
	case "json":
		data, err = json.MarshalIndent(root, "", "  ")
	case "yaml":
		data, err = yaml.Marshal(root)
	case "toml":
		data, err = toml.Marshal(root)
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return err
	}

	logger.Info("Wrote configuration template", "command", c.Command, "path", dest)
	return nil
}

func normalizeFormat(f string) string {
	switch strings.ToLower(f) {
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return ""
	}
}

// configKey is the key kong's file resolvers look a flag up by: the flag
// name with dashes turned into underscores.
func configKey(f reflect.StructField) string {
	name := f.Tag.Get("name")
	if name == "" {
		name = flagName(f.Name)
	}
	return strings.ReplaceAll(name, "-", "_")
}

// flagName converts a Go field name to kong's default dashed flag name,
// e.g. IntegerType -> integer-type.
func flagName(field string) string {
	var sb strings.Builder
	r := []rune(field)
	for i, c := range r {
		if unicode.IsUpper(c) {
			if i > 0 && (unicode.IsLower(r[i-1]) || (i+1 < len(r) && unicode.IsLower(r[i+1]))) {
				sb.WriteByte('-')
			}
			c = unicode.ToLower(c)
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

func buildMapFromStruct(t reflect.Type) map[string]any {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := map[string]any{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Tag.Get("kong") == "-" {
			continue
		}
		// positional arguments and subcommands have no config entry
		if _, ok := f.Tag.Lookup("arg"); ok {
			continue
		}
		if _, ok := f.Tag.Lookup("cmd"); ok {
			continue
		}

		if val := defaultValueForField(f.Type, f.Tag.Get("default")); val != nil {
			out[configKey(f)] = val
		}
	}
	return out
}

func defaultValueForField(t reflect.Type, def string) any {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return def
	case reflect.Bool:
		b, err := strconv.ParseBool(def)
		if err != nil {
			return false
		}
		return b
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(def, 10, 64)
		if err != nil {
			return 0
		}
		return n
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(def, 10, 64)
		if err != nil {
			return 0
		}
		return n
	case reflect.Struct:
		return buildMapFromStruct(t)
	default:
		return nil
	}
}
