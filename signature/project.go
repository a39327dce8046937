package signature

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// Format is a project file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported project file extension %q (want .json, .yaml, .yml or .toml)", ext)
	}
}

// tomlProject wraps the items since a TOML document must be a table.
type tomlProject struct {
	Signatures []Item `toml:"signature"`
}

// Decode parses project data. JSON and YAML accept either a list of items
// or a mapping of name to item; TOML uses [[signature]] tables.
func Decode(data []byte, format Format) ([]Item, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	switch format {
	case FormatJSON:
		trimmed := bytes.TrimSpace(data)
		if trimmed[0] == '{' {
			items, err := decodeJSONObject(trimmed)
			if err != nil {
				return nil, fmt.Errorf("decode json project: %w", err)
			}
			return items, nil
		}
		var items []Item
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("decode json project: %w", err)
		}
		return items, nil

	case FormatYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return nil, fmt.Errorf("decode yaml project: %w", err)
		}
		if len(node.Content) > 0 && node.Content[0].Kind == yaml.MappingNode {
			items, err := decodeYAMLMapping(node.Content[0])
			if err != nil {
				return nil, fmt.Errorf("decode yaml project: %w", err)
			}
			return items, nil
		}
		var items []Item
		if err := node.Decode(&items); err != nil {
			return nil, fmt.Errorf("decode yaml project: %w", err)
		}
		return items, nil

	case FormatTOML:
		var p tomlProject
		if err := toml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decode toml project: %w", err)
		}
		return p.Signatures, nil

	default:
		return nil, fmt.Errorf("unsupported project format %q", format)
	}
}

// Encode serializes a set. JSON and YAML are written as a mapping keyed by
// name, TOML as [[signature]] tables in name order.
func Encode(s *Set, format Format) ([]byte, error) {
	items := s.Items()

	switch format {
	case FormatJSON:
		byName := make(map[string]Item, len(items))
		for _, it := range items {
			byName[it.Name] = it
		}
		data, err := json.MarshalIndent(byName, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json project: %w", err)
		}
		return append(data, '\n'), nil

	case FormatYAML:
		byName := make(map[string]Item, len(items))
		for _, it := range items {
			byName[it.Name] = it
		}
		data, err := yaml.Marshal(byName)
		if err != nil {
			return nil, fmt.Errorf("encode yaml project: %w", err)
		}
		return data, nil

	case FormatTOML:
		data, err := toml.Marshal(tomlProject{Signatures: items})
		if err != nil {
			return nil, fmt.Errorf("encode toml project: %w", err)
		}
		return data, nil

	default:
		return nil, fmt.Errorf("unsupported project format %q", format)
	}
}

// Load reads one project file.
func Load(path string) (*Set, error) {
	return LoadAll(path)
}

// LoadAll reads and merges several project files. A name defined in more
// than one file is a DuplicateNameError.
func LoadAll(paths ...string) (*Set, error) {
	var all []Item
	for _, path := range paths {
		items, err := readItems(path)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
	}

	set, err := NewSet(all...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", strings.Join(paths, ", "), err)
	}
	return set, nil
}

// Save writes a set to path in the format implied by its extension.
func Save(path string, s *Set) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Encode(s, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write project %s: %w", path, err)
	}
	return nil
}

func readItems(path string) ([]Item, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project %s: %w", path, err)
	}
	items, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// decodeJSONObject walks a name-keyed object token by token so a repeated
// key is reported instead of overwriting the earlier entry.
func decodeJSONObject(data []byte) ([]Item, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	var k keyed
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var it Item
		if err := dec.Decode(&it); err != nil {
			return nil, fmt.Errorf("signature %q: %w", key, err)
		}
		if err := k.add(key, it); err != nil {
			return nil, err
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if tok, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected data after object: %v", tok)
	}
	return k.items()
}

func decodeYAMLMapping(m *yaml.Node) ([]Item, error) {
	var k keyed
	for i := 0; i+1 < len(m.Content); i += 2 {
		key := m.Content[i].Value
		var it Item
		if err := m.Content[i+1].Decode(&it); err != nil {
			return nil, fmt.Errorf("signature %q: %w", key, err)
		}
		if err := k.add(key, it); err != nil {
			return nil, err
		}
	}
	return k.items()
}

// keyed collects items of a name-keyed document in file order.
type keyed struct {
	seen map[string]struct{}
	list []Item
}

func (k *keyed) add(key string, it Item) error {
	if _, dup := k.seen[key]; dup {
		return &DuplicateNameError{Name: key}
	}
	if k.seen == nil {
		k.seen = make(map[string]struct{})
	}
	k.seen[key] = struct{}{}

	it, err := keyedItem(key, it)
	if err != nil {
		return err
	}
	k.list = append(k.list, it)
	return nil
}

func (k *keyed) items() ([]Item, error) {
	set, err := NewSet(k.list...)
	if err != nil {
		return nil, err
	}
	return set.Items(), nil
}
