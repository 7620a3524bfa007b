package holydiver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	toml "github.com/pelletier/go-toml/v2"
)

// dumpConfig renders deterministic, human-readable dumps for String.
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

func dumpString(v any) string {
	return dumpConfig.Sdump(v)
}

// toMapSlice renders the mapping as an ordered YAML tree so that
// serialization preserves key order.
func (c *Config) toMapSlice() yaml.MapSlice {
	ms := make(yaml.MapSlice, 0, len(c.keys))
	for _, k := range c.keys {
		ms = append(ms, yaml.MapItem{Key: k, Value: orderedDump(c.values[k])})
	}
	return ms
}

func orderedDump(v any) any {
	switch x := v.(type) {
	case *Config:
		return x.toMapSlice()
	case *ConfigList:
		out := make([]any, len(x.items))
		for i, item := range x.items {
			out[i] = orderedDump(item)
		}
		return out
	default:
		return v
	}
}

// ToYAML returns the configuration serialized as YAML, keys in traversal
// order.
func (c *Config) ToYAML() (string, error) {
	return marshalYAML(c.toMapSlice())
}

// ToJSON returns the configuration serialized as JSON.
func (c *Config) ToJSON() (string, error) {
	return marshalJSON(c.Deconvert())
}

// ToTOML returns the configuration serialized as TOML.
func (c *Config) ToTOML() (string, error) {
	return marshalTOML(c.Deconvert())
}

// WriteYAML serializes the configuration to YAML and writes it to path.
// The returned bool reports whether the target file exists afterwards.
func (c *Config) WriteYAML(path string) (bool, error) {
	s, err := c.ToYAML()
	if err != nil {
		return fileExists(path), err
	}
	return writeFile(path, []byte(s))
}

// WriteJSON serializes the configuration to JSON and writes it to path.
// The returned bool reports whether the target file exists afterwards.
func (c *Config) WriteJSON(path string) (bool, error) {
	s, err := c.ToJSON()
	if err != nil {
		return fileExists(path), err
	}
	return writeFile(path, []byte(s))
}

// WriteTOML serializes the configuration to TOML and writes it to path.
// The returned bool reports whether the target file exists afterwards.
func (c *Config) WriteTOML(path string) (bool, error) {
	s, err := c.ToTOML()
	if err != nil {
		return fileExists(path), err
	}
	return writeFile(path, []byte(s))
}

// ToYAML returns the sequence serialized as YAML.
func (l *ConfigList) ToYAML() (string, error) {
	return marshalYAML(orderedDump(l))
}

// ToJSON returns the sequence serialized as JSON.
func (l *ConfigList) ToJSON() (string, error) {
	return marshalJSON(l.Deconvert())
}

// WriteYAML serializes the sequence to YAML and writes it to path. The
// returned bool reports whether the target file exists afterwards.
func (l *ConfigList) WriteYAML(path string) (bool, error) {
	s, err := l.ToYAML()
	if err != nil {
		return fileExists(path), err
	}
	return writeFile(path, []byte(s))
}

// WriteJSON serializes the sequence to JSON and writes it to path. The
// returned bool reports whether the target file exists afterwards.
func (l *ConfigList) WriteJSON(path string) (bool, error) {
	s, err := l.ToJSON()
	if err != nil {
		return fileExists(path), err
	}
	return writeFile(path, []byte(s))
}

func marshalYAML(v any) (string, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	return string(b), nil
}

func marshalJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	return string(b), nil
}

func marshalTOML(v any) (string, error) {
	b, err := toml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshaling TOML: %w", err)
	}
	return string(b), nil
}

func writeFile(path string, data []byte) (bool, error) {
	cleanPath := filepath.Clean(path)
	if err := os.WriteFile(cleanPath, data, 0o644); err != nil {
		return fileExists(cleanPath), fmt.Errorf("writing file %q: %w", cleanPath, err)
	}
	return fileExists(cleanPath), nil
}

func fileExists(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && !stat.IsDir()
}
