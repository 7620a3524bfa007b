package holydiver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	toml "github.com/pelletier/go-toml/v2"
)

// FromYAML loads a YAML file whose root is a mapping and returns the fully
// wrapped configuration. A sequence root fails with ErrFormatMismatch; use
// ListFromYAML for those files. WithSafe selects strict decoding, which
// rejects duplicate mapping keys.
func FromYAML(path string, opts ...Option) (*Config, error) {
	o := newOptions(opts)
	root, err := decodeYAMLFile(path, o.Safe)
	if err != nil {
		return nil, err
	}
	if _, isSeq := root.([]any); isSeq {
		return nil, fmt.Errorf("%w: YAML file %q encodes a sequence, not a mapping; use ListFromYAML", ErrFormatMismatch, path)
	}
	return newMapping(root, o)
}

// ListFromYAML loads a YAML file whose root is a sequence. A mapping root
// fails with ErrFormatMismatch; use FromYAML for those files.
func ListFromYAML(path string, opts ...Option) (*ConfigList, error) {
	o := newOptions(opts)
	root, err := decodeYAMLFile(path, o.Safe)
	if err != nil {
		return nil, err
	}
	items, err := sequenceRoot(root, "YAML", path, "FromYAML")
	if err != nil {
		return nil, err
	}
	return newSequence(items, o)
}

// FromJSON loads a JSON file whose root is an object. An array root fails
// with ErrFormatMismatch; use ListFromJSON for those files.
func FromJSON(path string, opts ...Option) (*Config, error) {
	o := newOptions(opts)
	root, err := decodeJSONFile(path)
	if err != nil {
		return nil, err
	}
	if _, isSeq := root.([]any); isSeq {
		return nil, fmt.Errorf("%w: JSON file %q encodes an array, not an object; use ListFromJSON", ErrFormatMismatch, path)
	}
	return newMapping(root, o)
}

// ListFromJSON loads a JSON file whose root is an array. An object root
// fails with ErrFormatMismatch; use FromJSON for those files.
func ListFromJSON(path string, opts ...Option) (*ConfigList, error) {
	o := newOptions(opts)
	root, err := decodeJSONFile(path)
	if err != nil {
		return nil, err
	}
	items, err := sequenceRoot(root, "JSON", path, "FromJSON")
	if err != nil {
		return nil, err
	}
	return newSequence(items, o)
}

// FromTOML loads a TOML file. TOML has no top-level sequence form, so there
// is no sequence counterpart.
func FromTOML(path string, opts ...Option) (*Config, error) {
	o := newOptions(opts)
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var root map[string]any
	if err := toml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing TOML file %q: %w", path, err)
	}
	return newMapping(root, o)
}

// FromFile loads a configuration file, dispatching on the extension:
// .yaml/.yml, .json, or .toml.
func FromFile(path string, opts ...Option) (*Config, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FromYAML(path, opts...)
	case ".json":
		return FromJSON(path, opts...)
	case ".toml":
		return FromTOML(path, opts...)
	default:
		return nil, fmt.Errorf("%w: unsupported config file extension %q", ErrInvalidArgument, filepath.Ext(path))
	}
}

func readFile(path string) ([]byte, error) {
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and caller-controlled
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
	}
	return data, nil
}

// decodeYAMLFile decodes a YAML document into ordered raw data, so that
// mapping key order survives loading.
func decodeYAMLFile(path string, safe bool) (any, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	decodeOpts := []yaml.DecodeOption{yaml.UseOrderedMap()}
	if safe {
		decodeOpts = append(decodeOpts, yaml.Strict())
	}
	var root any
	if err := yaml.UnmarshalWithOptions(data, &root, decodeOpts...); err != nil {
		return nil, fmt.Errorf("parsing YAML file %q: %w", path, err)
	}
	return root, nil
}

func decodeJSONFile(path string) (any, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing JSON file %q: %w", path, err)
	}
	return root, nil
}

// sequenceRoot asserts that a decoded document root is a sequence.
func sequenceRoot(root any, format, path, mappingLoader string) ([]any, error) {
	switch x := root.(type) {
	case nil:
		return nil, nil
	case []any:
		return x, nil
	default:
		return nil, fmt.Errorf("%w: %s file %q encodes a mapping, not a sequence; use %s", ErrFormatMismatch, format, path, mappingLoader)
	}
}
