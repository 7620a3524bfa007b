package holydiver

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/goccy/go-yaml"
)

// convertValue recursively wraps plain nested data: mappings become *Config,
// sequences become *ConfigList, scalars pass through unchanged. Wrappers are
// deep-copied so that no sub-wrapper is shared between two trees. All mapping
// keys encountered along the way are validated under the given dialect.
func convertValue(v any, dialect Dialect) (any, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case *Config:
		return x.Convert(), nil
	case *ConfigList:
		return x.Convert(), nil
	case map[string]any:
		return newFromMap(x, dialect)
	case yaml.MapSlice:
		return newFromMapSlice(x, dialect)
	case []any:
		return newListFromSlice(x, dialect)
	case []byte, string:
		return x, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return newListFromSlice(items, dialect)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: mapping keys must be strings, got %s", ErrInvalidKey, rv.Type().Key())
		}
		m := make(map[string]any, rv.Len())
		for _, k := range rv.MapKeys() {
			m[k.String()] = rv.MapIndex(k).Interface()
		}
		return newFromMap(m, dialect)
	default:
		return v, nil
	}
}

// convertStored deep-copies an already-validated value. Used when cloning a
// wrapped hierarchy, where re-validation would be redundant.
func convertStored(v any) any {
	switch x := v.(type) {
	case *Config:
		return x.Convert()
	case *ConfigList:
		return x.Convert()
	default:
		return v
	}
}

// deconvertValue is the inverse of convertValue: wrappers unwrap to plain
// maps and slices, recursively, and scalars pass through. It also descends
// into plain maps and slices so that hybrid trees (plain containers holding
// wrappers) deconvert completely.
func deconvertValue(v any) any {
	switch x := v.(type) {
	case *Config:
		return x.Deconvert()
	case *ConfigList:
		return x.Deconvert()
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = deconvertValue(val)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = deconvertValue(val)
		}
		return out
	case yaml.MapSlice:
		out := make(map[string]any, len(x))
		for _, item := range x {
			out[fmt.Sprint(item.Key)] = deconvertValue(item.Value)
		}
		return out
	default:
		return v
	}
}

// newFromMap builds a Config from an unordered Go map. Keys are sorted so
// that traversal order is deterministic. Validation of every key precedes
// any construction, keeping the operation transactional.
func newFromMap(m map[string]any, dialect Dialect) (*Config, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if err := CheckKeys(keys, dialect); err != nil {
		return nil, err
	}
	c := &Config{keys: keys, values: make(map[string]any, len(m)), dialect: dialect}
	for _, k := range keys {
		v, err := convertValue(m[k], dialect)
		if err != nil {
			return nil, err
		}
		c.values[k] = v
	}
	return c, nil
}

// newFromMapSlice builds a Config from an ordered mapping as produced by
// the YAML decoder, preserving document order.
func newFromMapSlice(ms yaml.MapSlice, dialect Dialect) (*Config, error) {
	keys := make([]string, 0, len(ms))
	for _, item := range ms {
		k, ok := item.Key.(string)
		if !ok {
			return nil, fmt.Errorf("%w: mapping keys must be strings, got %T", ErrInvalidKey, item.Key)
		}
		keys = append(keys, k)
	}
	if err := CheckKeys(keys, dialect); err != nil {
		return nil, err
	}
	c := &Config{keys: keys, values: make(map[string]any, len(ms)), dialect: dialect}
	for i, item := range ms {
		v, err := convertValue(item.Value, dialect)
		if err != nil {
			return nil, err
		}
		c.values[keys[i]] = v
	}
	return c, nil
}

// newListFromSlice builds a ConfigList, converting every element.
func newListFromSlice(items []any, dialect Dialect) (*ConfigList, error) {
	l := &ConfigList{items: make([]any, len(items)), dialect: dialect}
	for i, item := range items {
		v, err := convertValue(item, dialect)
		if err != nil {
			return nil, err
		}
		l.items[i] = v
	}
	return l, nil
}

// plainMapping coerces a decoded document root into a plain Go map so it
// can participate in a defaults merge.
func plainMapping(root any) (map[string]any, error) {
	switch x := root.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return x, nil
	case yaml.MapSlice:
		out := make(map[string]any, len(x))
		for _, item := range x {
			k, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("%w: mapping keys must be strings, got %T", ErrInvalidKey, item.Key)
			}
			out[k] = plainValue(item.Value)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: document root is not a mapping (%T)", ErrFormatMismatch, root)
	}
}

// plainValue strips decoder-specific ordered-map types from a raw tree.
func plainValue(v any) any {
	switch x := v.(type) {
	case yaml.MapSlice:
		out := make(map[string]any, len(x))
		for _, item := range x {
			out[fmt.Sprint(item.Key)] = plainValue(item.Value)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = plainValue(val)
		}
		return out
	default:
		return v
	}
}
