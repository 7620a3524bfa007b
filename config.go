package holydiver

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"
)

// IfMissing is the policy applied when a required-key check finds missing
// keys.
type IfMissing string

const (
	// IfMissingRaise fails the check with ErrMissingKeys.
	IfMissingRaise IfMissing = "raise"
	// IfMissingWarn logs a warning and returns the missing keys.
	IfMissingWarn IfMissing = "warn"
	// IfMissingReturn returns the missing keys silently.
	IfMissingReturn IfMissing = "return"
)

// Config is an insertion-ordered mapping from validated string keys to
// scalars or nested containers. Every nested mapping reachable from a
// Config is itself a *Config and every nested sequence a *ConfigList, so
// dotted-key navigation works at any depth.
//
// A Config constructed from an unordered Go map sorts its keys for
// deterministic traversal; configs loaded from YAML preserve document
// order. A nested container returned by Get or DeepGet is the one stored
// in the tree, so mutating it mutates the tree; Convert returns an
// independent deep copy.
type Config struct {
	keys    []string
	values  map[string]any
	dialect Dialect
}

// New creates a Config from a plain mapping. If both data and a defaults
// mapping (via WithDefaults) are given, the effective content is the
// defaults deep-merged with data, data winning on scalar conflicts. Every
// key in the tree is validated before any state is built; a single invalid
// key fails the whole construction. WithRequiredKeys triggers a required-key
// check under the configured IfMissing policy.
func New(data map[string]any, opts ...Option) (*Config, error) {
	o := newOptions(opts)
	var root any = data
	if data == nil {
		root = map[string]any{}
	}
	return newMapping(root, o)
}

// newMapping finishes construction from a raw mapping root: conversion,
// then the optional required-key check.
func newMapping(root any, o *Options) (*Config, error) {
	if root == nil {
		// An empty document decodes to nil; treat it as an empty mapping.
		root = map[string]any{}
	}
	if o.Defaults != nil {
		plain, err := plainMapping(root)
		if err != nil {
			return nil, err
		}
		root = DeepMerge(o.Defaults, plain)
	}
	v, err := convertValue(root, o.Dialect)
	if err != nil {
		return nil, err
	}
	cfg, ok := v.(*Config)
	if !ok {
		return nil, fmt.Errorf("%w: document root is not a mapping (%T)", ErrFormatMismatch, root)
	}
	if o.RequiredKeys != nil {
		if _, err := cfg.CheckRequiredKeys(o.RequiredKeys, o.IfMissing); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Len returns the number of top-level keys.
func (c *Config) Len() int {
	return len(c.keys)
}

// Keys returns the top-level keys in traversal order.
func (c *Config) Keys() []string {
	return slices.Clone(c.keys)
}

// Get returns the value stored under key. A proper dotted key (at least one
// dot) is resolved level by level via DeepGet; anything else addresses a
// single top-level entry.
func (c *Config) Get(key string) (any, error) {
	if deepKeyProperPat.MatchString(key) {
		return c.DeepGet(key)
	}
	v, ok := c.values[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return v, nil
}

// Set validates key, recursively wraps value, and stores it at this level.
// Dotted-path assignment is not supported here; see SetDeepKey.
func (c *Config) Set(key string, value any) error {
	if err := CheckKeys([]string{key}, c.dialect); err != nil {
		return err
	}
	v, err := convertValue(value, c.dialect)
	if err != nil {
		return err
	}
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = v
	return nil
}

// SetDeepKey would assign a value through a dotted path. The operation is
// part of the addressing contract but deliberately unimplemented; it always
// returns ErrUnsupported rather than silently doing nothing.
func (c *Config) SetDeepKey(key string, _ any) error {
	return fmt.Errorf("%w: dotted-path assignment of %q", ErrUnsupported, key)
}

// DeepGet resolves a dotted key against the tree, one segment per level.
func (c *Config) DeepGet(key string) (any, error) {
	return deepGet(c, key)
}

// DeepKeys returns every dotted key reachable from this node: each
// top-level key, followed by its children's keys prefixed with it.
// Traversal order is the mapping's key order, then recursive order of the
// children. The listing is not sorted.
func (c *Config) DeepKeys() []string {
	var keys []string
	for _, k := range c.keys {
		keys = append(keys, k)
		switch child := c.values[k].(type) {
		case *Config:
			for _, ck := range child.DeepKeys() {
				keys = append(keys, k+"."+ck)
			}
		case *ConfigList:
			for _, ck := range child.DeepKeys() {
				keys = append(keys, k+"."+ck)
			}
		}
	}
	return keys
}

// DeepItems pairs every dotted key with its value, in DeepKeys order.
func (c *Config) DeepItems() ([]Item, error) {
	return deepItems(c, c.DeepKeys())
}

// Depth returns the maximum dot-count across DeepKeys. A flat or empty
// mapping has depth 0.
func (c *Config) Depth() int {
	return depthOf(c.DeepKeys())
}

// CheckRequiredKeys checks that every required dotted key is present,
// returning the sorted missing keys. The policy decides the outcome for a
// non-empty result: IfMissingRaise fails with ErrMissingKeys,
// IfMissingWarn logs a warning and returns the list, IfMissingReturn
// returns it silently. An unrecognized policy fails with
// ErrInvalidArgument before any other work.
func (c *Config) CheckRequiredKeys(keys []string, ifMissing IfMissing) ([]string, error) {
	return checkRequiredKeys(keys, c.DeepKeys(), ifMissing)
}

func checkRequiredKeys(required, deepKeys []string, ifMissing IfMissing) ([]string, error) {
	switch ifMissing {
	case IfMissingRaise, IfMissingWarn, IfMissingReturn:
	default:
		return nil, fmt.Errorf("%w: if_missing must be %q, %q, or %q, not %q",
			ErrInvalidArgument, IfMissingRaise, IfMissingWarn, IfMissingReturn, ifMissing)
	}
	missing := missingFrom(required, deepKeys)
	if len(missing) == 0 {
		return missing, nil
	}
	switch ifMissing {
	case IfMissingRaise:
		return missing, fmt.Errorf("%w: %s", ErrMissingKeys, strings.Join(missing, ", "))
	case IfMissingWarn:
		slog.Warn("configuration is missing required keys", slog.Any("missing", missing))
	}
	return missing, nil
}

// Search matches pattern against the final segment of every dotted key,
// returning the matching key/value pairs in DeepKeys order. By default the
// final segment must equal pattern exactly; with WithRegex, pattern is
// matched as a regular expression. Several dotted keys may share a final
// segment, and all of them match.
func (c *Config) Search(pattern string, opts ...SearchOption) ([]Item, error) {
	items, err := c.DeepItems()
	if err != nil {
		return nil, err
	}
	return searchItems(items, pattern, newSearchOptions(opts).regex)
}

// SearchValues is Search returning only the matched values, in the same
// order.
func (c *Config) SearchValues(pattern string, opts ...SearchOption) ([]any, error) {
	matches, err := c.Search(pattern, opts...)
	if err != nil {
		return nil, err
	}
	values := make([]any, len(matches))
	for i, m := range matches {
		values[i] = m.Value
	}
	return values, nil
}

// Update merges other into the configuration. Shallow mode converts each of
// other's entries and stores it at the top level, overwriting existing
// entries wholesale. Deep mode deconverts both trees, deep-merges them, and
// reconverts the result, so nested mappings merge key-wise.
func (c *Config) Update(other map[string]any, deep bool) error {
	if deep {
		plain, _ := deconvertValue(other).(map[string]any)
		merged := DeepMerge(c.Deconvert(), plain)
		next, err := newFromMap(merged, c.dialect)
		if err != nil {
			return err
		}
		c.keys, c.values = next.keys, next.values
		return nil
	}
	keys := make([]string, 0, len(other))
	for k := range other {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if err := CheckKeys(keys, c.dialect); err != nil {
		return err
	}
	for _, k := range keys {
		v, err := convertValue(other[k], c.dialect)
		if err != nil {
			return err
		}
		if _, ok := c.values[k]; !ok {
			c.keys = append(c.keys, k)
		}
		c.values[k] = v
	}
	return nil
}

// Convert returns an independent deep copy of the wrapped hierarchy. The
// operation is pure and idempotent: converting twice yields a structure
// equal by value to converting once.
func (c *Config) Convert() *Config {
	out := &Config{
		keys:    slices.Clone(c.keys),
		values:  make(map[string]any, len(c.values)),
		dialect: c.dialect,
	}
	for k, v := range c.values {
		out.values[k] = convertStored(v)
	}
	return out
}

// Deconvert walks the wrapped hierarchy and returns plain nested maps and
// slices, leaving scalars untouched.
func (c *Config) Deconvert() map[string]any {
	out := make(map[string]any, len(c.keys))
	for _, k := range c.keys {
		out[k] = deconvertValue(c.values[k])
	}
	return out
}

// String renders a human-readable dump of the deconverted tree.
func (c *Config) String() string {
	return dumpString(c.Deconvert())
}

// SearchOption configures a Search call.
type SearchOption func(*searchOptions)

type searchOptions struct {
	regex bool
}

// WithRegex switches Search from exact final-segment equality to regular
// expression matching.
func WithRegex() SearchOption {
	return func(o *searchOptions) {
		o.regex = true
	}
}

func newSearchOptions(opts []SearchOption) *searchOptions {
	o := &searchOptions{}
	for _, apply := range opts {
		apply(o)
	}
	return o
}
