package holydiver

import (
	"fmt"
	"strconv"
)

// ConfigList is an ordered, 0-indexed sequence of scalars or nested
// containers, the sequence counterpart of Config. Positions are addressed
// either by integer or by digit-string segment, with or without a leading
// underscore: At(3), Get("3"), and Get("_3") all return the same element.
type ConfigList struct {
	items   []any
	dialect Dialect
}

// NewList creates a ConfigList from a plain sequence, recursively wrapping
// every element. WithRequiredKeys triggers a required-key check against
// this node's own deep keys under the configured IfMissing policy.
// WithDefaults is a mapping-only option and fails here with
// ErrInvalidArgument.
func NewList(data []any, opts ...Option) (*ConfigList, error) {
	o := newOptions(opts)
	if o.Defaults != nil {
		return nil, fmt.Errorf("%w: defaults are not supported for sequence configurations", ErrInvalidArgument)
	}
	return newSequence(data, o)
}

// newSequence finishes construction from a raw sequence root.
func newSequence(items []any, o *Options) (*ConfigList, error) {
	l, err := newListFromSlice(items, o.Dialect)
	if err != nil {
		return nil, err
	}
	if o.RequiredKeys != nil {
		if _, err := l.CheckRequiredKeys(o.RequiredKeys, o.IfMissing); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Len returns the number of elements.
func (l *ConfigList) Len() int {
	return len(l.items)
}

// Keys returns the underscore-prefixed positional index of every element:
// _0, _1, and so on.
func (l *ConfigList) Keys() []string {
	keys := make([]string, len(l.items))
	for i := range l.items {
		keys[i] = "_" + strconv.Itoa(i)
	}
	return keys
}

// At returns the element at position i.
func (l *ConfigList) At(i int) (any, error) {
	if i < 0 || i >= len(l.items) {
		return nil, fmt.Errorf("%w: index %d (len %d)", ErrIndexOutOfRange, i, len(l.items))
	}
	return l.items[i], nil
}

// Get resolves a string address. A digit segment, bare or
// underscore-prefixed, addresses one position; a proper dotted key resolves
// level by level via DeepGet.
func (l *ConfigList) Get(key string) (any, error) {
	if i, ok := listIndex(key); ok {
		return l.At(i)
	}
	if deepKeyProperPat.MatchString(key) {
		return l.DeepGet(key)
	}
	return nil, fmt.Errorf("%w: %q is not a valid index or deep key", ErrInvalidArgument, key)
}

// SetAt recursively wraps value and stores it at position i.
func (l *ConfigList) SetAt(i int, value any) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("%w: index %d (len %d)", ErrIndexOutOfRange, i, len(l.items))
	}
	v, err := convertValue(value, l.dialect)
	if err != nil {
		return err
	}
	l.items[i] = v
	return nil
}

// Set is SetAt addressed by a digit segment, bare or underscore-prefixed.
func (l *ConfigList) Set(key string, value any) error {
	i, ok := listIndex(key)
	if !ok {
		return fmt.Errorf("%w: %q is not a valid index", ErrInvalidArgument, key)
	}
	return l.SetAt(i, value)
}

// Append recursively wraps value and adds it to the end of the sequence.
func (l *ConfigList) Append(value any) error {
	v, err := convertValue(value, l.dialect)
	if err != nil {
		return err
	}
	l.items = append(l.items, v)
	return nil
}

// Slice returns a new, independently owned ConfigList over the half-open
// range [from, to). Out-of-range bounds are clamped.
func (l *ConfigList) Slice(from, to int) *ConfigList {
	if from < 0 {
		from = 0
	}
	if to > len(l.items) {
		to = len(l.items)
	}
	if from > to {
		from = to
	}
	out := &ConfigList{items: make([]any, to-from), dialect: l.dialect}
	for i, v := range l.items[from:to] {
		out.items[i] = convertStored(v)
	}
	return out
}

// DeepGet resolves a dotted key against the tree, one segment per level.
func (l *ConfigList) DeepGet(key string) (any, error) {
	return deepGet(l, key)
}

// DeepKeys returns every dotted key reachable from this node, using the
// underscore-prefixed positional index as the address segment at this
// level.
func (l *ConfigList) DeepKeys() []string {
	var keys []string
	for i, v := range l.items {
		prefix := "_" + strconv.Itoa(i)
		keys = append(keys, prefix)
		switch child := v.(type) {
		case *Config:
			for _, ck := range child.DeepKeys() {
				keys = append(keys, prefix+"."+ck)
			}
		case *ConfigList:
			for _, ck := range child.DeepKeys() {
				keys = append(keys, prefix+"."+ck)
			}
		}
	}
	return keys
}

// DeepItems pairs every dotted key with its value, in DeepKeys order.
func (l *ConfigList) DeepItems() ([]Item, error) {
	return deepItems(l, l.DeepKeys())
}

// Depth returns the maximum dot-count across DeepKeys. A flat or empty
// sequence has depth 0.
func (l *ConfigList) Depth() int {
	return depthOf(l.DeepKeys())
}

// CheckRequiredKeys checks required dotted keys against this node's own
// deep keys, exactly as for Config.
func (l *ConfigList) CheckRequiredKeys(keys []string, ifMissing IfMissing) ([]string, error) {
	return checkRequiredKeys(keys, l.DeepKeys(), ifMissing)
}

// Search matches pattern against the final segment of every dotted key;
// see Config.Search.
func (l *ConfigList) Search(pattern string, opts ...SearchOption) ([]Item, error) {
	items, err := l.DeepItems()
	if err != nil {
		return nil, err
	}
	return searchItems(items, pattern, newSearchOptions(opts).regex)
}

// SearchValues is Search returning only the matched values.
func (l *ConfigList) SearchValues(pattern string, opts ...SearchOption) ([]any, error) {
	matches, err := l.Search(pattern, opts...)
	if err != nil {
		return nil, err
	}
	values := make([]any, len(matches))
	for i, m := range matches {
		values[i] = m.Value
	}
	return values, nil
}

// Convert returns an independent deep copy of the wrapped hierarchy.
func (l *ConfigList) Convert() *ConfigList {
	out := &ConfigList{items: make([]any, len(l.items)), dialect: l.dialect}
	for i, v := range l.items {
		out.items[i] = convertStored(v)
	}
	return out
}

// Deconvert walks the wrapped hierarchy and returns plain nested slices and
// maps, leaving scalars untouched.
func (l *ConfigList) Deconvert() []any {
	out := make([]any, len(l.items))
	for i, v := range l.items {
		out[i] = deconvertValue(v)
	}
	return out
}

// String renders a human-readable dump of the deconverted tree.
func (l *ConfigList) String() string {
	return dumpString(l.Deconvert())
}
