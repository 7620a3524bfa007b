package holydiver

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Dotted-key grammar. A deep key is one or more \w+ segments joined by
// dots; a proper deep key has at least one dot. Sequence positions are
// addressed by digit segments, with or without a leading underscore, so
// "3.1.b" and "_3._1.b" are equivalent.
var (
	deepKeyPat       = regexp.MustCompile(`^(?:\w+\.)*\w+$`)
	deepKeyProperPat = regexp.MustCompile(`^(?:\w+\.)+\w+$`)
	listIndexPat     = regexp.MustCompile(`^_?([0-9]+)$`)
)

// IsDeepKey reports whether key is a syntactically valid dotted key.
func IsDeepKey(key string) bool {
	return deepKeyPat.MatchString(key)
}

// listIndex parses a sequence index segment, accepting both the bare-digit
// and the underscore-prefixed form.
func listIndex(segment string) (int, bool) {
	m := listIndexPat.FindStringSubmatch(segment)
	if m == nil {
		return 0, false
	}
	i, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return i, true
}

// deepGet resolves a dotted key against a wrapped hierarchy, one segment
// per level. Mapping levels resolve segments by name, sequence levels by
// positional index.
func deepGet(root any, key string) (any, error) {
	if !deepKeyPat.MatchString(key) {
		return nil, fmt.Errorf("%w: %q is not a valid deep key", ErrInvalidArgument, key)
	}
	value := root
	for _, segment := range strings.Split(key, ".") {
		switch node := value.(type) {
		case *Config:
			child, ok := node.values[segment]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
			}
			value = child
		case *ConfigList:
			i, ok := listIndex(segment)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
			}
			if i < 0 || i >= len(node.items) {
				return nil, fmt.Errorf("%w: index %d in key %q (len %d)", ErrIndexOutOfRange, i, key, len(node.items))
			}
			value = node.items[i]
		default:
			return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
		}
	}
	return value, nil
}

// Item is one dotted key paired with the value it addresses.
type Item struct {
	Key   string
	Value any
}

// deepItems pairs every dotted key with its value, in deep-key order.
func deepItems(root any, keys []string) ([]Item, error) {
	items := make([]Item, 0, len(keys))
	for _, k := range keys {
		v, err := deepGet(root, k)
		if err != nil {
			return nil, err
		}
		items = append(items, Item{Key: k, Value: v})
	}
	return items, nil
}

// depthOf computes the maximum dot-count across a deep-key listing. A flat
// or empty tree has depth 0.
func depthOf(keys []string) int {
	depth := 0
	for _, k := range keys {
		if n := strings.Count(k, "."); n > depth {
			depth = n
		}
	}
	return depth
}

// searchItems matches pattern against the final segment of every dotted
// key, preserving deep-key order. Without the regex flag the final segment
// must equal pattern exactly; with it, pattern is matched as a regular
// expression anywhere in the final segment.
func searchItems(items []Item, pattern string, regex bool) ([]Item, error) {
	var re *regexp.Regexp
	if regex {
		var err error
		re, err = regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: bad search pattern %q: %v", ErrInvalidArgument, pattern, err)
		}
	}
	var matches []Item
	for _, item := range items {
		segments := strings.Split(item.Key, ".")
		final := segments[len(segments)-1]
		if regex {
			if re.MatchString(final) {
				matches = append(matches, item)
			}
			continue
		}
		if final == pattern {
			matches = append(matches, item)
		}
	}
	return matches, nil
}

// missingFrom computes the sorted set of required keys absent from the
// deep-key listing. Duplicate requirements collapse to one entry.
func missingFrom(required, deepKeys []string) []string {
	have := make(map[string]struct{}, len(deepKeys))
	for _, k := range deepKeys {
		have[k] = struct{}{}
	}
	seen := make(map[string]struct{}, len(required))
	var missing []string
	for _, k := range required {
		if _, ok := have[k]; ok {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		missing = append(missing, k)
	}
	sort.Strings(missing)
	return missing
}
