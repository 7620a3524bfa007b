package holydiver

import (
	"fmt"
	"regexp"
	"sort"
)

// Dialect selects the key-validation policy applied to mapping keys.
type Dialect int

const (
	// DialectStrict rejects keys with a leading underscore in addition to
	// the identifier, dunder, and reserved-name rules. This is the default.
	DialectStrict Dialect = iota
	// DialectLenient allows keys with a single leading underscore. Dunder
	// keys and reserved names remain forbidden.
	DialectLenient
)

var (
	identifierPat = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
	dunderPat     = regexp.MustCompile(`^__.*__$`)
	privatePat    = regexp.MustCompile(`^_.*$`)
)

// reservedKeys enumerates the names a configuration key may never take:
// the dotted-address operation vocabulary plus the generic mapping surface.
// Keeping this an explicit constant set (rather than deriving it from the
// container types) keeps the reserved set stable.
var reservedKeys = map[string]struct{}{
	"check_required_keys": {},
	"clear":               {},
	"convert":             {},
	"copy":                {},
	"data":                {},
	"deconvert":           {},
	"deep_get":            {},
	"deep_items":          {},
	"deep_keys":           {},
	"depth":               {},
	"fromkeys":            {},
	"get":                 {},
	"items":               {},
	"keys":                {},
	"len":                 {},
	"pop":                 {},
	"popitem":             {},
	"search":              {},
	"set":                 {},
	"set_deep_key":        {},
	"setdefault":          {},
	"to_json":             {},
	"to_string":           {},
	"to_toml":             {},
	"to_yaml":             {},
	"update":              {},
	"values":              {},
}

// ReservedKeys returns the sorted set of names that cannot be used as
// configuration keys.
func ReservedKeys() []string {
	keys := make([]string, 0, len(reservedKeys))
	for k := range reservedKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CheckKeys checks that every key is a syntactically valid attribute name
// and not reserved. The first offending key aborts the check.
func CheckKeys(keys []string, dialect Dialect) error {
	for _, key := range keys {
		if !identifierPat.MatchString(key) {
			return fmt.Errorf("%w: %q is not a valid alphanumeric attribute name", ErrInvalidKey, key)
		}
		if dunderPat.MatchString(key) {
			return fmt.Errorf("%w: %q matches the dunder pattern", ErrInvalidKey, key)
		}
		if dialect == DialectStrict && privatePat.MatchString(key) {
			return fmt.Errorf("%w: %q matches the private pattern", ErrInvalidKey, key)
		}
		if _, ok := reservedKeys[key]; ok {
			return fmt.Errorf("%w: %q is a reserved attribute or method name", ErrInvalidKey, key)
		}
	}
	return nil
}

// IsProtected reports whether key belongs to the containers themselves
// rather than to configuration content: dunder, private, or reserved.
func IsProtected(key string) bool {
	if dunderPat.MatchString(key) || privatePat.MatchString(key) {
		return true
	}
	_, ok := reservedKeys[key]
	return ok
}
