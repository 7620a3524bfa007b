package holydiver

import "errors"

// ErrInvalidKey is returned when a configuration key fails the identifier,
// dunder, private, or reserved-name checks.
var ErrInvalidKey = errors.New("invalid key")

// ErrKeyNotFound is returned when a plain or dotted key addresses a missing
// mapping entry.
var ErrKeyNotFound = errors.New("key not found")

// ErrIndexOutOfRange is returned when a positional index addresses a missing
// sequence element.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrMissingKeys is returned by the required-key check under the raise policy.
// The error message carries the sorted list of missing dotted keys.
var ErrMissingKeys = errors.New("missing required keys")

// ErrInvalidArgument is returned when a caller passes an unrecognized policy
// or a malformed dotted key or search pattern.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrFormatMismatch is returned when a loaded document's root type (mapping
// vs. sequence) does not match the container being constructed.
var ErrFormatMismatch = errors.New("format mismatch")

// ErrUnsupported is returned by operations that are part of the contract but
// deliberately not implemented, such as dotted-path assignment.
var ErrUnsupported = errors.New("unsupported operation")
