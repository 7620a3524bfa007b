// Package holydiver wraps nested configuration data (parsed YAML, JSON, or
// TOML) in containers that support dotted-key navigation.
//
// The package provides two mutually recursive container types:
//   - Config: an ordered mapping from validated string keys to values
//   - ConfigList: an ordered sequence, positionally indexed
//
// Converting a plain tree wraps every nested mapping in a Config and every
// nested sequence in a ConfigList, so deeply nested values can be read
// either step by step or through a single dotted key:
//
//	cfg, err := holydiver.FromYAML("config.yaml")
//	if err != nil {
//	    // handle error
//	}
//	timeout, err := cfg.DeepGet("models.bart.timeout")
//
// Sequence positions are addressed by digit segments, bare or
// underscore-prefixed: "layers.0.units" and "layers._0.units" are
// equivalent.
//
// # Key Validation
//
// Every mapping key must be a valid identifier and must not collide with
// the containers' own operation vocabulary (reserved names such as
// "convert" or "deep_keys") or match the dunder pattern. The strict
// dialect, the default, also forbids leading-underscore keys; see Dialect.
// Violations fail at construction or assignment time with ErrInvalidKey.
//
// # Defaults and Required Keys
//
// Constructors accept a defaults mapping merged under the data (data wins
// on scalar conflicts, nested mappings merge key-wise) and a list of
// required dotted keys checked under a configurable policy: fail, warn, or
// silently report. See WithDefaults, WithRequiredKeys, and WithIfMissing.
//
// # Serialization
//
// Both containers serialize back to the supported formats via ToYAML,
// ToJSON, and ToTOML (mapping only), or write directly to a file via the
// Write variants.
package holydiver
