package holydiver

// Options holds construction-time settings for a configuration container.
type Options struct {
	Defaults     map[string]any
	RequiredKeys []string
	IfMissing    IfMissing
	Dialect      Dialect
	Safe         bool
}

// Option defines a function type for applying construction options.
type Option func(*Options)

// WithDefaults supplies a defaults mapping to merge under the loaded data.
// Data wins on scalar conflicts; nested mappings merge key-wise. Defaults
// apply only to mapping containers.
func WithDefaults(defaults map[string]any) Option {
	return func(opts *Options) {
		opts.Defaults = defaults
	}
}

// WithRequiredKeys lists dotted keys that must be present after
// construction. The IfMissing policy decides what happens when they are not.
func WithRequiredKeys(keys ...string) Option {
	return func(opts *Options) {
		opts.RequiredKeys = append(opts.RequiredKeys, keys...)
	}
}

// WithIfMissing sets the policy applied when required keys are absent.
// Valid policies are IfMissingRaise (default), IfMissingWarn, and
// IfMissingReturn.
func WithIfMissing(policy IfMissing) Option {
	return func(opts *Options) {
		opts.IfMissing = policy
	}
}

// WithDialect selects the key-validation dialect. DialectStrict is the
// default.
func WithDialect(dialect Dialect) Option {
	return func(opts *Options) {
		opts.Dialect = dialect
	}
}

// WithSafe toggles safe loading. Only the YAML loaders honor it: safe mode
// selects strict decoding, which rejects duplicate mapping keys.
func WithSafe(safe bool) Option {
	return func(opts *Options) {
		opts.Safe = safe
	}
}

func newOptions(opts []Option) *Options {
	options := &Options{IfMissing: IfMissingRaise}
	for _, apply := range opts {
		apply(options)
	}
	return options
}
