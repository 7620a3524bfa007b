package di

import (
	"errors"
	"fmt"

	holydiver "github.com/ndgigliotti/holy-diver"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")

// Provider returns a constructor function that loads a configuration file.
// The file format is chosen from the extension (.yaml/.yml, .json, .toml).
// This pattern is Fx-friendly, letting the DI container control when the
// file is actually read.
func Provider(path string, opts ...holydiver.Option) func() (*holydiver.Config, error) {
	return func() (*holydiver.Config, error) {
		cfg, err := holydiver.FromFile(path, opts...)
		if err != nil {
			return nil, fmt.Errorf("loading config %q: %w", path, err)
		}
		return cfg, nil
	}
}

// Module creates an Fx module that supplies a *holydiver.Config loaded from
// path. The name is used as both the Fx module name and the DI named tag
// for the config, so several configuration files can coexist in one app.
// Construction options (defaults, required keys, dialect) are forwarded to
// the loader.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Module(name, path string, opts ...holydiver.Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				Provider(path, opts...),
				fx.ResultTags(fmt.Sprintf(`name:%q`, name)),
			),
		),
	)
}
