package main

import (
	"log/slog"

	"github.com/ndgigliotti/holy-diver/logging"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	cfgPath  string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := rootOptions{}
	cmd := &cobra.Command{
		Use:           "holy-diver",
		Short:         "Inspect and convert nested configuration files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger := logging.NewLogger(logging.LoggerConfig{
				Level:  opts.logLevel,
				Format: logging.FormatText,
			}, cmd.ErrOrStderr())
			slog.SetDefault(logger)
		},
	}

	fs := cmd.PersistentFlags()
	fs.StringVarP(&opts.cfgPath, "config", "c", "config.yaml", "config file path (.yaml, .json, or .toml)")
	fs.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	cmd.AddCommand(newKeysCmd(&opts))
	cmd.AddCommand(newGetCmd(&opts))
	cmd.AddCommand(newCheckCmd(&opts))
	cmd.AddCommand(newConvertCmd(&opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
