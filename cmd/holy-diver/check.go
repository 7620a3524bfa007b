package main

import (
	"fmt"

	holydiver "github.com/ndgigliotti/holy-diver"
	"github.com/spf13/cobra"
)

func newCheckCmd(root *rootOptions) *cobra.Command {
	var required []string
	var warnOnly bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that required dotted keys are present",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := holydiver.FromFile(root.cfgPath)
			if err != nil {
				return err
			}
			policy := holydiver.IfMissingRaise
			if warnOnly {
				policy = holydiver.IfMissingWarn
			}
			missing, err := cfg.CheckRequiredKeys(required, policy)
			if err != nil {
				return err
			}
			if len(missing) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "ok")
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringSliceVarP(&required, "require", "r", nil, "required dotted key (repeatable)")
	fs.BoolVar(&warnOnly, "warn", false, "warn about missing keys instead of failing")

	return cmd
}
