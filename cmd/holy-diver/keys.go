package main

import (
	"fmt"

	holydiver "github.com/ndgigliotti/holy-diver"
	"github.com/spf13/cobra"
)

func newKeysCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List every dotted key in the configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := holydiver.FromFile(root.cfgPath)
			if err != nil {
				return err
			}
			for _, key := range cfg.DeepKeys() {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
			return nil
		},
	}
}
