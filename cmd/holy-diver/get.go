package main

import (
	"fmt"

	holydiver "github.com/ndgigliotti/holy-diver"
	"github.com/spf13/cobra"
)

func newGetCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <dotted-key>",
		Short: "Print the value at a dotted key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := holydiver.FromFile(root.cfgPath)
			if err != nil {
				return err
			}
			value, err := cfg.Get(args[0])
			if err != nil {
				return err
			}
			return printValue(cmd, value)
		},
	}
}

// printValue renders nested containers as YAML and scalars plainly.
func printValue(cmd *cobra.Command, value any) error {
	switch v := value.(type) {
	case *holydiver.Config:
		s, err := v.ToYAML()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), s)
	case *holydiver.ConfigList:
		s, err := v.ToYAML()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), s)
	default:
		fmt.Fprintln(cmd.OutOrStdout(), v)
	}
	return nil
}
