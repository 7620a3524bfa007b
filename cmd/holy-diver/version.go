package main

import (
	"fmt"

	holydiver "github.com/ndgigliotti/holy-diver"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "holy-diver %s (built %s)\n", holydiver.Version, holydiver.CompiledAt)
			return err
		},
	}
}
