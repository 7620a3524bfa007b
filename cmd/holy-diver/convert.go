package main

import (
	"fmt"

	holydiver "github.com/ndgigliotti/holy-diver"
	"github.com/spf13/cobra"
)

func newConvertCmd(root *rootOptions) *cobra.Command {
	var to string
	var out string

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert the configuration to another format",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := holydiver.FromFile(root.cfgPath)
			if err != nil {
				return err
			}
			if out != "" {
				return writeOut(cfg, to, out)
			}
			s, err := serialize(cfg, to)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), s)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&to, "to", "yaml", "target format: yaml, json, or toml")
	fs.StringVarP(&out, "out", "o", "", "output file path (prints to stdout when omitted)")

	return cmd
}

func serialize(cfg *holydiver.Config, format string) (string, error) {
	switch format {
	case "yaml", "yml":
		return cfg.ToYAML()
	case "json":
		return cfg.ToJSON()
	case "toml":
		return cfg.ToTOML()
	default:
		return "", fmt.Errorf("unsupported target format %q", format)
	}
}

func writeOut(cfg *holydiver.Config, format, path string) error {
	var written bool
	var err error
	switch format {
	case "yaml", "yml":
		written, err = cfg.WriteYAML(path)
	case "json":
		written, err = cfg.WriteJSON(path)
	case "toml":
		written, err = cfg.WriteTOML(path)
	default:
		return fmt.Errorf("unsupported target format %q", format)
	}
	if err != nil {
		return err
	}
	if !written {
		return fmt.Errorf("output file %q was not created", path)
	}
	return nil
}
