package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/younwookim/tinytown/internal/infrastructure/config"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the embedded variants",
	Args:  cobra.NoArgs,
	RunE:  runVariants,
}

func runVariants(cmd *cobra.Command, args []string) error {
	names, err := config.Presets().Names()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Available variants:")
	fmt.Fprintln(out)
	for _, name := range names {
		desc := ""
		if cfg, err := config.LoadPreset(name); err == nil {
			desc = cfg.Description
		}
		fmt.Fprintf(out, "  %-12s  %s\n", name, desc)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'tinytown play --variant <name>' to play one.")
	return nil
}
