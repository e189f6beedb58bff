package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-loom/loom/pkg/facet"
	"github.com/go-loom/loom/pkg/facets"
)

func newChainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chain <kind>",
		Short: "Print the cascade chain for a facet kind",
		Long: `Print the cascade chain for a facet kind, leaf first.

Installing the kind installs every chain member on the entity, all
wrapping the identical native widget.

Examples:
  loom chain button
  loom chain stack-panel --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")

			tax := facets.Builtin()
			chain, ok := tax.Chain(facet.Kind(args[0]))
			if !ok {
				return fmt.Errorf("unknown facet kind %q", args[0])
			}

			if format == "yaml" {
				entries := make([]kindEntry, 0, len(chain))
				for _, d := range chain {
					entries = append(entries, describe(tax, d))
				}
				return yaml.NewEncoder(os.Stdout).Encode(entries)
			}
			for i, d := range chain {
				if i == 0 {
					fmt.Printf("%s\n", d.Kind)
				} else {
					fmt.Printf("  -> %s\n", d.Kind)
				}
			}
			return nil
		},
	}
}
