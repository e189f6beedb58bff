package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-loom/loom/pkg/config"
	"github.com/go-loom/loom/pkg/facet"
	"github.com/go-loom/loom/pkg/facets"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the built-in taxonomy and project config",
		Long: `Validate the built-in facet catalog against the taxonomy rules:
no duplicate kinds, no dangling cascade parents, no cycles, no reserved
kinds. When run inside a project, also resolves loom.yaml and go.mod.

Examples:
  loom validate`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tax, err := facet.NewTaxonomy(facets.Catalog()...)
			if err != nil {
				return fmt.Errorf("taxonomy invalid: %w", err)
			}
			fmt.Printf("taxonomy ok: %d kinds\n", tax.Len())

			root, err := config.FindProjectRoot()
			if err != nil {
				// Not inside a module. The catalog check above is still useful.
				return nil
			}
			resolved, err := config.Resolve(root)
			if err != nil {
				return fmt.Errorf("config invalid: %w", err)
			}
			fmt.Printf("config ok: adapter %q (id %s)\n", resolved.AdapterName, resolved.AdapterID)
			return nil
		},
	}
}
