// Command loom inspects the built-in facet taxonomy: the registration data
// the cascade engine interprets. It exists for adapter authors extending
// the catalog and for debugging cascade chains.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "loom",
		Short: "Loom - facet taxonomy tooling",
		Long: `loom inspects the facet taxonomy used by the Loom adapter layer.

The taxonomy is the declarative table mapping each facet kind to its
cascade parent, its native event subscriptions, and its placement rule.`,
	}

	rootCmd.PersistentFlags().String("format", "text", "Output format (text or yaml)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newKindsCmd(),
		newChainCmd(),
		newValidateCmd(),
		newGraphCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the loom version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("loom %s\n", version)
		},
	}
}
