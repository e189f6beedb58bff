package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-loom/loom/pkg/facet"
	"github.com/go-loom/loom/pkg/facets"
)

func newGraphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Emit the cascade graph as Graphviz DOT",
		Long: `Emit the cascade-parent relation of the built-in taxonomy as a
Graphviz DOT digraph. Pipe through dot to render:

  loom graph | dot -Tsvg -o taxonomy.svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tax := facets.Builtin()
			out := os.Stdout

			fmt.Fprintln(out, "digraph taxonomy {")
			fmt.Fprintln(out, "  rankdir=BT;")
			fmt.Fprintln(out, "  node [shape=box, fontname=\"sans-serif\"];")
			for _, kind := range tax.Kinds() {
				d, _ := tax.Descriptor(kind)
				switch {
				case d.Container:
					fmt.Fprintf(out, "  %q [style=filled, fillcolor=lightblue];\n", kind)
				case d.Content:
					fmt.Fprintf(out, "  %q [style=filled, fillcolor=lightyellow];\n", kind)
				}
				if d.CascadeParent != facet.KindNone {
					fmt.Fprintf(out, "  %q -> %q;\n", kind, d.CascadeParent)
				}
			}
			fmt.Fprintln(out, "}")
			return nil
		},
	}
}
