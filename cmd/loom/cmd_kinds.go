package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-loom/loom/pkg/facet"
	"github.com/go-loom/loom/pkg/facets"
)

// kindEntry is the exportable view of one descriptor.
type kindEntry struct {
	Kind          string   `yaml:"kind"`
	CascadeParent string   `yaml:"cascade_parent,omitempty"`
	Subscriptions []string `yaml:"subscriptions,omitempty"`
	Placement     string   `yaml:"placement"`
	Container     bool     `yaml:"container,omitempty"`
	Content       bool     `yaml:"content,omitempty"`
}

func newKindsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List every registered facet kind",
		Long: `List every facet kind in the built-in taxonomy with its cascade
parent, native subscriptions, and placement rule.

Examples:
  loom kinds
  loom kinds --format yaml
  loom kinds --debug`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			debug, _ := cmd.Flags().GetBool("debug")

			tax := facets.Builtin()
			if debug {
				for _, kind := range tax.Kinds() {
					d, _ := tax.Descriptor(kind)
					spew.Fdump(os.Stdout, d)
				}
				return nil
			}

			entries := make([]kindEntry, 0, tax.Len())
			for _, kind := range tax.Kinds() {
				d, _ := tax.Descriptor(kind)
				entries = append(entries, describe(tax, d))
			}

			if format == "yaml" {
				return yaml.NewEncoder(os.Stdout).Encode(entries)
			}
			for _, e := range entries {
				parent := e.CascadeParent
				if parent == "" {
					parent = "-"
				}
				fmt.Printf("%-18s parent=%-18s placement=%-16s subs=%d\n",
					e.Kind, parent, e.Placement, len(e.Subscriptions))
			}
			return nil
		},
	}
	cmd.Flags().Bool("debug", false, "Dump raw descriptor internals")
	return cmd
}

func describe(tax *facet.Taxonomy, d facet.Descriptor) kindEntry {
	entry := kindEntry{
		Kind:      string(d.Kind),
		Placement: tax.Placement(d.Kind).String(),
		Container: d.Container,
		Content:   d.Content,
	}
	if d.CascadeParent != facet.KindNone {
		entry.CascadeParent = string(d.CascadeParent)
	}
	for _, s := range d.Subscriptions {
		entry.Subscriptions = append(entry.Subscriptions, string(s))
	}
	return entry
}
