package main

import (
	"github.com/lixenwraith/items"
	"github.com/spf13/cobra"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load the schema and report every definition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := load()
			if err != nil {
				return err
			}

			for _, def := range cat.Definitions() {
				parent := "-"
				if def.Extends != "" {
					parent = def.Extends
				}
				printf(cmd, "%-20s extends %-12s", def.Title(), parent)
				for _, kind := range items.Kinds() {
					reg, err := cat.Registry(def, kind)
					if err != nil {
						return err
					}
					printf(cmd, " %s=%d", kind.Plural, reg.Len())
				}
				printf(cmd, "\n")
			}
			return nil
		},
	}
}
