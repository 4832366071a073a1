package main

import (
	"github.com/spf13/cobra"
)

func newResolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <definition> <kind> <name>...",
		Short: "Resolve names to canonical item names",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := load()
			if err != nil {
				return err
			}
			reg, err := registryArgs(cat, args)
			if err != nil {
				return err
			}

			for _, name := range args[2:] {
				canonical, err := reg.Canonicalize(name)
				if err != nil {
					return err
				}
				printf(cmd, "%s -> %s\n", name, canonical)
			}
			return nil
		},
	}
}
