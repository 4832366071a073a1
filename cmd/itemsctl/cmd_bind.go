package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newBindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bind <definition> <kind> [name=value]...",
		Short: "Bind name=value pairs, apply defaults and check required items",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := load()
			if err != nil {
				return err
			}
			reg, err := registryArgs(cat, args)
			if err != nil {
				return err
			}

			raw := make(map[string]any, len(args)-2)
			for _, pair := range args[2:] {
				name, value, found := strings.Cut(pair, "=")
				if !found {
					return fmt.Errorf("expected name=value, got %q", pair)
				}
				raw[name] = value
			}

			params, err := reg.Bind(raw)
			if params != nil {
				for item := range reg.All() {
					if params.Has(item.Name) {
						printf(cmd, "%s = %v\n", item.Name, params[item.Name])
					}
				}
			}
			return err
		},
	}
}
