package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list <definition> <kind>",
		Short: "List the items of one registry, inherited ones included",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := load()
			if err != nil {
				return err
			}
			reg, err := registryArgs(cat, args)
			if err != nil {
				return err
			}

			aliases := make(map[string][]string)
			for alias, target := range reg.Aliases() {
				aliases[target] = append(aliases[target], alias)
			}

			for item := range reg.All() {
				var flags []string
				if item.Required {
					flags = append(flags, "required")
				}
				if item.Vargs {
					flags = append(flags, "vargs")
				}
				if item.HasValue {
					flags = append(flags, "default")
				}
				line := item.Name
				if item.Type != "" {
					line += ":" + item.Type
				}
				printf(cmd, "%-24s %-24s %s", line, strings.Join(flags, ","), item.Description)
				if a := aliases[item.Name]; len(a) > 0 {
					printf(cmd, " (aliases: %s)", strings.Join(a, ", "))
				}
				printf(cmd, "\n")
			}
			return nil
		},
	}
}
