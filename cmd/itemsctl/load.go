package main

import (
	"fmt"

	"github.com/lixenwraith/items"
	"github.com/spf13/cobra"
)

// load builds the catalog from --schema or a discovered itemsctl.{toml,yaml,json}
func load() (*items.Catalog, error) {
	return items.NewBuilder().
		WithFile(flagSchema).
		WithDiscovery(items.DefaultDiscoveryOptions(appName)).
		WithArgs(nil).
		WithFormat(flagFormat).
		WithSeal().
		Build()
}

// parseKind accepts singular or plural kind labels
func parseKind(s string) (items.Kind, error) {
	kind, ok := items.KindByName(s)
	if !ok {
		return items.Kind{}, fmt.Errorf("unknown kind %q (want switches, parameters or commands)", s)
	}
	return kind, nil
}

// registryArgs resolves the <definition> <kind> positional pair shared by subcommands
func registryArgs(cat *items.Catalog, args []string) (*items.Registry, error) {
	def, ok := cat.Definition(args[0])
	if !ok {
		return nil, fmt.Errorf("no definition named %q", args[0])
	}
	kind, err := parseKind(args[1])
	if err != nil {
		return nil, err
	}
	return cat.Registry(def, kind)
}

func printf(cmd *cobra.Command, format string, a ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, a...)
}
