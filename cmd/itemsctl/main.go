// itemsctl inspects schema files: it checks them, lists the items of a definition,
// resolves names the way a command-line binder would, and binds name=value pairs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appName = "itemsctl"

var (
	rootCmd    *cobra.Command
	flagSchema string
	flagFormat string
)

func init() {
	rootCmd = &cobra.Command{
		Use:           appName,
		Short:         "Inspect switch, parameter and command schemas",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&flagSchema, "schema", "s", "", "schema file (discovered when empty)")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "auto", "schema format: auto, toml, yaml or json")

	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newResolveCommand())
	rootCmd.AddCommand(newBindCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
