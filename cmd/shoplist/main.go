// Command shoplist runs the shopping list widget as a web server or in the
// terminal, and validates items from the command line.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "shoplist",
		Short:         "Shopping list widget",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newServeCmd(), newTUICmd(), newCheckCmd())
	return root
}
