package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "islandctl",
		Short: "Inspect and check the hexfolio island data",
	}
	root.PersistentFlags().String("level", "island.json", "island file in levels/")
	root.AddCommand(validateCmd())
	root.AddCommand(layoutCmd())
	root.AddCommand(unreadCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
