package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/milk9111/hexfolio/hex"
)

func layoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Print the world position of every tile",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := loadData(cmd)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TYPE\tQ\tR\tX\tZ\tTHEME")
			table := data.themes.Table()
			for _, t := range data.island.Tiles {
				p := hex.ToWorld(t.Q, t.R, data.island.HexSize)
				fmt.Fprintf(tw, "%s\t%d\t%d\t%.3f\t%.3f\t%s\n", t.Type, t.Q, t.R, p.X, p.Z, table.TileTheme(t.Type))
			}
			return tw.Flush()
		},
	}
}
