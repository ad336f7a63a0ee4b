package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/hexfolio/notify"
	"github.com/milk9111/hexfolio/storage"
)

func unreadCmd() *cobra.Command {
	var statePath string
	cmd := &cobra.Command{
		Use:   "unread",
		Short: "Print the unread badge count per theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := loadData(cmd)
			if err != nil {
				return err
			}
			var st storage.Store = storage.NewMemStore()
			if statePath != "" {
				file, err := storage.OpenFile(statePath)
				if err != nil {
					return err
				}
				st = file
			}
			table := data.themes.Table()
			store := notify.NewStore(table, data.objects.IDs(), st)
			for _, th := range table.Themes() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %d\n", th, store.CountForTheme(th))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %d\n", "total", store.Total())
			return nil
		},
	}
	cmd.Flags().StringVar(&statePath, "state", "", "state file to read visited props from")
	return cmd
}
