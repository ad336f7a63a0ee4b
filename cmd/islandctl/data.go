package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/hexfolio/levels"
	"github.com/milk9111/hexfolio/prefabs"
)

// islandData is everything the subcommands read.
type islandData struct {
	island  *levels.Island
	themes  *prefabs.ThemesSpec
	objects *prefabs.ObjectsSpec
}

func loadData(cmd *cobra.Command) (*islandData, error) {
	name, err := cmd.Flags().GetString("level")
	if err != nil {
		return nil, err
	}
	isl, err := levels.LoadIsland(name)
	if err != nil {
		return nil, fmt.Errorf("loading island: %w", err)
	}
	themes, err := prefabs.LoadThemesSpec()
	if err != nil {
		return nil, fmt.Errorf("loading themes: %w", err)
	}
	objects, err := prefabs.LoadObjectsSpec()
	if err != nil {
		return nil, fmt.Errorf("loading objects: %w", err)
	}
	return &islandData{island: isl, themes: themes, objects: objects}, nil
}
