package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/milk9111/hexfolio/assets"
	"github.com/milk9111/hexfolio/hex"
)

type severity int

const (
	severityWarn severity = iota
	severityError
)

type issue struct {
	Severity severity
	Subject  string
	Message  string
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the island, theme and object data for consistency",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := loadData(cmd)
			if err != nil {
				return err
			}
			return report(cmd.OutOrStdout(), checkIsland(data))
		},
	}
}

// checkIsland collects every problem instead of stopping at the first.
func checkIsland(d *islandData) []issue {
	var issues []issue
	add := func(s severity, subject, format string, args ...any) {
		issues = append(issues, issue{Severity: s, Subject: subject, Message: fmt.Sprintf(format, args...)})
	}

	tileTypes := make(map[string]struct{})
	coords := make(map[hex.Coord]string)
	for _, t := range d.island.Tiles {
		c := hex.Coord{Q: t.Q, R: t.R}
		if other, ok := coords[c]; ok {
			add(severityError, t.Type, "shares coordinates (%d,%d) with %s", t.Q, t.R, other)
		}
		coords[c] = t.Type
		tileTypes[t.Type] = struct{}{}
		if _, ok := d.themes.Tiles[t.Type]; !ok {
			add(severityWarn, t.Type, "tile type has no theme, defaults to %s", d.themes.Base)
		}
		if t.Sprite != "" && !assets.Exists(t.Sprite) {
			add(severityWarn, t.Type, "sprite %s is missing, a flat colour is drawn", t.Sprite)
		}
	}

	if len(coords) > 1 {
		for _, t := range d.island.Tiles {
			if !hasNeighbor(coords, hex.Coord{Q: t.Q, R: t.R}) {
				add(severityWarn, t.Type, "touches no other tile, the island is split")
			}
		}
	}

	defs, err := d.objects.Defs()
	if err != nil {
		add(severityError, "objects.yaml", "%v", err)
	}
	table := d.themes.Table()
	ids := make(map[string]struct{})
	for _, def := range defs {
		if _, ok := tileTypes[def.Anchor]; !ok {
			add(severityError, def.ID, "anchor tile %s does not exist", def.Anchor)
		}
		if def.Sprite != "" && !assets.Exists(def.Sprite) {
			add(severityWarn, def.ID, "sprite %s is missing, a placeholder is drawn", def.Sprite)
		}
		if def.Target != "" {
			if _, ok := tileTypes[def.Target]; !ok {
				add(severityError, def.ID, "navigation target %s does not exist", def.Target)
			}
		}
		for _, id := range def.IDs() {
			ids[id] = struct{}{}
			if !table.Known(id) {
				add(severityError, id, "object has no theme")
			}
		}
	}

	for _, id := range d.objects.HoverExempt {
		if _, ok := ids[id]; !ok {
			add(severityWarn, id, "hover-exempt id matches no object")
		}
	}
	for _, s := range d.themes.Sidebar {
		if _, ok := tileTypes[s.Zone]; !ok {
			add(severityError, s.Label, "sidebar zone %s does not exist", s.Zone)
		}
	}

	sort.SliceStable(issues, func(i, j int) bool { return issues[i].Severity > issues[j].Severity })
	return issues
}

func hasNeighbor(coords map[hex.Coord]string, c hex.Coord) bool {
	for _, n := range hex.Neighbors(c) {
		if _, ok := coords[n]; ok {
			return true
		}
	}
	return false
}

func report(out io.Writer, issues []issue) error {
	if len(issues) == 0 {
		fmt.Fprintln(out, "No issues found.")
		return nil
	}
	errs := 0
	for _, is := range issues {
		label := "warning"
		if is.Severity == severityError {
			label = "error"
			errs++
		}
		fmt.Fprintf(out, "  - %s: %s (%s)\n", is.Subject, is.Message, label)
	}
	if errs > 0 {
		return fmt.Errorf("validation found %d errors", errs)
	}
	return nil
}
