// Package theme groups tiles, props and notification badges under one key
// and decides which props are reachable from the current viewpoint.
package theme

import (
	"sort"
	"strings"
)

// Theme is a grouping key such as "home" or "cv".
type Theme string

// Base is the theme reachable from the overview.
const Base Theme = "home"

// Table resolves tile types and object ids to themes.
type Table struct {
	base    Theme
	tiles   map[string]Theme
	objects map[string]Theme
	groups  []group
}

type group struct {
	prefix string
	theme  Theme
}

// NewTable builds a table. Group prefixes map every object id that starts
// with the prefix to one shared theme, ahead of any per-object entry.
func NewTable(base Theme, tiles, objects, groups map[string]Theme) *Table {
	if base == "" {
		base = Base
	}
	t := &Table{
		base:    base,
		tiles:   make(map[string]Theme, len(tiles)),
		objects: make(map[string]Theme, len(objects)),
	}
	for k, v := range tiles {
		t.tiles[k] = v
	}
	for k, v := range objects {
		t.objects[k] = v
	}
	for prefix, th := range groups {
		t.groups = append(t.groups, group{prefix: prefix, theme: th})
	}
	// longest prefix wins
	sort.Slice(t.groups, func(i, j int) bool {
		if len(t.groups[i].prefix) != len(t.groups[j].prefix) {
			return len(t.groups[i].prefix) > len(t.groups[j].prefix)
		}
		return t.groups[i].prefix < t.groups[j].prefix
	})
	return t
}

// Base returns the overview theme.
func (t *Table) Base() Theme {
	if t == nil || t.base == "" {
		return Base
	}
	return t.base
}

// TileTheme maps a tile type to its theme, defaulting to the base theme.
func (t *Table) TileTheme(tileType string) Theme {
	if t == nil {
		return Base
	}
	if th, ok := t.tiles[tileType]; ok {
		return th
	}
	return t.base
}

// ObjectTheme maps an object id to its theme. Grouped decorations collapse
// to the group's theme; unknown ids resolve to the base theme.
func (t *Table) ObjectTheme(objectID string) Theme {
	if t == nil {
		return Base
	}
	if g, ok := t.Group(objectID); ok {
		return g
	}
	if th, ok := t.objects[objectID]; ok {
		return th
	}
	return t.base
}

// Group reports the shared theme when objectID belongs to a group.
func (t *Table) Group(objectID string) (Theme, bool) {
	if t == nil {
		return "", false
	}
	for _, g := range t.groups {
		if strings.HasPrefix(objectID, g.prefix) {
			return g.theme, true
		}
	}
	return "", false
}

// Known reports whether the object id has an explicit or grouped mapping.
func (t *Table) Known(objectID string) bool {
	if t == nil {
		return false
	}
	if _, ok := t.Group(objectID); ok {
		return true
	}
	_, ok := t.objects[objectID]
	return ok
}

// Themes returns every theme mentioned by the table, sorted, base first.
func (t *Table) Themes() []Theme {
	if t == nil {
		return []Theme{Base}
	}
	set := map[Theme]struct{}{t.base: {}}
	for _, th := range t.tiles {
		set[th] = struct{}{}
	}
	for _, th := range t.objects {
		set[th] = struct{}{}
	}
	for _, g := range t.groups {
		set[g.theme] = struct{}{}
	}
	out := make([]Theme, 0, len(set))
	for th := range set {
		if th != t.base {
			out = append(out, th)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return append([]Theme{t.base}, out...)
}
