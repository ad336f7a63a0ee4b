package theme

// Gate decides whether a prop can be interacted with from the current focus.
// Raycasting finds what is under the pointer; the gate decides whether that
// prop belongs to the place the visitor is standing.
type Gate struct {
	table *Table
}

func NewGate(table *Table) *Gate {
	return &Gate{table: table}
}

// IsReachable reports whether objectID can be hovered or clicked while
// focusTileType is focused. An empty focus is the overview, where only
// base-theme objects are reachable.
func (g *Gate) IsReachable(objectID, focusTileType string) bool {
	if g == nil {
		return false
	}
	objTheme := g.table.ObjectTheme(objectID)
	if focusTileType == "" {
		return objTheme == g.table.Base()
	}
	return g.table.TileTheme(focusTileType) == objTheme
}

// Table returns the resolution table behind the gate.
func (g *Gate) Table() *Table {
	if g == nil {
		return nil
	}
	return g.table
}
