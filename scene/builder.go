package scene

import (
	"fmt"
	"image/color"
	"strconv"

	"cogentcore.org/core/math32"

	"github.com/milk9111/hexfolio/camera"
	"github.com/milk9111/hexfolio/ecs/component"
	"github.com/milk9111/hexfolio/hex"
)

// TileDef is one row of the static tile table.
type TileDef struct {
	Q       int
	R       int
	Type    string
	Arrival *camera.Pose
	Sprite  string
	Color   color.RGBA
}

// GridDef lays a decoration out as rows x cols copies around its anchor.
type GridDef struct {
	Rows    int
	Cols    int
	Spacing float32
}

// ObjectDef describes a prop before placement. Local is relative to the
// centre of the anchor tile; Focus (if set) is relative to the placed prop.
type ObjectDef struct {
	ID         string
	Anchor     string
	Local      math32.Vector3
	Group      string
	Grid       *GridDef
	Lift       component.Lift
	LiftVector math32.Vector3
	Clickable  bool
	Focus      *camera.Pose
	Modal      string
	Action     component.Action
	Target     string
	Sprite     string
	Size       float32
	Color      color.RGBA
}

// IDs returns the ids the definition expands to.
func (d ObjectDef) IDs() []string {
	if d.Grid == nil {
		return []string{d.ID}
	}
	n := d.Grid.Rows * d.Grid.Cols
	ids := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		ids = append(ids, d.ID+strconv.Itoa(i))
	}
	return ids
}

// BuildIsland creates the registry and places every tile of the table.
// Props are placed later with PlaceObject as their assets arrive.
func BuildIsland(tiles []TileDef, size float32) (*Registry, error) {
	reg := NewRegistry(size)
	for _, t := range tiles {
		sprite := component.Sprite{Key: t.Sprite, Size: size * 2, Fallback: t.Color}
		if _, err := reg.AddTile(t.Q, t.R, t.Type, t.Arrival, sprite); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// PlaceObject puts a prop (or every copy of a grid decoration) on its
// anchor tile.
func PlaceObject(reg *Registry, def ObjectDef) ([]*Object, error) {
	anchor, ok := reg.FindTileByType(def.Anchor)
	if !ok {
		return nil, fmt.Errorf("scene: place %s: unknown anchor tile %q", def.ID, def.Anchor)
	}
	base := anchor.Position.Add(def.Local)

	size := def.Size
	if size <= 0 {
		size = 1
	}
	half := size / 2
	box := component.Collider{
		Min: math32.Vec3(-half, 0, -half),
		Max: math32.Vec3(half, size, half),
	}

	ids := def.IDs()
	offsets := []math32.Vector3{{}}
	group := def.Group
	if def.Grid != nil {
		offsets = hex.GridOffsets(def.Grid.Rows, def.Grid.Cols, def.Grid.Spacing)
		if group == "" {
			group = def.ID
		}
	}

	out := make([]*Object, 0, len(ids))
	for i, id := range ids {
		in := component.Interactive{
			ID:         id,
			Anchor:     def.Anchor,
			Group:      group,
			Rest:       base.Add(offsets[i]),
			Lift:       def.Lift,
			LiftVector: def.LiftVector,
			Clickable:  def.Clickable,
			Focus:      def.Focus,
			Modal:      def.Modal,
			Action:     def.Action,
			Target:     def.Target,
		}
		sprite := component.Sprite{Key: def.Sprite, Size: size, Fallback: def.Color}
		obj, err := reg.AddInteractiveObject(in, sprite, box)
		if err != nil {
			return out, err
		}
		out = append(out, obj)
	}
	return out, nil
}
