// Package scene keeps the island's tiles and props in an ECS world and
// answers lookups and pointer hit-tests against them.
package scene

import (
	"errors"
	"fmt"
	"sort"

	"cogentcore.org/core/math32"

	"github.com/milk9111/hexfolio/camera"
	"github.com/milk9111/hexfolio/ecs"
	"github.com/milk9111/hexfolio/ecs/component"
	"github.com/milk9111/hexfolio/hex"
)

var (
	ErrDuplicateCoords = errors.New("scene: duplicate tile coordinates")
	ErrDuplicateObject = errors.New("scene: duplicate object id")
	ErrEmptyID         = errors.New("scene: object id is empty")
)

// owner points a collision proxy at the logical entity it stands for.
type owner struct {
	Target ecs.Entity
}

var ownerComponent = component.NewComponent[owner]()

// Tile is a read-only view of a tile entity.
type Tile struct {
	Entity   ecs.Entity
	Q        int
	R        int
	Type     string
	Position math32.Vector3
	Arrival  *camera.Pose
}

// Object is a prop. The embedded component is live: changes to Offset or
// StayUp are seen by the renderer.
type Object struct {
	Entity ecs.Entity
	*component.Interactive
}

// Registry is the single source of truth for what exists on the island.
type Registry struct {
	world   *ecs.World
	size    float32
	byType  map[string]ecs.Entity
	byCoord map[hex.Coord]ecs.Entity
	objects map[string]ecs.Entity
	order   []ecs.Entity // tiles then objects, in insertion order
	proxies []ecs.Entity
}

func NewRegistry(size float32) *Registry {
	return &Registry{
		world:   ecs.NewWorld(),
		size:    size,
		byType:  make(map[string]ecs.Entity),
		byCoord: make(map[hex.Coord]ecs.Entity),
		objects: make(map[string]ecs.Entity),
	}
}

func (r *Registry) World() *ecs.World { return r.world }

func (r *Registry) HexSize() float32 { return r.size }

// AddTile places a tile at its axial coordinates.
func (r *Registry) AddTile(q, rr int, typ string, arrival *camera.Pose, sprite component.Sprite) (Tile, error) {
	c := hex.Coord{Q: q, R: rr}
	if _, ok := r.byCoord[c]; ok {
		return Tile{}, fmt.Errorf("%w: (%d,%d)", ErrDuplicateCoords, q, rr)
	}
	pos := hex.ToWorld(q, rr, r.size)

	e := ecs.CreateEntity(r.world)
	if err := ecs.Add(r.world, e, component.TileComponent.Kind(), &component.Tile{Q: q, R: rr, Type: typ, Arrival: arrival}); err != nil {
		return Tile{}, fmt.Errorf("scene: add tile: %w", err)
	}
	if err := ecs.Add(r.world, e, component.TransformComponent.Kind(), &component.Transform{Position: pos}); err != nil {
		return Tile{}, fmt.Errorf("scene: add tile: %w", err)
	}
	if err := ecs.Add(r.world, e, component.SpriteComponent.Kind(), &sprite); err != nil {
		return Tile{}, fmt.Errorf("scene: add tile: %w", err)
	}
	if err := ecs.Add(r.world, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerTiles}); err != nil {
		return Tile{}, fmt.Errorf("scene: add tile: %w", err)
	}
	// flat slab covering the hex footprint
	w := r.size * math32.Sqrt(3) / 2
	r.addProxy(e, component.Collider{
		Min: math32.Vec3(-w, -0.5, -r.size),
		Max: math32.Vec3(w, 0, r.size),
	})

	r.byCoord[c] = e
	if _, ok := r.byType[typ]; !ok {
		r.byType[typ] = e
	}
	r.order = append(r.order, e)
	return r.tile(e), nil
}

// AddInteractiveObject registers a prop and its collision proxy.
func (r *Registry) AddInteractiveObject(obj component.Interactive, sprite component.Sprite, box component.Collider) (*Object, error) {
	if obj.ID == "" {
		return nil, ErrEmptyID
	}
	if _, ok := r.objects[obj.ID]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateObject, obj.ID)
	}
	e := ecs.CreateEntity(r.world)
	in := obj
	if err := ecs.Add(r.world, e, component.InteractiveComponent.Kind(), &in); err != nil {
		return nil, fmt.Errorf("scene: add object %s: %w", obj.ID, err)
	}
	if err := ecs.Add(r.world, e, component.TransformComponent.Kind(), &component.Transform{Position: in.Rest}); err != nil {
		return nil, fmt.Errorf("scene: add object %s: %w", obj.ID, err)
	}
	if err := ecs.Add(r.world, e, component.SpriteComponent.Kind(), &sprite); err != nil {
		return nil, fmt.Errorf("scene: add object %s: %w", obj.ID, err)
	}
	if err := ecs.Add(r.world, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerProps}); err != nil {
		return nil, fmt.Errorf("scene: add object %s: %w", obj.ID, err)
	}
	r.addProxy(e, box)

	r.objects[obj.ID] = e
	r.order = append(r.order, e)
	return &Object{Entity: e, Interactive: &in}, nil
}

func (r *Registry) addProxy(target ecs.Entity, box component.Collider) {
	p := ecs.CreateEntity(r.world)
	_ = ecs.Add(r.world, p, component.ColliderComponent.Kind(), &box)
	_ = ecs.Add(r.world, p, ownerComponent.Kind(), &owner{Target: target})
	r.proxies = append(r.proxies, p)
}

func (r *Registry) tile(e ecs.Entity) Tile {
	t, ok := ecs.Get(r.world, e, component.TileComponent.Kind())
	if !ok {
		return Tile{}
	}
	out := Tile{Entity: e, Q: t.Q, R: t.R, Type: t.Type, Arrival: t.Arrival}
	if tr, ok := ecs.Get(r.world, e, component.TransformComponent.Kind()); ok {
		out.Position = tr.Position
	}
	return out
}

// FindTileByType returns the first tile registered with this type.
func (r *Registry) FindTileByType(typ string) (Tile, bool) {
	e, ok := r.byType[typ]
	if !ok {
		return Tile{}, false
	}
	return r.tile(e), true
}

func (r *Registry) FindTileByCoords(q, rr int) (Tile, bool) {
	e, ok := r.byCoord[hex.Coord{Q: q, R: rr}]
	if !ok {
		return Tile{}, false
	}
	return r.tile(e), true
}

// Tiles returns every tile in insertion order.
func (r *Registry) Tiles() []Tile {
	out := make([]Tile, 0, len(r.byCoord))
	for _, e := range r.order {
		if ecs.Has(r.world, e, component.TileComponent.Kind()) {
			out = append(out, r.tile(e))
		}
	}
	return out
}

func (r *Registry) Object(id string) (*Object, bool) {
	e, ok := r.objects[id]
	if !ok {
		return nil, false
	}
	return r.ObjectAt(e)
}

// ObjectAt returns the prop stored on a logical entity.
func (r *Registry) ObjectAt(e ecs.Entity) (*Object, bool) {
	in, ok := ecs.Get(r.world, e, component.InteractiveComponent.Kind())
	if !ok {
		return nil, false
	}
	return &Object{Entity: e, Interactive: in}, true
}

// TileAt returns the tile stored on a logical entity.
func (r *Registry) TileAt(e ecs.Entity) (Tile, bool) {
	if !ecs.Has(r.world, e, component.TileComponent.Kind()) {
		return Tile{}, false
	}
	return r.tile(e), true
}

// AllInteractiveObjects returns every prop in insertion order.
func (r *Registry) AllInteractiveObjects() []*Object {
	out := make([]*Object, 0, len(r.objects))
	for _, e := range r.order {
		if o, ok := r.ObjectAt(e); ok {
			out = append(out, o)
		}
	}
	return out
}

// ObjectIDs returns the registered prop ids, sorted.
func (r *Registry) ObjectIDs() []string {
	ids := make([]string, 0, len(r.objects))
	for id := range r.objects {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Proxies returns every collision proxy entity.
func (r *Registry) Proxies() []ecs.Entity {
	return r.proxies
}

// Resolve follows a collision proxy to its logical entity. Entities without
// an owner resolve to themselves.
func (r *Registry) Resolve(e ecs.Entity) ecs.Entity {
	if o, ok := ecs.Get(r.world, e, ownerComponent.Kind()); ok {
		return o.Target
	}
	return e
}

// Sprite returns the drawable of a logical entity.
func (r *Registry) Sprite(e ecs.Entity) (*component.Sprite, bool) {
	return ecs.Get(r.world, e, component.SpriteComponent.Kind())
}

// SetImage attaches a loaded image to every sprite using key.
func (r *Registry) SetImage(key string, apply func(*component.Sprite)) int {
	n := 0
	ecs.ForEach(r.world, component.SpriteComponent.Kind(), func(_ ecs.Entity, s *component.Sprite) {
		if s.Key == key {
			apply(s)
			n++
		}
	})
	return n
}

// origin anchors a proxy box. Props use their rest position so a lifted
// prop keeps its hit area and hovering does not flicker.
func (r *Registry) origin(e ecs.Entity) math32.Vector3 {
	if in, ok := ecs.Get(r.world, e, component.InteractiveComponent.Kind()); ok {
		return in.Rest
	}
	if tr, ok := ecs.Get(r.world, e, component.TransformComponent.Kind()); ok {
		return tr.Position
	}
	return math32.Vector3{}
}

// Bounds returns the world box of a collision proxy.
func (r *Registry) Bounds(proxy ecs.Entity) (math32.Box3, bool) {
	c, ok := ecs.Get(r.world, proxy, component.ColliderComponent.Kind())
	if !ok {
		return math32.Box3{}, false
	}
	return c.World(r.origin(r.Resolve(proxy))), true
}
