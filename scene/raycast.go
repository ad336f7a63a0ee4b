package scene

import (
	"sort"

	"cogentcore.org/core/math32"

	"github.com/milk9111/hexfolio/ecs"
)

// Hit is one intersection, already normalised to the logical entity.
type Hit struct {
	Entity   ecs.Entity
	Proxy    ecs.Entity
	Point    math32.Vector3
	Distance float32
}

// BoxCaster intersects pick rays with collider boxes.
type BoxCaster struct {
	reg *Registry
}

func NewBoxCaster(reg *Registry) *BoxCaster {
	return &BoxCaster{reg: reg}
}

// CastRay returns every candidate whose box the ray crosses, nearest first.
// A nil candidate list tests every proxy in the registry.
func (b *BoxCaster) CastRay(ray math32.Ray, candidates []ecs.Entity) []Hit {
	if b == nil || b.reg == nil {
		return nil
	}
	if candidates == nil {
		candidates = b.reg.Proxies()
	}
	var hits []Hit
	for _, p := range candidates {
		box, ok := b.reg.Bounds(p)
		if !ok {
			continue
		}
		pt, has := ray.IntersectBox(box)
		if !has {
			continue
		}
		hits = append(hits, Hit{
			Entity:   b.reg.Resolve(p),
			Proxy:    p,
			Point:    pt,
			Distance: pt.DistanceTo(ray.Origin),
		})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}
