package ecs

import "sort"

// intersect returns the ids stored in both sets, ascending. Ids are handed
// out in creation order, so the tiles of a freshly built island come back
// in the order the level lists them no matter how the sets were shuffled
// by removals.
func intersect(a, b *SparseSet) []int {
	if a == nil || b == nil {
		return nil
	}
	if a.Len() > b.Len() {
		a, b = b, a
	}
	out := make([]int, 0, a.Len())
	for _, id := range a.Entities() {
		if b.Has(id) {
			out = append(out, id)
		}
	}
	sort.Ints(out)
	return out
}
