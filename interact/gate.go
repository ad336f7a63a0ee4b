package interact

import "sort"

// Reason names why interaction is locked.
type Reason int

const (
	ReasonCinematic Reason = iota + 1
	ReasonLoadingOverlay
)

func (r Reason) String() string {
	switch r {
	case ReasonCinematic:
		return "cinematic"
	case ReasonLoadingOverlay:
		return "loading-overlay"
	}
	return "unknown"
}

// Gate is the global interaction lockout. It is locked while any reason
// holds.
type Gate struct {
	reasons map[Reason]struct{}
}

func (g *Gate) Lock(r Reason) {
	if g.reasons == nil {
		g.reasons = make(map[Reason]struct{})
	}
	g.reasons[r] = struct{}{}
}

func (g *Gate) Unlock(r Reason) {
	delete(g.reasons, r)
}

func (g *Gate) Locked() bool {
	return len(g.reasons) > 0
}

func (g *Gate) Holds(r Reason) bool {
	_, ok := g.reasons[r]
	return ok
}

// Reasons lists the active reasons in order.
func (g *Gate) Reasons() []Reason {
	out := make([]Reason, 0, len(g.reasons))
	for r := range g.reasons {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
