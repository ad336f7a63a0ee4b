package hex

import (
	"testing"

	"cogentcore.org/core/math32"
)

func approx(a, b float32) bool {
	return math32.Abs(a-b) < 1e-4
}

func TestToWorld(t *testing.T) {
	cases := []struct {
		name string
		q, r int
		size float32
		x, z float32
	}{
		{"origin", 0, 0, 2, 0, 0},
		{"east", 1, 0, 2, 2 * sqrt3, 0},
		{"south_east", 0, 1, 2, sqrt3, 3},
		{"north_west", 0, -1, 2, -sqrt3, -3},
		{"unit_mixed", 2, -1, 1, sqrt3 * 1.5, -1.5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := ToWorld(c.q, c.r, c.size)
			if !approx(p.X, c.x) || !approx(p.Z, c.z) || p.Y != 0 {
				t.Fatalf("ToWorld(%d,%d) = %v, want (%v, 0, %v)", c.q, c.r, p, c.x, c.z)
			}
			if again := ToWorld(c.q, c.r, c.size); again != p {
				t.Fatalf("ToWorld not deterministic: %v vs %v", p, again)
			}
		})
	}
}

func TestToWorldCollisionFree(t *testing.T) {
	seen := make(map[[2]float32]Coord)
	for q := -4; q <= 4; q++ {
		for r := -4; r <= 4; r++ {
			p := ToWorld(q, r, 2)
			key := [2]float32{math32.Round(p.X * 1000), math32.Round(p.Z * 1000)}
			if prev, ok := seen[key]; ok {
				t.Fatalf("(%d,%d) collides with %v at %v", q, r, prev, p)
			}
			seen[key] = Coord{q, r}
		}
	}
}

func TestNeighborsAreOneStepAway(t *testing.T) {
	origin := ToWorld(0, 0, 1)
	for _, n := range Neighbors(Coord{}) {
		d := ToWorld(n.Q, n.R, 1).DistanceTo(origin)
		if !approx(d, sqrt3) {
			t.Fatalf("neighbour %v at distance %v, want %v", n, d, sqrt3)
		}
	}
}

func TestGridOffsets(t *testing.T) {
	offs := GridOffsets(3, 3, 0.5)
	if len(offs) != 9 {
		t.Fatalf("expected 9 offsets, got %d", len(offs))
	}
	// row-major: index 0 is top-left, 4 is centre, 8 is bottom-right
	if !approx(offs[0].X, -0.5) || !approx(offs[0].Z, -0.5) {
		t.Fatalf("offset 0 = %v", offs[0])
	}
	if offs[4] != (math32.Vector3{}) {
		t.Fatalf("offset 4 should be the centre, got %v", offs[4])
	}
	if !approx(offs[5].X, 0.5) || !approx(offs[5].Z, 0) {
		t.Fatalf("offset 5 = %v", offs[5])
	}
	if !approx(offs[8].X, 0.5) || !approx(offs[8].Z, 0.5) {
		t.Fatalf("offset 8 = %v", offs[8])
	}
	if GridOffsets(0, 3, 1) != nil {
		t.Fatalf("empty grid should be nil")
	}
}
