package notify

import (
	"testing"

	"github.com/milk9111/hexfolio/storage"
	"github.com/milk9111/hexfolio/theme"
)

func testTable() *theme.Table {
	return theme.NewTable(theme.Base,
		map[string]theme.Theme{"home": "home", "cv": "cv", "projects": "projects"},
		map[string]theme.Theme{"drawer1": "home", "drawer2": "home", "cvBoard": "cv", "virtual": "projects"},
		map[string]theme.Theme{"skillFlower": "cv"},
	)
}

var ids = []string{"drawer1", "drawer2", "cvBoard", "virtual", "skillFlower1", "skillFlower2"}

func TestMarkReadIsIdempotent(t *testing.T) {
	s := NewStore(testTable(), ids, nil)
	signals := 0
	s.Subscribe(func() { signals++ })

	if !s.MarkRead("drawer1") {
		t.Fatalf("expected first mark to report a change")
	}
	before := s.Counts()
	if s.MarkRead("drawer1") {
		t.Fatalf("expected second mark to be a no-op")
	}
	after := s.Counts()
	for th, n := range before {
		if after[th] != n {
			t.Fatalf("count for %s changed on repeat mark: %d -> %d", th, n, after[th])
		}
	}
	if signals != 1 {
		t.Fatalf("expected one change signal, got %d", signals)
	}
	if s.MarkRead("unknown") {
		t.Fatalf("unknown ids are never unread")
	}
}

func TestCountsByTheme(t *testing.T) {
	s := NewStore(testTable(), ids, nil)
	cases := []struct {
		theme theme.Theme
		want  int
	}{
		{"home", 2},
		{"cv", 3},
		{"projects", 1},
		{"garage", 0},
	}
	for _, tc := range cases {
		t.Run(string(tc.theme), func(t *testing.T) {
			if got := s.CountForTheme(tc.theme); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}

	s.MarkRead("skillFlower2")
	if got := s.CountForTheme("cv"); got != 2 {
		t.Fatalf("expected cv count 2 after reading a flower, got %d", got)
	}
	sum := 0
	for _, n := range s.Counts() {
		sum += n
	}
	if sum != s.Total() {
		t.Fatalf("counts sum %d does not match total %d", sum, s.Total())
	}
}

func TestPersistedReads(t *testing.T) {
	mem := storage.NewMemStore()
	first := NewStore(testTable(), ids, mem)
	first.MarkRead("virtual")

	second := NewStore(testTable(), ids, mem)
	if second.IsUnread("virtual") {
		t.Fatalf("expected persisted read to survive")
	}
	second.Reset()
	if !second.IsUnread("virtual") || mem.Bool(storage.ReadKey("virtual")) {
		t.Fatalf("expected reset to restore the badge and clear storage")
	}
	if second.Total() != len(ids) {
		t.Fatalf("expected %d unread after reset, got %d", len(ids), second.Total())
	}
}
