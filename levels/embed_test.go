package levels

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/milk9111/hexfolio/scene"
)

func TestLoadDefaultIsland(t *testing.T) {
	isl, err := LoadIsland(DefaultIsland)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	reg, err := isl.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, typ := range []string{"home", "cv", "projects", "garage", "contact", "forge"} {
		if _, ok := reg.FindTileByType(typ); !ok {
			t.Fatalf("expected a %s tile", typ)
		}
	}
	home, _ := reg.FindTileByType("home")
	if home.Arrival == nil {
		t.Fatalf("expected home to carry an arrival pose")
	}
}

func TestIslandErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad json", `{`},
		{"no size", `{"tiles": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"x.json": {Data: []byte(tt.data)}}
			if _, err := LoadIslandFromFS(fsys, "x.json"); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestIslandDuplicateCoords(t *testing.T) {
	isl := &Island{HexSize: 1, Tiles: []TileInfo{
		{Q: 0, R: 0, Type: "a"},
		{Q: 0, R: 0, Type: "b"},
	}}
	_, err := isl.Build()
	if !errors.Is(err, scene.ErrDuplicateCoords) {
		t.Fatalf("expected ErrDuplicateCoords, got %v", err)
	}
}

func TestIslandBadColor(t *testing.T) {
	isl := &Island{HexSize: 1, Tiles: []TileInfo{{Type: "a", Color: "green"}}}
	if _, err := isl.Defs(); err == nil {
		t.Fatalf("expected color error")
	}
}
