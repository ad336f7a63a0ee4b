package prefabs

import (
	"strings"
	"testing"

	"cogentcore.org/core/math32"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/hexfolio/ecs/component"
	"github.com/milk9111/hexfolio/theme"
)

func TestCameraSpecConfig(t *testing.T) {
	spec, err := LoadCameraSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg, err := spec.Config()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if math32.Abs(cfg.CinematicEnd-math32.Pi/2) > 1e-5 {
		t.Fatalf("expected cinematic end of pi/2, got %v", cfg.CinematicEnd)
	}
	if cfg.Radius != 16 {
		t.Fatalf("expected radius 16, got %v", cfg.Radius)
	}
}

func TestCameraSpecRejectsBadDuration(t *testing.T) {
	spec, err := LoadCameraSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	spec.ZoneDuration = 0
	if _, err := spec.Config(); err == nil {
		t.Fatalf("expected error for zero zone duration")
	}
}

func TestThemesTable(t *testing.T) {
	spec, err := LoadThemesSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	table := spec.Table()

	tests := []struct {
		id   string
		want theme.Theme
	}{
		{"drawer1", "home"},
		{"mail-box", "contact"},
		{"skillFlower7", "cv"},
		{"steering", "projects"},
		{"unknown", "home"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := table.ObjectTheme(tt.id); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
	if got := table.TileTheme("garage"); got != "projects" {
		t.Fatalf("expected garage tile in projects, got %s", got)
	}
}

func TestObjectsSpecDefs(t *testing.T) {
	spec, err := LoadObjectsSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defs, err := spec.Defs()
	if err != nil {
		t.Fatalf("defs: %v", err)
	}

	byID := make(map[string]int)
	for i, d := range defs {
		byID[d.ID] = i
	}
	flower := defs[byID["skillFlower"]]
	if flower.Lift != component.LiftFlower || flower.Clickable {
		t.Fatalf("unexpected flower def: %+v", flower)
	}
	if got := len(flower.IDs()); got != 9 {
		t.Fatalf("expected 9 flowers, got %d", got)
	}
	steering := defs[byID["steering"]]
	if steering.Action != component.ActionNavigate || steering.Target != "projects" {
		t.Fatalf("unexpected steering def: %+v", steering)
	}
	if defs[byID["drawer1"]].Focus == nil {
		t.Fatalf("expected drawer1 to carry a focus pose")
	}
	if defs[byID["forge"]].Focus != nil {
		t.Fatalf("expected forge to open without a camera move")
	}

	themes, err := LoadThemesSpec()
	if err != nil {
		t.Fatalf("load themes: %v", err)
	}
	table := themes.Table()
	for _, id := range spec.IDs() {
		if !table.Known(id) {
			t.Fatalf("object %s has no theme", id)
		}
	}

	contents := spec.ModalContents()
	if contents["contactModal"].Copy == "" {
		t.Fatalf("expected contact modal to carry a copy value")
	}
	if strings.HasSuffix(contents["aboutModal"].Body, "\n") {
		t.Fatalf("expected trimmed body")
	}
}

func TestValidateObjects(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "empty",
			src:  "objects: []",
			want: "at least one object",
		},
		{
			name: "duplicate",
			src: `
objects:
  - {id: a, anchor: home}
  - {id: a, anchor: home}`,
			want: "duplicate object id",
		},
		{
			name: "unknown modal",
			src: `
objects:
  - {id: a, anchor: home, clickable: true, modal: nope}`,
			want: "unknown modal",
		},
		{
			name: "clickable without target",
			src: `
objects:
  - {id: a, anchor: home, clickable: true}`,
			want: "opens nothing",
		},
		{
			name: "navigate without target",
			src: `
objects:
  - {id: a, anchor: home, clickable: true, action: navigate}`,
			want: "navigates nowhere",
		},
		{
			name: "bad lift",
			src: `
objects:
  - {id: a, anchor: home, lift: bounce}`,
			want: "unknown lift",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var spec ObjectsSpec
			if err := yaml.Unmarshal([]byte(tt.src), &spec); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			_, err := spec.Defs()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestYAMLColor(t *testing.T) {
	var v struct {
		C YAMLColor `yaml:"c"`
	}
	if err := yaml.Unmarshal([]byte(`c: "#ff000080"`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v.C.A != 0x80 || v.C.R != 0x80 {
		t.Fatalf("expected premultiplied red, got %+v", v.C.RGBA)
	}
	if err := yaml.Unmarshal([]byte(`c: [1, 2]`), &v); err == nil {
		t.Fatalf("expected error for non-scalar color")
	}
}
