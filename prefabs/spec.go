package prefabs

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/core/math32"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/hexfolio/camera"
	"github.com/milk9111/hexfolio/common"
	"github.com/milk9111/hexfolio/ecs/component"
	"github.com/milk9111/hexfolio/modal"
	"github.com/milk9111/hexfolio/scene"
	"github.com/milk9111/hexfolio/theme"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type Vec3Spec struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

func (v Vec3Spec) Vector() math32.Vector3 {
	return math32.Vec3(v.X, v.Y, v.Z)
}

type PoseSpec struct {
	Position Vec3Spec `yaml:"position"`
	LookAt   Vec3Spec `yaml:"look_at"`
}

func (p *PoseSpec) Pose() *camera.Pose {
	if p == nil {
		return nil
	}
	return &camera.Pose{Position: p.Position.Vector(), LookAt: p.LookAt.Vector()}
}

type YAMLColor struct {
	color.RGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	rgba, err := common.ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.RGBA = rgba
	return nil
}

type CinematicSpec struct {
	StartDeg float32 `yaml:"start_deg"`
	EndDeg   float32 `yaml:"end_deg"`
	Duration float32 `yaml:"duration"`
}

type CameraSpec struct {
	Name           string        `yaml:"name"`
	Center         Vec3Spec      `yaml:"center"`
	Radius         float32       `yaml:"radius"`
	Height         float32       `yaml:"height"`
	LookAt         Vec3Spec      `yaml:"look_at"`
	Arrival        PoseSpec      `yaml:"arrival"`
	FocusOffset    Vec3Spec      `yaml:"focus_offset"`
	FOV            float32       `yaml:"fov"`
	Sensitivity    float32       `yaml:"sensitivity"`
	Deadzone       float32       `yaml:"deadzone"`
	Cinematic      CinematicSpec `yaml:"cinematic"`
	ZoneDuration   float32       `yaml:"zone_duration"`
	ReturnDuration float32       `yaml:"return_duration"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Config converts the spec, validating the result.
func (s *CameraSpec) Config() (camera.Config, error) {
	const deg = math32.Pi / 180
	cfg := camera.Config{
		Center:            s.Center.Vector(),
		Radius:            s.Radius,
		Height:            s.Height,
		LookAt:            s.LookAt.Vector(),
		Arrival:           *s.Arrival.Pose(),
		FocusOffset:       s.FocusOffset.Vector(),
		FOV:               s.FOV,
		Sensitivity:       s.Sensitivity,
		Deadzone:          s.Deadzone,
		CinematicStart:    s.Cinematic.StartDeg * deg,
		CinematicEnd:      s.Cinematic.EndDeg * deg,
		CinematicDuration: s.Cinematic.Duration,
		ZoneDuration:      s.ZoneDuration,
		ReturnDuration:    s.ReturnDuration,
	}
	if err := cfg.Validate(); err != nil {
		return camera.Config{}, fmt.Errorf("prefabs: camera.yaml: %w", err)
	}
	return cfg, nil
}

type SidebarSpec struct {
	Label string `yaml:"label"`
	Zone  string `yaml:"zone"`
	Theme string `yaml:"theme"`
}

type ThemesSpec struct {
	Base    string            `yaml:"base"`
	Tiles   map[string]string `yaml:"tiles"`
	Objects map[string]string `yaml:"objects"`
	Groups  map[string]string `yaml:"groups"`
	Sidebar []SidebarSpec     `yaml:"sidebar"`
}

func LoadThemesSpec() (*ThemesSpec, error) {
	spec, err := LoadSpec[ThemesSpec]("themes.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *ThemesSpec) Table() *theme.Table {
	conv := func(in map[string]string) map[string]theme.Theme {
		out := make(map[string]theme.Theme, len(in))
		for k, v := range in {
			out[k] = theme.Theme(v)
		}
		return out
	}
	return theme.NewTable(theme.Theme(s.Base), conv(s.Tiles), conv(s.Objects), conv(s.Groups))
}

type GridSpec struct {
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	Spacing float32 `yaml:"spacing"`
}

type ObjectSpec struct {
	ID         string    `yaml:"id"`
	Anchor     string    `yaml:"anchor"`
	Local      Vec3Spec  `yaml:"local"`
	Grid       *GridSpec `yaml:"grid"`
	Sprite     string    `yaml:"sprite"`
	Size       float32   `yaml:"size"`
	Color      YAMLColor `yaml:"color"`
	Lift       string    `yaml:"lift"`
	LiftVector Vec3Spec  `yaml:"lift_vector"`
	Clickable  bool      `yaml:"clickable"`
	Focus      *PoseSpec `yaml:"focus"`
	Modal      string    `yaml:"modal"`
	Action     string    `yaml:"action"`
	Target     string    `yaml:"target"`
}

type ModalSpec struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
	URL   string `yaml:"url"`
	Copy  string `yaml:"copy"`
}

type ObjectsSpec struct {
	HoverExempt  []string             `yaml:"hover_exempt"`
	LiftDuration float32              `yaml:"lift_duration"`
	Objects      []ObjectSpec         `yaml:"objects"`
	Modals       map[string]ModalSpec `yaml:"modals"`
}

func LoadObjectsSpec() (*ObjectsSpec, error) {
	spec, err := LoadSpec[ObjectsSpec]("objects.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func parseLift(s string) (component.Lift, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return component.LiftNone, nil
	case "drawer":
		return component.LiftDrawer, nil
	case "flower":
		return component.LiftFlower, nil
	}
	return component.LiftNone, fmt.Errorf("unknown lift %q", s)
}

func parseAction(s string) (component.Action, error) {
	switch strings.ToLower(s) {
	case "", "modal":
		return component.ActionModal, nil
	case "navigate":
		return component.ActionNavigate, nil
	}
	return component.ActionModal, fmt.Errorf("unknown action %q", s)
}

// Def converts one object entry.
func (o ObjectSpec) Def() (scene.ObjectDef, error) {
	lift, err := parseLift(o.Lift)
	if err != nil {
		return scene.ObjectDef{}, fmt.Errorf("object %s: %w", o.ID, err)
	}
	action, err := parseAction(o.Action)
	if err != nil {
		return scene.ObjectDef{}, fmt.Errorf("object %s: %w", o.ID, err)
	}
	def := scene.ObjectDef{
		ID:         o.ID,
		Anchor:     o.Anchor,
		Local:      o.Local.Vector(),
		Lift:       lift,
		LiftVector: o.LiftVector.Vector(),
		Clickable:  o.Clickable,
		Focus:      o.Focus.Pose(),
		Modal:      o.Modal,
		Action:     action,
		Target:     o.Target,
		Sprite:     o.Sprite,
		Size:       o.Size,
		Color:      o.Color.RGBA,
	}
	if o.Grid != nil {
		def.Grid = &scene.GridDef{Rows: o.Grid.Rows, Cols: o.Grid.Cols, Spacing: o.Grid.Spacing}
	}
	return def, nil
}

// Defs converts every object entry after validating the file.
func (s *ObjectsSpec) Defs() ([]scene.ObjectDef, error) {
	if err := validateObjects(s); err != nil {
		return nil, fmt.Errorf("prefabs: objects.yaml: %w", err)
	}
	out := make([]scene.ObjectDef, 0, len(s.Objects))
	for _, o := range s.Objects {
		def, err := o.Def()
		if err != nil {
			return nil, fmt.Errorf("prefabs: objects.yaml: %w", err)
		}
		out = append(out, def)
	}
	return out, nil
}

// IDs lists every object id after grid expansion.
func (s *ObjectsSpec) IDs() []string {
	var ids []string
	for _, o := range s.Objects {
		def, err := o.Def()
		if err != nil {
			continue
		}
		ids = append(ids, def.IDs()...)
	}
	return ids
}

func (s *ObjectsSpec) ModalContents() map[string]modal.Content {
	out := make(map[string]modal.Content, len(s.Modals))
	for id, m := range s.Modals {
		out[id] = modal.Content{Title: m.Title, Body: strings.TrimSpace(m.Body), URL: m.URL, Copy: m.Copy}
	}
	return out
}

func validateObjects(s *ObjectsSpec) error {
	if len(s.Objects) == 0 {
		return fmt.Errorf("at least one object is required")
	}
	seen := make(map[string]struct{})
	for i, o := range s.Objects {
		if strings.TrimSpace(o.ID) == "" {
			return fmt.Errorf("object %d id is required", i)
		}
		if strings.TrimSpace(o.Anchor) == "" {
			return fmt.Errorf("object %s anchor is required", o.ID)
		}
		if _, dup := seen[o.ID]; dup {
			return fmt.Errorf("duplicate object id: %s", o.ID)
		}
		seen[o.ID] = struct{}{}
		if o.Grid != nil && (o.Grid.Rows <= 0 || o.Grid.Cols <= 0) {
			return fmt.Errorf("object %s grid needs positive rows and cols", o.ID)
		}
		if o.Clickable && o.Modal == "" && !strings.EqualFold(o.Action, "navigate") {
			return fmt.Errorf("object %s is clickable but opens nothing", o.ID)
		}
		if o.Modal != "" {
			if _, ok := s.Modals[o.Modal]; !ok {
				return fmt.Errorf("object %s uses unknown modal %s", o.ID, o.Modal)
			}
		}
		if strings.EqualFold(o.Action, "navigate") && o.Target == "" {
			return fmt.Errorf("object %s navigates nowhere", o.ID)
		}
	}
	return nil
}
