package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"

	"cogentcore.org/core/math32"

	"github.com/milk9111/hexfolio/camera"
	"github.com/milk9111/hexfolio/common"
	"github.com/milk9111/hexfolio/scene"
)

//go:embed *.json
var LevelsFS embed.FS

const DefaultIsland = "island.json"

// Island is the static tile table of one island.
type Island struct {
	HexSize float32    `json:"hex_size"`
	Tiles   []TileInfo `json:"tiles"`
}

type TileInfo struct {
	Q       int       `json:"q"`
	R       int       `json:"r"`
	Type    string    `json:"type"`
	Sprite  string    `json:"sprite"`
	Color   string    `json:"color"`
	Arrival *PoseInfo `json:"arrival,omitempty"`
}

type PoseInfo struct {
	Position [3]float32 `json:"position"`
	LookAt   [3]float32 `json:"look_at"`
}

func (p *PoseInfo) pose() *camera.Pose {
	if p == nil {
		return nil
	}
	return &camera.Pose{
		Position: math32.Vec3(p.Position[0], p.Position[1], p.Position[2]),
		LookAt:   math32.Vec3(p.LookAt[0], p.LookAt[1], p.LookAt[2]),
	}
}

func LoadIslandFromFS(fsys fs.FS, name string) (*Island, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read island: %w", err)
	}
	var isl Island
	if err := json.Unmarshal(data, &isl); err != nil {
		return nil, fmt.Errorf("unmarshal island: %w", err)
	}
	if isl.HexSize <= 0 {
		return nil, fmt.Errorf("island %s: hex_size must be positive", name)
	}
	return &isl, nil
}

func LoadIsland(name string) (*Island, error) {
	return LoadIslandFromFS(LevelsFS, name)
}

// Defs converts the tile table for scene.BuildIsland.
func (isl *Island) Defs() ([]scene.TileDef, error) {
	defs := make([]scene.TileDef, 0, len(isl.Tiles))
	for _, t := range isl.Tiles {
		if t.Type == "" {
			return nil, fmt.Errorf("tile (%d,%d) has no type", t.Q, t.R)
		}
		def := scene.TileDef{Q: t.Q, R: t.R, Type: t.Type, Sprite: t.Sprite, Arrival: t.Arrival.pose()}
		if t.Color != "" {
			c, err := common.ParseHexColor(t.Color)
			if err != nil {
				return nil, fmt.Errorf("tile %s: %w", t.Type, err)
			}
			def.Color = c
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// Build loads the tile table into a fresh registry.
func (isl *Island) Build() (*scene.Registry, error) {
	defs, err := isl.Defs()
	if err != nil {
		return nil, err
	}
	return scene.BuildIsland(defs, isl.HexSize)
}
