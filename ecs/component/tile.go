package component

import "github.com/milk9111/hexfolio/camera"

// Tile is one hex section of the island.
type Tile struct {
	Q       int
	R       int
	Type    string
	Arrival *camera.Pose
}

var TileComponent = NewComponent[Tile]()
