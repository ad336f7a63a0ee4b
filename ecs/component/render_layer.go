package component

// RenderLayer orders drawing: lower layers first, then far to near.
type RenderLayer struct {
	Index int
}

const (
	LayerTiles = 0
	LayerProps = 1
)

var RenderLayerComponent = NewComponent[RenderLayer]()
