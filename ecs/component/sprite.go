package component

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is the billboard drawn for a tile or prop. Image stays nil until the
// asset loader delivers it; Fallback is drawn meanwhile.
type Sprite struct {
	Key      string
	Image    *ebiten.Image
	Size     float32 // world units across
	Fallback color.RGBA
}

var SpriteComponent = NewComponent[Sprite]()
