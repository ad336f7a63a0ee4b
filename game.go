package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/hexfolio/app"
	"github.com/milk9111/hexfolio/common"
)

type Game struct {
	frames int
	debug  bool

	app *app.App
}

func NewGame(opts app.Options) (*Game, error) {
	a, err := app.New(opts)
	if err != nil {
		return nil, err
	}
	return &Game{app: a, debug: opts.Debug}, nil
}

func (g *Game) Update() error {
	g.frames++
	defer g.app.Reporter.Recover("update")

	return g.app.Update(1 / float32(ebiten.TPS()))
}

func (g *Game) Draw(screen *ebiten.Image) {
	defer g.app.Reporter.Recover("draw")

	g.app.Draw(screen)

	if g.debug {
		mode := g.app.Camera.Mode()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Camera: %s    Focus: %q",
			g.frames, ebiten.ActualFPS(), mode, g.app.Pipeline.Focus()))
	}
}

func (g *Game) Close() error {
	return g.app.Close()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
