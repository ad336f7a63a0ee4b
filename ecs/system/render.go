package system

import (
	"image"
	"image/color"
	"sort"

	"cogentcore.org/core/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/hexfolio/camera"
	"github.com/milk9111/hexfolio/ecs"
	"github.com/milk9111/hexfolio/ecs/component"
	"github.com/milk9111/hexfolio/hex"
	"github.com/milk9111/hexfolio/interact"
)

var (
	outlineColor = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	labelBG      = color.RGBA{A: 0xd0}
	labelFG      = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

type drawKind int

const (
	drawTile drawKind = iota
	drawProp
)

type drawItem struct {
	entity ecs.Entity
	kind   drawKind
	layer  int
	center math32.Vector3
	depth  float32
}

// RenderSystem draws the island back to front, layer by layer.
type RenderSystem struct {
	hexSize float32
	face    text.Face
	white   *ebiten.Image
}

func NewRenderSystem(hexSize float32) *RenderSystem {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &RenderSystem{
		hexSize: hexSize,
		face:    text.NewGoXFace(basicfont.Face7x13),
		white:   img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

func layerOf(w *ecs.World, e ecs.Entity, fallback int) int {
	if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return l.Index
	}
	return fallback
}

// drawList collects visible tiles and props sorted by render layer, then far
// to near.
func drawList(w *ecs.World, view camera.View) []drawItem {
	var items []drawItem
	ecs.ForEach2(w, component.TileComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Tile, t *component.Transform) {
		_, _, depth, ok := view.Project(t.Position)
		if !ok {
			return
		}
		items = append(items, drawItem{entity: e, kind: drawTile, layer: layerOf(w, e, component.LayerTiles), center: t.Position, depth: depth})
	})
	ecs.ForEach(w, component.InteractiveComponent.Kind(), func(e ecs.Entity, obj *component.Interactive) {
		pos := obj.Position()
		_, _, depth, ok := view.Project(pos)
		if !ok {
			return
		}
		items = append(items, drawItem{entity: e, kind: drawProp, layer: layerOf(w, e, component.LayerProps), center: pos, depth: depth})
	})

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].layer != items[j].layer {
			return items[i].layer < items[j].layer
		}
		if items[i].depth != items[j].depth {
			return items[i].depth > items[j].depth
		}
		return uint64(items[i].entity) < uint64(items[j].entity)
	})
	return items
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image, view camera.View, label interact.LabelState) {
	if r == nil || w == nil || screen == nil {
		return
	}

	for _, it := range drawList(w, view) {
		s, ok := ecs.Get(w, it.entity, component.SpriteComponent.Kind())
		if !ok {
			continue
		}
		switch it.kind {
		case drawTile:
			r.drawHex(screen, view, it.center, s)
		case drawProp:
			r.drawProp(screen, view, it, s)
		}
	}

	r.drawLabel(screen, label)
}

func (r *RenderSystem) drawHex(screen *ebiten.Image, view camera.View, center math32.Vector3, s *component.Sprite) {
	cx, cy, _, ok := view.Project(center)
	if !ok {
		return
	}
	corners := hex.Corners(center, r.hexSize)

	src := r.white
	clr := s.Fallback
	if s.Image != nil {
		src = s.Image
		clr = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	b := src.Bounds()
	sw, sh := float32(b.Dx()), float32(b.Dy())
	sx0, sy0 := float32(b.Min.X), float32(b.Min.Y)

	cr, cg, cb, ca := float32(clr.R)/0xff, float32(clr.G)/0xff, float32(clr.B)/0xff, float32(clr.A)/0xff
	vertex := func(x, y, u, v float32) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: x, DstY: y,
			SrcX: sx0 + u*sw, SrcY: sy0 + v*sh,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}

	vs := make([]ebiten.Vertex, 0, 7)
	vs = append(vs, vertex(cx, cy, 0.5, 0.5))
	var px, py [6]float32
	for i, c := range corners {
		x, y, _, ok := view.Project(c)
		if !ok {
			return
		}
		px[i], py[i] = x, y
		// map the corner onto the texture square
		u := 0.5 + (c.X-center.X)/(2*r.hexSize)
		v := 0.5 + (c.Z-center.Z)/(2*r.hexSize)
		vs = append(vs, vertex(x, y, u, v))
	}
	is := make([]uint16, 0, 18)
	for i := 0; i < 6; i++ {
		is = append(is, 0, uint16(1+i), uint16(1+(i+1)%6))
	}
	screen.DrawTriangles(vs, is, src, &ebiten.DrawTrianglesOptions{})

	for i := 0; i < 6; i++ {
		j := (i + 1) % 6
		vector.StrokeLine(screen, px[i], py[i], px[j], py[j], 1, outlineColor, true)
	}
}

func (r *RenderSystem) drawProp(screen *ebiten.Image, view camera.View, it drawItem, s *component.Sprite) {
	// anchor the billboard at its base
	x, y, depth, ok := view.Project(it.center)
	if !ok {
		return
	}
	px := s.Size * view.Scale(depth)
	if px < 1 {
		return
	}

	if s.Image == nil {
		vector.DrawFilledCircle(screen, x, y-px/2, px/2, s.Fallback, true)
		return
	}
	b := s.Image.Bounds()
	scale := float64(px) / float64(max(b.Dx(), b.Dy()))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy()))
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.Image, op)
}

func (r *RenderSystem) drawLabel(screen *ebiten.Image, label interact.LabelState) {
	if !label.Visible {
		return
	}
	vector.DrawFilledRect(screen, label.X, label.Y, label.W, label.H, labelBG, false)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(label.X+interact.LabelPadding), float64(label.Y+interact.LabelPadding))
	op.ColorScale.ScaleWithColor(labelFG)
	op.LineSpacing = float64(basicfont.Face7x13.Metrics().Height.Ceil())
	text.Draw(screen, label.Text, r.face, op)
}
