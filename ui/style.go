// Package ui builds the ebitenui overlays around the island: the navigation
// sidebar, panels, the loading overlay and notices.
package ui

import (
	"image/color"

	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Style is shared by every overlay. Nine-slices are flat colours so no theme
// images or fonts have to be loaded.
type Style struct {
	Face      ebtext.Face
	Text      color.Color
	Muted     color.Color
	Panel     *imageui.NineSlice
	Button    *widget.ButtonImage
	ButtonTxt *widget.ButtonTextColor
	Track     *widget.ProgressBarImage
	Fill      *widget.ProgressBarImage
}

func DefaultStyle() *Style {
	idle := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff})
	hover := imageui.NewNineSliceColor(color.NRGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 0xff})
	pressed := imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff})

	return &Style{
		Face:  ebtext.NewGoXFace(basicfont.Face7x13),
		Text:  color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Muted: color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff},
		Panel: imageui.NewNineSliceColor(color.NRGBA{A: 200}),
		Button: &widget.ButtonImage{
			Idle:    idle,
			Hover:   hover,
			Pressed: pressed,
		},
		ButtonTxt: &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		Track:     &widget.ProgressBarImage{Idle: imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff})},
		Fill:      &widget.ProgressBarImage{Idle: imageui.NewNineSliceColor(color.NRGBA{R: 0x8f, G: 0xc4, B: 0x6a, A: 0xff})},
	}
}

func (s *Style) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(s.Button),
		widget.ButtonOpts.Text(label, &s.Face, s.ButtonTxt),
		widget.ButtonOpts.TextPadding(&widget.Insets{Top: 4, Bottom: 4, Left: 10, Right: 10}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

func (s *Style) text(label string, clr color.Color, maxWidth float64) *widget.Text {
	opts := []widget.TextOpt{widget.TextOpts.Text(label, &s.Face, clr)}
	if maxWidth > 0 {
		opts = append(opts, widget.TextOpts.MaxWidth(maxWidth))
	}
	return widget.NewText(opts...)
}

func (s *Style) column(spacing int, padding widget.Insets, wopts ...widget.WidgetOpt) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(s.Panel),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(spacing),
			widget.RowLayoutOpts.Padding(&padding),
		)),
		widget.ContainerOpts.WidgetOpts(wopts...),
	)
}
