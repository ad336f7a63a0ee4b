package ui

import (
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/input"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// HUD stacks the overlays in one ebitenui tree: sidebar and notices at the
// bottom, panels above them, the loading overlay on top.
type HUD struct {
	ui      *ebitenui.UI
	Sidebar *Sidebar
	Panels  *Presenter
	Loading *LoadingOverlay
	Notices *NoticesPanel
}

func NewHUD(sidebar *Sidebar, panels *Presenter, loading *LoadingOverlay, notices *NoticesPanel) *HUD {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(sidebar.Widget())
	root.AddChild(notices.Widget())
	root.AddChild(panels.Widget())
	root.AddChild(loading.Widget())

	return &HUD{
		ui:      &ebitenui.UI{Container: root},
		Sidebar: sidebar,
		Panels:  panels,
		Loading: loading,
		Notices: notices,
	}
}

func (h *HUD) Update() {
	h.Sidebar.Update()
	h.Notices.Update()
	h.Loading.Update()
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}

// Captured reports whether the pointer is over a widget, in which case the
// island should not see it.
func (h *HUD) Captured() bool {
	return input.UIHovered || h.Loading.Visible()
}
