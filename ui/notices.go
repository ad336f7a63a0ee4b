package ui

import (
	"sync/atomic"

	"github.com/ebitenui/ebitenui/widget"

	"github.com/milk9111/hexfolio/diag"
)

// NoticesPanel shows diag notices in the top right corner. Notices may be
// posted from loader goroutines, so widgets are rebuilt on Update only.
type NoticesPanel struct {
	style     *Style
	notices   *diag.Notices
	container *widget.Container
	dirty     atomic.Bool
}

func NewNoticesPanel(style *Style, notices *diag.Notices) *NoticesPanel {
	n := &NoticesPanel{
		style:   style,
		notices: notices,
		container: widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(6),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Right: 12}),
			)),
			widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			})),
		),
	}
	notices.Subscribe(func() { n.dirty.Store(true) })
	n.dirty.Store(true)
	return n
}

func (n *NoticesPanel) Widget() *widget.Container { return n.container }

func (n *NoticesPanel) Update() {
	if !n.dirty.Swap(false) {
		return
	}
	n.container.RemoveChildren()
	for _, notice := range n.notices.List() {
		s := n.style
		box := s.column(4, widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10})
		box.AddChild(s.text(notice.Severity.String()+": "+notice.Text, s.Text, 320))
		if notice.Dismissible() {
			id := notice.ID
			box.AddChild(s.button("Dismiss", func() { n.notices.Dismiss(id) }))
		}
		n.container.AddChild(box)
	}
}
