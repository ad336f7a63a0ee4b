package ui

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/ebitenui/ebitenui/widget"
)

// Progress is what the overlay reads each frame.
type Progress interface {
	Progress() (loaded, total int)
	Done() bool
}

// ProgressText is the caption under the loading bar.
func ProgressText(loaded, total int, bytes int64) string {
	if total == 0 {
		return "Preparing the island..."
	}
	return fmt.Sprintf("Loading %d/%d assets (%s)", loaded, total, humanize.Bytes(uint64(bytes)))
}

// LoadingOverlay covers the island until the visitor enters.
type LoadingOverlay struct {
	container *widget.Container
	bar       *widget.ProgressBar
	caption   *widget.Text
	enter     *widget.Button
	progress  Progress
	bytes     func() int64
	visible   bool
}

func NewLoadingOverlay(style *Style, progress Progress, bytes func() int64, dismiss func()) *LoadingOverlay {
	o := &LoadingOverlay{progress: progress, bytes: bytes, visible: true}
	o.container = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(style.Panel),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			StretchHorizontal: true,
			StretchVertical:   true,
		})),
	)
	col := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	)
	o.bar = widget.NewProgressBar(
		widget.ProgressBarOpts.WidgetOpts(widget.WidgetOpts.MinSize(320, 14)),
		widget.ProgressBarOpts.Images(style.Track, style.Fill),
		widget.ProgressBarOpts.Values(0, 1, 0),
	)
	o.caption = style.text(ProgressText(0, 0, 0), style.Text, 0)
	o.enter = style.button("Enter the island", func() {
		o.Hide()
		dismiss()
	})
	o.enter.GetWidget().Visibility = widget.Visibility_Hide

	col.AddChild(style.text("Hexfolio", style.Text, 0))
	col.AddChild(o.bar)
	col.AddChild(o.caption)
	col.AddChild(o.enter)
	o.container.AddChild(col)
	return o
}

func (o *LoadingOverlay) Widget() *widget.Container { return o.container }

func (o *LoadingOverlay) Visible() bool { return o.visible }

func (o *LoadingOverlay) Hide() {
	o.visible = false
	o.container.GetWidget().Visibility = widget.Visibility_Hide
}

func (o *LoadingOverlay) Update() {
	if !o.visible {
		return
	}
	loaded, total := o.progress.Progress()
	if total > 0 {
		o.bar.Max = total
		o.bar.SetCurrent(loaded)
	}
	var n int64
	if o.bytes != nil {
		n = o.bytes()
	}
	o.caption.Label = ProgressText(loaded, total, n)
	if o.progress.Done() {
		o.enter.GetWidget().Visibility = widget.Visibility_Show
	}
}
