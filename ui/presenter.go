package ui

import (
	"log"
	"sync"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/pkg/browser"
	"golang.design/x/clipboard"

	"github.com/milk9111/hexfolio/common"
	"github.com/milk9111/hexfolio/modal"
)

// Presenter shows panels centred over the island. It implements
// modal.Presenter.
type Presenter struct {
	style     *Style
	container *widget.Container
	panels    map[string]*widget.Container
	close     func(id string)

	openURL  func(url string) error
	copyText func(text string) error
}

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

func copyToClipboard(text string) error {
	clipboardOnce.Do(func() { clipboardErr = clipboard.Init() })
	if clipboardErr != nil {
		return clipboardErr
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// NewPresenter builds the panel layer. close is called by a panel's close
// button and should route through the modal controller.
func NewPresenter(style *Style, close func(id string)) *Presenter {
	return &Presenter{
		style: style,
		container: widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
			widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				StretchHorizontal: true,
				StretchVertical:   true,
			})),
		),
		panels:   make(map[string]*widget.Container),
		close:    close,
		openURL:  browser.OpenURL,
		copyText: copyToClipboard,
	}
}

func (p *Presenter) Widget() *widget.Container { return p.container }

func (p *Presenter) Show(id string, c modal.Content) {
	if _, ok := p.panels[id]; ok {
		return
	}
	s := p.style
	panel := s.column(10, widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30},
		widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/3),
		widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		}),
	)
	panel.AddChild(s.text(c.Title, s.Text, 0))
	panel.AddChild(s.text(c.Body, s.Muted, float64(common.BaseWidth/2)))

	if c.URL != "" {
		url := c.URL
		panel.AddChild(s.button("Open in browser", func() {
			if err := p.openURL(url); err != nil {
				log.Printf("ui: open %s: %v", url, err)
			}
		}))
	}
	if c.Copy != "" {
		value := c.Copy
		panel.AddChild(s.button("Copy "+value, func() {
			if err := p.copyText(value); err != nil {
				log.Printf("ui: copy: %v", err)
			}
		}))
	}
	panel.AddChild(s.button("Close", func() { p.close(id) }))

	p.panels[id] = panel
	p.container.AddChild(panel)
}

func (p *Presenter) Hide(id string) {
	panel, ok := p.panels[id]
	if !ok {
		return
	}
	delete(p.panels, id)
	p.container.RemoveChild(panel)
}

// Showing reports whether a panel is on screen.
func (p *Presenter) Showing(id string) bool {
	_, ok := p.panels[id]
	return ok
}
