package ui

import (
	"log"
	"strconv"
	"sync/atomic"

	"github.com/ebitenui/ebitenui/widget"

	"github.com/milk9111/hexfolio/theme"
)

// SidebarEntry is one zone button.
type SidebarEntry struct {
	Label string
	Zone  string // tile type to focus
	Theme theme.Theme
}

// UnreadCounter is what the sidebar needs from the notification store.
type UnreadCounter interface {
	CountForTheme(th theme.Theme) int
	Subscribe(fn func())
}

// Sidebar lists the zones with unread badges and an overview button.
type Sidebar struct {
	entries   []SidebarEntry
	buttons   []*widget.Button
	unread    UnreadCounter
	container *widget.Container
	dirty     atomic.Bool
}

// BadgeLabel appends the unread count to a zone label.
func BadgeLabel(label string, unread int) string {
	if unread <= 0 {
		return label
	}
	return label + " (" + strconv.Itoa(unread) + ")"
}

func NewSidebar(style *Style, entries []SidebarEntry, unread UnreadCounter, navigate func(zone string) error) *Sidebar {
	s := &Sidebar{
		entries: entries,
		unread:  unread,
		container: style.column(6, widget.Insets{Top: 12, Bottom: 12, Left: 12, Right: 12},
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	}

	nav := func(zone string) func() {
		return func() {
			if err := navigate(zone); err != nil {
				log.Printf("ui: navigate %q: %v", zone, err)
			}
		}
	}
	for _, e := range entries {
		b := style.button(e.Label, nav(e.Zone))
		s.buttons = append(s.buttons, b)
		s.container.AddChild(b)
	}
	s.container.AddChild(style.button("Overview", nav("")))

	unread.Subscribe(func() { s.dirty.Store(true) })
	s.dirty.Store(true)
	return s
}

func (s *Sidebar) Widget() *widget.Container { return s.container }

// Labels returns the current button captions.
func (s *Sidebar) Labels() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = BadgeLabel(e.Label, s.unread.CountForTheme(e.Theme))
	}
	return out
}

// Update refreshes the badges after the store changed.
func (s *Sidebar) Update() {
	if !s.dirty.Swap(false) {
		return
	}
	for i, label := range s.Labels() {
		s.buttons[i].SetText(label)
	}
}
