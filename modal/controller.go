// Package modal tracks the informational panels opened from props.
package modal

import "sort"

// Content is what a panel shows.
type Content struct {
	Title string
	Body  string
	// URL is the external page the panel frames; it can be opened in a browser.
	URL string
	// Copy is text offered on a copy button, empty for none.
	Copy string
}

// Record is the per-panel state.
type Record struct {
	EverOpened bool
	IsClosed   bool // closed since the last zone change
	Open       bool
}

// Presenter draws and removes panels.
type Presenter interface {
	Show(id string, c Content)
	Hide(id string)
}

// Controller owns panel state. Open is refused for a panel that is already
// open or was closed in the current zone.
type Controller struct {
	records   map[string]*Record
	presenter Presenter
	onClose   []func(id string)
}

func NewController(p Presenter) *Controller {
	return &Controller{records: make(map[string]*Record), presenter: p}
}

// SetPresenter swaps the presenter, used once the UI exists.
func (c *Controller) SetPresenter(p Presenter) {
	c.presenter = p
}

// OnClose registers fn; callbacks run before the panel is disposed.
func (c *Controller) OnClose(fn func(id string)) {
	if fn != nil {
		c.onClose = append(c.onClose, fn)
	}
}

func (c *Controller) record(id string) *Record {
	r, ok := c.records[id]
	if !ok {
		r = &Record{}
		c.records[id] = r
	}
	return r
}

// Open shows a panel, reporting whether it was opened.
func (c *Controller) Open(id string, content Content) bool {
	if id == "" {
		return false
	}
	r := c.record(id)
	if r.Open || r.IsClosed {
		return false
	}
	r.Open = true
	r.EverOpened = true
	if c.presenter != nil {
		c.presenter.Show(id, content)
	}
	return true
}

// Close hides an open panel, reporting whether it was open.
func (c *Controller) Close(id string) bool {
	r, ok := c.records[id]
	if !ok || !r.Open {
		return false
	}
	r.Open = false
	r.IsClosed = true
	for _, fn := range c.onClose {
		fn(id)
	}
	if c.presenter != nil {
		c.presenter.Hide(id)
	}
	return true
}

// CloseAll closes every open panel.
func (c *Controller) CloseAll() {
	for _, id := range c.OpenIDs() {
		c.Close(id)
	}
}

func (c *Controller) IsOpen(id string) bool {
	r, ok := c.records[id]
	return ok && r.Open
}

func (c *Controller) AnyOpen() bool {
	for _, r := range c.records {
		if r.Open {
			return true
		}
	}
	return false
}

// OpenIDs returns the open panels, sorted.
func (c *Controller) OpenIDs() []string {
	var ids []string
	for id, r := range c.records {
		if r.Open {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Record returns a copy of the panel's state.
func (c *Controller) Record(id string) Record {
	if r, ok := c.records[id]; ok {
		return *r
	}
	return Record{}
}

// ResetAll clears the opened and closed flags so every panel can open again
// after a zone change. Open panels stay open.
func (c *Controller) ResetAll() {
	for _, r := range c.records {
		r.IsClosed = false
		if !r.Open {
			r.EverOpened = false
		}
	}
}
