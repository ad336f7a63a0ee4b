package modal

import (
	"reflect"
	"testing"
)

type recordingPresenter struct {
	events []string
}

func (p *recordingPresenter) Show(id string, _ Content) {
	p.events = append(p.events, "show:"+id)
}

func (p *recordingPresenter) Hide(id string) {
	p.events = append(p.events, "hide:"+id)
}

func TestOpenIsIdempotent(t *testing.T) {
	p := &recordingPresenter{}
	c := NewController(p)

	if !c.Open("cvModal", Content{Title: "CV"}) {
		t.Fatalf("expected first open to succeed")
	}
	if c.Open("cvModal", Content{}) {
		t.Fatalf("expected second open to be a no-op")
	}
	if len(p.events) != 1 {
		t.Fatalf("expected one show, got %v", p.events)
	}
	if !c.AnyOpen() || !c.IsOpen("cvModal") {
		t.Fatalf("expected cvModal open")
	}
}

func TestCloseRunsCallbackBeforeDispose(t *testing.T) {
	p := &recordingPresenter{}
	c := NewController(p)
	c.OnClose(func(id string) { p.events = append(p.events, "callback:"+id) })

	c.Open("aboutModal", Content{})
	if !c.Close("aboutModal") {
		t.Fatalf("expected close to succeed")
	}
	want := []string{"show:aboutModal", "callback:aboutModal", "hide:aboutModal"}
	if !reflect.DeepEqual(p.events, want) {
		t.Fatalf("expected %v, got %v", want, p.events)
	}
	if c.Close("aboutModal") {
		t.Fatalf("expected closing a closed panel to be a no-op")
	}
}

func TestClosedPanelWaitsForZoneChange(t *testing.T) {
	c := NewController(nil)
	c.Open("forgeModal", Content{})
	c.Close("forgeModal")

	rec := c.Record("forgeModal")
	if !rec.EverOpened || !rec.IsClosed || rec.Open {
		t.Fatalf("unexpected record %+v", rec)
	}
	if c.Open("forgeModal", Content{}) {
		t.Fatalf("expected reopen in the same zone to be refused")
	}

	c.ResetAll()
	if rec := c.Record("forgeModal"); rec != (Record{}) {
		t.Fatalf("expected flags cleared by reset, got %+v", rec)
	}
	if !c.Open("forgeModal", Content{}) {
		t.Fatalf("expected reopen after reset")
	}
}

func TestResetAllKeepsOpenPanels(t *testing.T) {
	c := NewController(nil)
	c.Open("aboutModal", Content{})
	c.ResetAll()
	if rec := c.Record("aboutModal"); !rec.Open || !rec.EverOpened || rec.IsClosed {
		t.Fatalf("expected the open panel untouched, got %+v", rec)
	}
}

func TestCloseAll(t *testing.T) {
	c := NewController(nil)
	var closed []string
	c.OnClose(func(id string) { closed = append(closed, id) })
	c.Open("b", Content{})
	c.Open("a", Content{})
	c.CloseAll()
	if c.AnyOpen() {
		t.Fatalf("expected nothing open")
	}
	if !reflect.DeepEqual(closed, []string{"a", "b"}) {
		t.Fatalf("expected sorted close order, got %v", closed)
	}
}
