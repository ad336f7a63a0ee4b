// Package diag classifies failures, throttles repeated reports and queues
// user-facing notices.
package diag

import (
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type Severity int

const (
	SeverityInfo Severity = iota
	// SeverityWarning notices can be dismissed; the island keeps running.
	SeverityWarning
	// SeverityCritical notices stay up and recommend a reload.
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// Notice is a message shown to the visitor.
type Notice struct {
	ID       string
	Severity Severity
	Text     string
}

// Dismissible reports whether the visitor may close the notice.
func (n Notice) Dismissible() bool {
	return n.Severity != SeverityCritical
}

// Notices is an ordered set of notices keyed by ID. It is safe for use from
// loader goroutines.
type Notices struct {
	mu    sync.Mutex
	items []Notice
	subs  []func()
}

// Post adds or replaces a notice.
func (n *Notices) Post(notice Notice) {
	n.mu.Lock()
	replaced := false
	for i := range n.items {
		if n.items[i].ID == notice.ID {
			n.items[i] = notice
			replaced = true
			break
		}
	}
	if !replaced {
		n.items = append(n.items, notice)
	}
	subs := append([]func(){}, n.subs...)
	n.mu.Unlock()

	log.Printf("diag: %s: %s", notice.Severity, notice.Text)
	for _, fn := range subs {
		fn()
	}
}

// Dismiss removes a dismissible notice.
func (n *Notices) Dismiss(id string) bool {
	n.mu.Lock()
	removed := false
	for i := range n.items {
		if n.items[i].ID == id && n.items[i].Dismissible() {
			n.items = append(n.items[:i], n.items[i+1:]...)
			removed = true
			break
		}
	}
	subs := append([]func(){}, n.subs...)
	n.mu.Unlock()

	if removed {
		for _, fn := range subs {
			fn()
		}
	}
	return removed
}

// List returns the current notices, critical first.
func (n *Notices) List() []Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Notice, 0, len(n.items))
	for _, it := range n.items {
		if it.Severity == SeverityCritical {
			out = append(out, it)
		}
	}
	for _, it := range n.items {
		if it.Severity != SeverityCritical {
			out = append(out, it)
		}
	}
	return out
}

// Subscribe runs fn after every change. fn may run on a loader goroutine.
func (n *Notices) Subscribe(fn func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subs = append(n.subs, fn)
}

// Reporter logs errors from the frame loop, at most a few per second.
type Reporter struct {
	limiter    *rate.Limiter
	suppressed int
	logf       func(format string, args ...any)
}

// NewReporter allows perSecond reports with an equal burst.
func NewReporter(perSecond int) *Reporter {
	if perSecond <= 0 {
		perSecond = 3
	}
	return &Reporter{
		limiter: rate.NewLimiter(rate.Every(time.Second/time.Duration(perSecond)), perSecond),
		logf:    log.Printf,
	}
}

// Report logs err unless the rate is exceeded. It returns whether it logged.
func (r *Reporter) Report(where string, err error) bool {
	if err == nil {
		return false
	}
	if !r.limiter.Allow() {
		r.suppressed++
		return false
	}
	if r.suppressed > 0 {
		r.logf("diag: %s: %v (%d similar reports suppressed)", where, err, r.suppressed)
		r.suppressed = 0
		return true
	}
	r.logf("diag: %s: %v", where, err)
	return true
}

// Suppressed is the number of reports dropped since the last logged one.
func (r *Reporter) Suppressed() int {
	return r.suppressed
}

// Recover turns a panic into a report. Use as `defer r.Recover("update")`.
func (r *Reporter) Recover(where string) {
	if v := recover(); v != nil {
		r.Report(where, fmt.Errorf("panic: %v", v))
	}
}
