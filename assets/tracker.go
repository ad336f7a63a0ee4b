// Package assets embeds the island's images and loads them in the
// background while counting progress.
package assets

// Tracker counts expected against finished loads and signals once when the
// last one reports. Failed loads report too, so the signal always arrives.
type Tracker struct {
	total     int
	loaded    int
	fired     bool
	callbacks []func()
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// RegisterExpected announces one more load. Registering after completion
// has no effect on the already fired signal.
func (t *Tracker) RegisterExpected() {
	if t.fired {
		return
	}
	t.total++
}

// MarkLoaded records one finished load. Calls beyond the expected total
// are ignored.
func (t *Tracker) MarkLoaded() {
	if t.loaded >= t.total {
		return
	}
	t.loaded++
	if t.loaded == t.total && !t.fired {
		t.fired = true
		for _, fn := range t.callbacks {
			fn()
		}
		t.callbacks = nil
	}
}

// OnAllLoaded registers fn; it runs immediately when loading already
// finished.
func (t *Tracker) OnAllLoaded(fn func()) {
	if fn == nil {
		return
	}
	if t.fired {
		fn()
		return
	}
	t.callbacks = append(t.callbacks, fn)
}

func (t *Tracker) Progress() (loaded, total int) {
	return t.loaded, t.total
}

// Fraction is the share of finished loads, 0 before anything registers.
func (t *Tracker) Fraction() float64 {
	if t.total == 0 {
		return 0
	}
	return float64(t.loaded) / float64(t.total)
}

func (t *Tracker) Done() bool {
	return t.fired
}
