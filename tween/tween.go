// Package tween drives eased animations from the per-frame update tick.
package tween

import (
	"cogentcore.org/core/math32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/milk9111/hexfolio/common"
)

// Easing curves used across the island.
var (
	Linear    ease.TweenFunc = ease.Linear
	Smooth    ease.TweenFunc = ease.InOutCubic
	SoftLand  ease.TweenFunc = ease.OutQuad
	Cinematic ease.TweenFunc = ease.InOutSine
)

type entry struct {
	key    string
	tw     *gween.Tween
	update func(p float32)
	done   func()
	dead   bool
}

// Engine owns every in-flight tween. Tweens are keyed by the property they
// animate; starting a tween on a busy key kills the running one.
type Engine struct {
	active []*entry
}

func NewEngine() *Engine {
	return &Engine{}
}

// Start animates eased progress from 0 to 1 over duration seconds, calling
// update on every tick and done once at the end. A superseded tween never
// sees its done callback.
func (e *Engine) Start(key string, duration float32, easing ease.TweenFunc, update func(p float32), done func()) {
	if e == nil {
		return
	}
	e.Kill(key)
	if easing == nil {
		easing = Linear
	}
	if duration <= 0 {
		if update != nil {
			update(1)
		}
		if done != nil {
			done()
		}
		return
	}
	e.active = append(e.active, &entry{
		key:    key,
		tw:     gween.New(0, 1, duration, easing),
		update: update,
		done:   done,
	})
}

// Kill stops the tween on key without running its done callback.
func (e *Engine) Kill(key string) bool {
	if e == nil {
		return false
	}
	killed := false
	for _, en := range e.active {
		if en.key == key && !en.dead {
			en.dead = true
			killed = true
		}
	}
	return killed
}

// Running reports whether a live tween exists on key.
func (e *Engine) Running(key string) bool {
	if e == nil {
		return false
	}
	for _, en := range e.active {
		if en.key == key && !en.dead {
			return true
		}
	}
	return false
}

// Len returns the number of live tweens.
func (e *Engine) Len() int {
	if e == nil {
		return 0
	}
	n := 0
	for _, en := range e.active {
		if !en.dead {
			n++
		}
	}
	return n
}

// Update advances every tween by dt seconds.
func (e *Engine) Update(dt float32) {
	if e == nil || len(e.active) == 0 {
		return
	}
	snapshot := append([]*entry(nil), e.active...)
	for _, en := range snapshot {
		if en.dead {
			continue
		}
		p, finished := en.tw.Update(dt)
		if en.update != nil {
			en.update(p)
		}
		if en.dead {
			// the update callback superseded this tween
			continue
		}
		if finished {
			en.dead = true
			if en.done != nil {
				en.done()
			}
		}
	}

	live := e.active[:0]
	for _, en := range e.active {
		if !en.dead {
			live = append(live, en)
		}
	}
	for i := len(live); i < len(e.active); i++ {
		e.active[i] = nil
	}
	e.active = live
}

// Vec3 interpolates between two points.
func Vec3(a, b math32.Vector3, p float32) math32.Vector3 {
	return math32.Vec3(common.Lerp(a.X, b.X, p), common.Lerp(a.Y, b.Y, p), common.Lerp(a.Z, b.Z, p))
}
