package tween

import (
	"testing"

	"cogentcore.org/core/math32"
)

func TestTweenRunsToCompletion(t *testing.T) {
	e := NewEngine()
	var last float32
	done := 0
	e.Start("x", 1, Linear, func(p float32) { last = p }, func() { done++ })

	for i := 0; i < 3; i++ {
		e.Update(0.25)
	}
	if done != 0 {
		t.Fatalf("tween finished early")
	}
	if math32.Abs(last-0.75) > 1e-4 {
		t.Fatalf("expected progress 0.75, got %v", last)
	}
	e.Update(0.5)
	if done != 1 || last != 1 {
		t.Fatalf("expected completion at 1, got done=%d last=%v", done, last)
	}
	e.Update(0.5)
	if done != 1 {
		t.Fatalf("done called more than once")
	}
	if e.Len() != 0 {
		t.Fatalf("finished tween still active")
	}
}

func TestTweenSupersede(t *testing.T) {
	e := NewEngine()
	firstDone, secondDone := false, false
	e.Start("lift:drawer1", 1, Linear, nil, func() { firstDone = true })
	e.Update(0.5)
	e.Start("lift:drawer1", 1, Linear, nil, func() { secondDone = true })
	if e.Len() != 1 {
		t.Fatalf("expected one live tween, got %d", e.Len())
	}
	e.Update(2)
	if firstDone {
		t.Fatalf("superseded tween must not complete")
	}
	if !secondDone {
		t.Fatalf("replacement tween should complete")
	}
}

func TestTweenDoneMayStartSameKey(t *testing.T) {
	e := NewEngine()
	chained := false
	e.Start("cam", 0.1, Smooth, nil, func() {
		e.Start("cam", 0.1, Smooth, nil, func() { chained = true })
	})
	e.Update(0.2)
	if !e.Running("cam") {
		t.Fatalf("chained tween should be running")
	}
	e.Update(0.2)
	if !chained {
		t.Fatalf("chained tween should have completed")
	}
}

func TestZeroDurationIsImmediate(t *testing.T) {
	e := NewEngine()
	var got float32
	done := false
	e.Start("now", 0, nil, func(p float32) { got = p }, func() { done = true })
	if got != 1 || !done || e.Len() != 0 {
		t.Fatalf("zero duration should apply at once: got=%v done=%v len=%d", got, done, e.Len())
	}
}

func TestKill(t *testing.T) {
	e := NewEngine()
	e.Start("a", 1, Linear, nil, func() { t.Fatalf("killed tween completed") })
	if !e.Kill("a") {
		t.Fatalf("Kill should report a live tween")
	}
	e.Update(2)
	if e.Kill("a") {
		t.Fatalf("second Kill should be a no-op")
	}
}

func TestVec3(t *testing.T) {
	got := Vec3(math32.Vec3(0, 0, 0), math32.Vec3(2, 4, -2), 0.5)
	if got != math32.Vec3(1, 2, -1) {
		t.Fatalf("Vec3 midpoint = %v", got)
	}
}
