package system

import (
	"testing"

	"cogentcore.org/core/math32"

	"github.com/milk9111/hexfolio/camera"
	"github.com/milk9111/hexfolio/scene"
	"github.com/milk9111/hexfolio/tween"
)

type recorder struct {
	hovers  int
	clicks  int
	scrolls []float32
}

func (r *recorder) Hover(x, y float32) { r.hovers++ }

func (r *recorder) Click(x, y float32) { r.clicks++ }

func (r *recorder) Scroll(dy float32) { r.scrolls = append(r.scrolls, dy) }

func newInput() (*InputSystem, *recorder, *camera.Choreographer) {
	cam := camera.New(camera.DefaultConfig(), tween.NewEngine())
	cam.SnapOrbital()
	rec := &recorder{}
	return NewInputSystem(rec, cam), rec, cam
}

func TestInputClickInsideDeadzone(t *testing.T) {
	in, rec, _ := newInput()

	in.Apply(Pointer{X: 100, Y: 100, Down: true, Pressed: true})
	in.Apply(Pointer{X: 102, Y: 101, Down: true})
	in.Apply(Pointer{X: 102, Y: 101, Released: true})

	if rec.clicks != 1 {
		t.Fatalf("expected one click, got %d", rec.clicks)
	}
	if rec.hovers != 3 {
		t.Fatalf("expected hover every tick, got %d", rec.hovers)
	}
}

func TestInputDragRotatesWithoutClick(t *testing.T) {
	in, rec, cam := newInput()
	start := cam.OrbitAngle()

	in.Apply(Pointer{X: 100, Y: 100, Down: true, Pressed: true})
	in.Apply(Pointer{X: 160, Y: 100, Down: true})
	in.Apply(Pointer{X: 200, Y: 100, Down: true})
	in.Apply(Pointer{X: 200, Y: 100, Released: true})

	if rec.clicks != 0 {
		t.Fatalf("expected drag not to click, got %d clicks", rec.clicks)
	}
	if cam.OrbitAngle() == start {
		t.Fatalf("expected drag to rotate the orbit")
	}
	// only the press tick hovers, the rest are mid-drag
	if rec.hovers != 1 {
		t.Fatalf("expected one hover, got %d", rec.hovers)
	}
}

func TestInputTouchTapHoversThenClicks(t *testing.T) {
	in, rec, _ := newInput()

	in.Apply(Pointer{X: 50, Y: 50, Down: true, Pressed: true, Touch: true})
	in.Apply(Pointer{X: 50, Y: 50, Released: true, Touch: true})

	if rec.hovers != 1 || rec.clicks != 1 {
		t.Fatalf("expected one hover and one click, got %d and %d", rec.hovers, rec.clicks)
	}
}

func TestInputWheelThrottled(t *testing.T) {
	in, rec, _ := newInput()

	for i := 0; i < 5; i++ {
		in.Apply(Pointer{WheelY: 1})
	}
	if len(rec.scrolls) != 1 || rec.scrolls[0] != 1 {
		t.Fatalf("expected a single scroll, got %v", rec.scrolls)
	}
}

func TestDrawListOrder(t *testing.T) {
	reg, err := scene.BuildIsland([]scene.TileDef{
		{Q: 0, R: 0, Type: "home"},
		{Q: 0, R: 1, Type: "near"},
		{Q: 0, R: -1, Type: "far"},
	}, 1)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if _, err := scene.PlaceObject(reg, scene.ObjectDef{ID: "prop", Anchor: "far", Size: 0.5}); err != nil {
		t.Fatalf("place: %v", err)
	}

	// looking down -z from +z, so larger z is nearer
	view := camera.NewView(math32.Vec3(0, 6, 8), math32.Vec3(0, 0, 0), 640, 480, 50)
	items := drawList(reg.World(), view)
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(items))
	}
	last := items[len(items)-1]
	if last.kind != drawProp {
		t.Fatalf("expected the prop to draw last")
	}
	for i := 1; i < 3; i++ {
		if items[i].depth > items[i-1].depth {
			t.Fatalf("tiles not sorted far to near: %v then %v", items[i-1].depth, items[i].depth)
		}
	}
	far, _ := reg.FindTileByType("far")
	if items[0].entity != far.Entity {
		t.Fatalf("expected the far tile first")
	}
}
