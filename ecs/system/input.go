package system

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/time/rate"

	"github.com/milk9111/hexfolio/camera"
	"github.com/milk9111/hexfolio/ecs"
)

// Pointer is one tick of mouse or touch state in logical pixels.
type Pointer struct {
	X, Y     float32
	Down     bool
	Pressed  bool
	Released bool
	WheelY   float32 // positive scrolls down
	Touch    bool
}

// PointerTarget receives resolved gestures.
type PointerTarget interface {
	Hover(x, y float32)
	Click(x, y float32)
	Scroll(dy float32)
}

type InputSystem struct {
	target PointerTarget
	cam    *camera.Choreographer
	wheel  *rate.Limiter

	touchID  ebiten.TouchID
	touching bool
	lastX    float32
	lastY    float32
}

// NewInputSystem turns pointer state into orbit drags, hovers, clicks and
// scrolls. Wheel steps are throttled so one flick is one scroll.
func NewInputSystem(target PointerTarget, cam *camera.Choreographer) *InputSystem {
	return &InputSystem{
		target: target,
		cam:    cam,
		wheel:  rate.NewLimiter(rate.Every(300*time.Millisecond), 1),
	}
}

func (s *InputSystem) Update(_ *ecs.World) {
	if s == nil {
		return
	}
	s.Apply(s.read())
}

// read polls ebiten, preferring an active touch over the mouse.
func (s *InputSystem) read() Pointer {
	var p Pointer

	if !s.touching {
		if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
			s.touchID = ids[0]
			s.touching = true
			p.Pressed = true
		}
	}
	if s.touching {
		p.Touch = true
		if inpututil.IsTouchJustReleased(s.touchID) {
			s.touching = false
			p.Released = true
			p.X, p.Y = s.lastX, s.lastY
			return p
		}
		x, y := ebiten.TouchPosition(s.touchID)
		p.X, p.Y = float32(x), float32(y)
		p.Down = true
		s.lastX, s.lastY = p.X, p.Y
		return p
	}

	x, y := ebiten.CursorPosition()
	p.X, p.Y = float32(x), float32(y)
	p.Down = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	p.Pressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	p.Released = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	_, wy := ebiten.Wheel()
	p.WheelY = float32(-wy)
	return p
}

// Apply runs one tick of pointer state through the camera and the target.
func (s *InputSystem) Apply(p Pointer) {
	if p.Pressed {
		s.cam.BeginDrag(p.X, p.Y)
	}
	if p.Down {
		s.cam.DragTo(p.X, p.Y)
	}

	if !s.cam.Dragging() && !p.Touch {
		s.target.Hover(p.X, p.Y)
	}

	if p.Released && s.cam.EndDrag() {
		if p.Touch {
			// a tap hovers first so the label and lift match the click
			s.target.Hover(p.X, p.Y)
		}
		s.target.Click(p.X, p.Y)
	}

	if p.WheelY != 0 && s.wheel.Allow() {
		s.target.Scroll(p.WheelY)
	}
}
