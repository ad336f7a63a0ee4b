// Package camera moves the island camera between the entrance cinematic,
// free orbiting and focused poses.
package camera

import (
	"log"

	"cogentcore.org/core/math32"

	"github.com/milk9111/hexfolio/tween"
)

const tweenKey = "camera"

// State is the externally visible camera state.
type State struct {
	Position math32.Vector3
	LookAt   math32.Vector3
	Mode     Mode
}

// Pose returns the position and aim of the state.
func (s State) Pose() Pose {
	return Pose{Position: s.Position, LookAt: s.LookAt}
}

// Choreographer owns the camera state. Every change of position goes through
// it so that at most one camera tween is alive at a time.
type Choreographer struct {
	cfg    Config
	tweens *tween.Engine
	state  State
	angle  float32

	dragging  bool
	dragMoved bool
	pressX    float32
	pressY    float32
	lastX     float32
}

// New places the camera at the arrival pose.
func New(cfg Config, tweens *tween.Engine) *Choreographer {
	if tweens == nil {
		tweens = tween.NewEngine()
	}
	c := &Choreographer{
		cfg:    cfg,
		tweens: tweens,
		state: State{
			Position: cfg.Arrival.Position,
			LookAt:   cfg.Arrival.LookAt,
			Mode:     ModeArrival,
		},
	}
	c.angle = c.angleOf(c.state.Position)
	return c
}

func (c *Choreographer) State() State { return c.state }

func (c *Choreographer) Mode() Mode { return c.state.Mode }

func (c *Choreographer) OrbitAngle() float32 { return c.angle }

func (c *Choreographer) Config() Config { return c.cfg }

// Animating reports whether a camera tween is running.
func (c *Choreographer) Animating() bool {
	return c.tweens.Running(tweenKey)
}

// OrbitPoint returns the orbit position for angle.
func (c *Choreographer) OrbitPoint(angle float32) math32.Vector3 {
	return math32.Vec3(
		c.cfg.Center.X+c.cfg.Radius*math32.Cos(angle),
		c.cfg.Height,
		c.cfg.Center.Z+c.cfg.Radius*math32.Sin(angle),
	)
}

func (c *Choreographer) angleOf(p math32.Vector3) float32 {
	return math32.Atan2(p.Z-c.cfg.Center.Z, p.X-c.cfg.Center.X)
}

func (c *Choreographer) setMode(m Mode) error {
	if err := checkTransition(c.state.Mode, m); err != nil {
		return err
	}
	c.state.Mode = m
	return nil
}

// PlayCinematic sweeps the camera around the island. When the sweep ends the
// camera is orbital at the angle it stopped at and done is called.
func (c *Choreographer) PlayCinematic(done func()) error {
	if err := c.setMode(ModeCinematic); err != nil {
		return err
	}
	c.dragging = false
	start, end := c.cfg.CinematicStart, c.cfg.CinematicEnd
	c.tweens.Start(tweenKey, c.cfg.CinematicDuration, tween.Cinematic,
		func(p float32) {
			c.state.Position = c.OrbitPoint(start + (end-start)*p)
			c.state.LookAt = c.cfg.LookAt
		},
		func() {
			c.state.Mode = ModeOrbital
			c.angle = c.angleOf(c.state.Position)
			if done != nil {
				done()
			}
		})
	return nil
}

// NavigateTo flies the camera to pose. Position and aim animate together so
// the camera never looks away from where it is heading.
func (c *Choreographer) NavigateTo(pose Pose, done func()) error {
	if err := c.setMode(ModeFocused); err != nil {
		return err
	}
	c.animateTo(pose, c.cfg.ZoneDuration, done)
	return nil
}

// ReturnToOrbital animates back to the orbit at the current angle.
func (c *Choreographer) ReturnToOrbital(done func()) error {
	if err := c.setMode(ModeOrbital); err != nil {
		return err
	}
	target := Pose{Position: c.OrbitPoint(c.angle), LookAt: c.cfg.LookAt}
	c.animateTo(target, c.cfg.ReturnDuration, done)
	return nil
}

func (c *Choreographer) animateTo(pose Pose, duration float32, done func()) {
	fromPos, fromLook := c.state.Position, c.state.LookAt
	c.tweens.Start(tweenKey, duration, tween.Smooth,
		func(p float32) {
			c.state.Position = tween.Vec3(fromPos, pose.Position, p)
			c.state.LookAt = tween.Vec3(fromLook, pose.LookAt, p)
		},
		done)
}

// SnapOrbital jumps straight to the orbit, used when the entrance is skipped.
func (c *Choreographer) SnapOrbital() {
	c.tweens.Kill(tweenKey)
	c.state.Mode = ModeOrbital
	c.state.Position = c.OrbitPoint(c.angle)
	c.state.LookAt = c.cfg.LookAt
}

// SetTuning swaps the configuration. An orbiting camera at rest is moved onto
// the new orbit immediately.
func (c *Choreographer) SetTuning(cfg Config) {
	if err := cfg.Validate(); err != nil {
		log.Printf("camera: ignoring tuning: %v", err)
		return
	}
	c.cfg = cfg
	if c.state.Mode == ModeOrbital && !c.Animating() {
		c.state.Position = c.OrbitPoint(c.angle)
		c.state.LookAt = cfg.LookAt
	}
}

// BeginDrag starts a pointer gesture.
func (c *Choreographer) BeginDrag(x, y float32) {
	c.dragging = true
	c.dragMoved = false
	c.pressX, c.pressY = x, y
	c.lastX = x
}

// DragTo rotates the orbit by the horizontal pointer travel once the gesture
// has left the deadzone.
func (c *Choreographer) DragTo(x, y float32) {
	if !c.dragging {
		return
	}
	if !c.dragMoved {
		if math32.Hypot(x-c.pressX, y-c.pressY) <= c.cfg.Deadzone {
			return
		}
		c.dragMoved = true
		if c.state.Mode == ModeArrival {
			c.lastX = x
			_ = c.ReturnToOrbital(nil)
			return
		}
	}
	dx := x - c.lastX
	c.lastX = x
	if c.state.Mode != ModeOrbital || c.Animating() {
		return
	}
	c.angle += dx * c.cfg.Sensitivity
	c.state.Position = c.OrbitPoint(c.angle)
	c.state.LookAt = c.cfg.LookAt
}

// EndDrag finishes the gesture and reports whether it was a click.
func (c *Choreographer) EndDrag() bool {
	if !c.dragging {
		return false
	}
	c.dragging = false
	return !c.dragMoved
}

// Dragging reports whether a gesture is past the deadzone.
func (c *Choreographer) Dragging() bool {
	return c.dragging && c.dragMoved
}

// FocusPose is the default pose looking down at a point on the island.
func (c *Choreographer) FocusPose(target math32.Vector3) Pose {
	return Pose{Position: target.Add(c.cfg.FocusOffset), LookAt: target}
}
