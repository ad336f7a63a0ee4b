package component

import (
	"cogentcore.org/core/math32"

	"github.com/milk9111/hexfolio/camera"
)

type Lift int

const (
	LiftNone Lift = iota
	// LiftDrawer slides the prop sideways along LiftVector.
	LiftDrawer
	// LiftFlower raises the prop and may keep it raised (StayUp).
	LiftFlower
)

type Action int

const (
	ActionModal Action = iota
	ActionNavigate
)

// Interactive is a hoverable, possibly clickable prop.
type Interactive struct {
	ID         string
	Anchor     string // tile type the prop stands on
	Group      string
	Rest       math32.Vector3
	Offset     math32.Vector3 // current displacement from Rest
	Lift       Lift
	LiftVector math32.Vector3
	Clickable  bool
	// Focus is the camera pose relative to Rest, nil for props that open
	// their panel without moving the camera.
	Focus  *camera.Pose
	Modal  string
	Action Action
	Target string
	StayUp bool
}

// Position is the prop's current world position.
func (i *Interactive) Position() math32.Vector3 {
	return i.Rest.Add(i.Offset)
}

// FocusPose returns the world-space focus pose, if any.
func (i *Interactive) FocusPose() (camera.Pose, bool) {
	if i.Focus == nil {
		return camera.Pose{}, false
	}
	return camera.Pose{
		Position: i.Rest.Add(i.Focus.Position),
		LookAt:   i.Rest.Add(i.Focus.LookAt),
	}, true
}

var InteractiveComponent = NewComponent[Interactive]()
