package camera

import "errors"

// Mode is the camera's current behaviour.
type Mode int

const (
	ModeArrival Mode = iota
	ModeCinematic
	ModeOrbital
	ModeFocused
)

func (m Mode) String() string {
	switch m {
	case ModeArrival:
		return "arrival"
	case ModeCinematic:
		return "cinematic"
	case ModeOrbital:
		return "orbital"
	case ModeFocused:
		return "focused"
	}
	return "unknown"
}

var (
	ErrCinematic         = errors.New("camera: cinematic in progress")
	ErrIllegalTransition = errors.New("camera: illegal mode transition")
)

// A cinematic has no outgoing transitions; only the end of its sweep
// returns the camera to the orbit.
var transitions = map[Mode][]Mode{
	ModeArrival:   {ModeCinematic, ModeOrbital, ModeFocused},
	ModeCinematic: nil,
	ModeOrbital:   {ModeCinematic, ModeFocused, ModeOrbital},
	ModeFocused:   {ModeFocused, ModeOrbital, ModeCinematic},
}

// CanTransition reports whether the state machine allows from -> to.
func CanTransition(from, to Mode) bool {
	for _, m := range transitions[from] {
		if m == to {
			return true
		}
	}
	return false
}

func checkTransition(from, to Mode) error {
	if CanTransition(from, to) {
		return nil
	}
	if from == ModeCinematic {
		return ErrCinematic
	}
	return ErrIllegalTransition
}
