package camera

import (
	"errors"
	"fmt"

	"cogentcore.org/core/math32"
)

// Pose is a camera position and the point it looks at.
type Pose struct {
	Position math32.Vector3
	LookAt   math32.Vector3
}

// Config holds the orbit geometry and animation timings.
type Config struct {
	Center      math32.Vector3 // orbit centre on the ground plane
	Radius      float32
	Height      float32
	LookAt      math32.Vector3 // aim point while orbiting and during the cinematic
	Arrival     Pose
	FocusOffset math32.Vector3 // default pose offset from a tile without an arrival pose
	FOV         float32        // vertical field of view, degrees

	Sensitivity float32 // radians per dragged pixel
	Deadzone    float32 // pixels a press may travel and still count as a click

	CinematicStart    float32 // radians
	CinematicEnd      float32 // radians
	CinematicDuration float32 // seconds
	ZoneDuration      float32
	ReturnDuration    float32
}

func DefaultConfig() Config {
	return Config{
		Radius:      16,
		Height:      10,
		Arrival:     Pose{Position: math32.Vec3(0, 10, 16), LookAt: math32.Vec3(0, 0, 0)},
		FocusOffset: math32.Vec3(0, 5, 6),
		FOV:         50,

		Sensitivity: 0.005,
		Deadzone:    5,

		CinematicStart:    -math32.Pi / 2,
		CinematicEnd:      math32.Pi / 2,
		CinematicDuration: 4,
		ZoneDuration:      1.5,
		ReturnDuration:    1.2,
	}
}

var errNonPositive = errors.New("must be positive")

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	checks := []struct {
		name string
		v    float32
	}{
		{"radius", c.Radius},
		{"fov", c.FOV},
		{"sensitivity", c.Sensitivity},
		{"cinematic_duration", c.CinematicDuration},
		{"zone_duration", c.ZoneDuration},
		{"return_duration", c.ReturnDuration},
	}
	for _, ch := range checks {
		if ch.v <= 0 {
			return fmt.Errorf("camera: %s %w", ch.name, errNonPositive)
		}
	}
	if c.Deadzone < 0 {
		return fmt.Errorf("camera: deadzone must not be negative")
	}
	if c.FOV >= 180 {
		return fmt.Errorf("camera: fov %.0f out of range", c.FOV)
	}
	return nil
}
