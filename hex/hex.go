// Package hex converts pointy-top axial hex coordinates to world space.
package hex

import "cogentcore.org/core/math32"

var sqrt3 = math32.Sqrt(3)

// Coord is an axial (q, r) hex coordinate.
type Coord struct {
	Q int `json:"q" yaml:"q"`
	R int `json:"r" yaml:"r"`
}

// ToWorld returns the centre of hex (q, r) on the y = 0 plane.
func ToWorld(q, r int, size float32) math32.Vector3 {
	fq, fr := float32(q), float32(r)
	x := size * sqrt3 * (fq + fr/2)
	z := size * 1.5 * fr
	return math32.Vec3(x, 0, z)
}

// Corners returns the six corners of a pointy-top hex centred at c,
// starting at the top corner and walking clockwise.
func Corners(c math32.Vector3, size float32) [6]math32.Vector3 {
	var out [6]math32.Vector3
	for i := 0; i < 6; i++ {
		a := math32.Pi/180*(60*float32(i)) - math32.Pi/2
		out[i] = math32.Vec3(c.X+size*math32.Cos(a), c.Y, c.Z+size*math32.Sin(a))
	}
	return out
}

// Neighbors returns the six axial neighbours of c.
func Neighbors(c Coord) [6]Coord {
	return [6]Coord{
		{c.Q + 1, c.R}, {c.Q + 1, c.R - 1}, {c.Q, c.R - 1},
		{c.Q - 1, c.R}, {c.Q - 1, c.R + 1}, {c.Q, c.R + 1},
	}
}
