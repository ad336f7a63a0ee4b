package camera

import "cogentcore.org/core/math32"

const nearPlane = 0.05

// View is a perspective projection of a camera pose onto a screen.
type View struct {
	Eye    math32.Vector3
	Target math32.Vector3
	Width  float32
	Height float32
	FOV    float32 // degrees

	fwd, right, up math32.Vector3
	focal          float32
}

// NewView prepares a view; the basis is computed once per frame.
func NewView(eye, target math32.Vector3, width, height, fov float32) View {
	v := View{Eye: eye, Target: target, Width: width, Height: height, FOV: fov}
	v.fwd = target.Sub(eye)
	if v.fwd.Length() == 0 {
		v.fwd = math32.Vec3(0, 0, -1)
	}
	v.fwd = v.fwd.Normal()
	v.right = v.fwd.Cross(math32.Vec3(0, 1, 0))
	if v.right.Length() < 1e-6 {
		// looking straight up or down
		v.right = math32.Vec3(1, 0, 0)
	}
	v.right = v.right.Normal()
	v.up = v.right.Cross(v.fwd)
	v.focal = (height / 2) / math32.Tan(fov*math32.Pi/360)
	return v
}

// Project maps a world point to screen pixels. ok is false behind the eye.
func (v View) Project(p math32.Vector3) (sx, sy, depth float32, ok bool) {
	d := p.Sub(v.Eye)
	depth = d.Dot(v.fwd)
	if depth <= nearPlane {
		return 0, 0, depth, false
	}
	sx = v.Width/2 + v.focal*d.Dot(v.right)/depth
	sy = v.Height/2 - v.focal*d.Dot(v.up)/depth
	return sx, sy, depth, true
}

// Direction returns the normalised world direction through a screen pixel.
func (v View) Direction(sx, sy float32) math32.Vector3 {
	dx := (sx - v.Width/2) / v.focal
	dy := (v.Height/2 - sy) / v.focal
	return v.fwd.Add(v.right.MulScalar(dx)).Add(v.up.MulScalar(dy)).Normal()
}

// Ray returns the pick ray through a screen pixel.
func (v View) Ray(sx, sy float32) math32.Ray {
	return *math32.NewRay(v.Eye, v.Direction(sx, sy))
}

// Scale returns screen pixels per world unit at the given depth.
func (v View) Scale(depth float32) float32 {
	if depth <= nearPlane {
		return 0
	}
	return v.focal / depth
}
