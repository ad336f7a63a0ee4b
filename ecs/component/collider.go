package component

import "cogentcore.org/core/math32"

// Collider is an axis-aligned box relative to the entity's transform.
type Collider struct {
	Min math32.Vector3
	Max math32.Vector3
}

// World returns the box placed at origin.
func (c Collider) World(origin math32.Vector3) math32.Box3 {
	return math32.Box3{Min: c.Min.Add(origin), Max: c.Max.Add(origin)}
}

var ColliderComponent = NewComponent[Collider]()
