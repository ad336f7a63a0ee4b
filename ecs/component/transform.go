package component

import "cogentcore.org/core/math32"

type Transform struct {
	Position math32.Vector3
}

var TransformComponent = NewComponent[Transform]()
