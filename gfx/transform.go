// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	glm "github.com/go-gl/mathgl/mgl32"
)

// Transform places an object in the world. It composes into a matrix
// as translation, then rotation, then uniform scale. The zero value
// is degenerate (zero scale, zero quaternion), use IdentityTransform.
type Transform struct {
	Position glm.Vec3
	Rotation glm.Quat
	Scale    float32
}

// IdentityTransform returns a transform that maps everything onto itself.
func IdentityTransform() Transform {
	return Transform{
		Rotation: glm.QuatIdent(),
		Scale:    1,
	}
}

// Matrix composes the transform into a model matrix.
func (t Transform) Matrix() glm.Mat4 {
	translate := glm.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	scale := glm.Scale3D(t.Scale, t.Scale, t.Scale)
	return translate.Mul4(t.Rotation.Mat4()).Mul4(scale)
}
