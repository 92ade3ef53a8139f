package gfx_test

import (
	"testing"

	glm "github.com/go-gl/mathgl/mgl32"

	"github.com/devblok/prism/gfx"
)

func TestIdentityTransformMatrix(t *testing.T) {
	if m := gfx.IdentityTransform().Matrix(); !m.ApproxEqual(glm.Ident4()) {
		t.Fatalf("expected the identity matrix, got %v", m)
	}
}

func TestTransformTranslateScale(t *testing.T) {
	transform := gfx.IdentityTransform()
	transform.Position = glm.Vec3{1, 2, 3}
	transform.Scale = 2

	got := transform.Matrix().Mul4x1(glm.Vec4{1, 0, 0, 1})
	want := glm.Vec4{3, 2, 3, 1}
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestTransformRotation(t *testing.T) {
	transform := gfx.IdentityTransform()
	transform.Rotation = glm.QuatRotate(glm.DegToRad(90), glm.Vec3{0, 1, 0})

	got := transform.Matrix().Mul4x1(glm.Vec4{1, 0, 0, 1})
	want := glm.Vec4{0, 0, -1, 1}
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestTransformScaleBeforeTranslate(t *testing.T) {
	transform := gfx.IdentityTransform()
	transform.Position = glm.Vec3{10, 0, 0}
	transform.Scale = 3

	// Scale must not stretch the translation.
	got := transform.Matrix().Mul4x1(glm.Vec4{0, 0, 0, 1})
	want := glm.Vec4{10, 0, 0, 1}
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestTransformInverseRoundTrip(t *testing.T) {
	transform := gfx.IdentityTransform()
	transform.Position = glm.Vec3{4, -2, 7}
	transform.Rotation = glm.QuatRotate(glm.DegToRad(30), glm.Vec3{0, 1, 0})
	transform.Scale = 2

	m := transform.Matrix()
	if !m.Inv().Mul4(m).ApproxEqualThreshold(glm.Ident4(), 1e-5) {
		t.Fatal("inverse does not undo the transform")
	}
}
