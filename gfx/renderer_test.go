// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	"testing"

	glm "github.com/go-gl/mathgl/mgl32"
)

// The submission side of the renderer never touches the GPU, so
// queue discipline is tested on a zero-value Renderer without a GL
// context.

func TestSubmitPastCapacityPanics(t *testing.T) {
	var renderer Renderer
	mesh, texture := &Mesh{}, &Texture{}
	for i := 0; i < MaxRenderCommands; i++ {
		renderer.Submit(mesh, texture, IdentityTransform())
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic past the command capacity")
		}
	}()
	renderer.Submit(mesh, texture, IdentityTransform())
}

func TestSubmitLightPastCapacityPanics(t *testing.T) {
	var renderer Renderer
	light := DirectionalLight{Direction: glm.Vec3{0, -1, 0}}
	for i := 0; i < MaxLights; i++ {
		renderer.SubmitLight(light)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic past the light capacity")
		}
	}()
	renderer.SubmitLight(light)
}

func TestResetQueues(t *testing.T) {
	var renderer Renderer
	renderer.Submit(&Mesh{}, &Texture{}, IdentityTransform())
	renderer.SubmitLight(DirectionalLight{})
	renderer.resetQueues()
	if renderer.commands.Len() != 0 || renderer.lights.Len() != 0 {
		t.Fatal("queues are not empty after the frame reset")
	}
	renderer.Submit(&Mesh{}, &Texture{}, IdentityTransform())
	if renderer.commands.Len() != 1 {
		t.Fatal("queue does not accept submissions after the frame reset")
	}
}

func TestViewMatrix(t *testing.T) {
	var renderer Renderer
	camera := IdentityTransform()
	camera.Position = glm.Vec3{0, 2, 5}
	camera.Rotation = glm.QuatRotate(glm.DegToRad(45), glm.Vec3{0, 1, 0})
	renderer.SetView(camera)

	want := camera.Matrix().Inv()
	if !renderer.ViewMatrix().ApproxEqualThreshold(want, 1e-6) {
		t.Fatal("view matrix is not the inverse of the camera transform")
	}

	// The camera's own position must land on the origin.
	origin := renderer.ViewMatrix().Mul4x1(camera.Position.Vec4(1))
	if !origin.ApproxEqualThreshold(glm.Vec4{0, 0, 0, 1}, 1e-5) {
		t.Fatalf("camera position maps to %v, want the origin", origin)
	}

	// A matrix resolved earlier keeps its value across SetView.
	resolved := renderer.ViewMatrix()
	renderer.SetView(IdentityTransform())
	if !resolved.ApproxEqualThreshold(want, 1e-6) {
		t.Fatal("resolved view matrix changed after SetView")
	}
}

func TestBuiltinMeshAccessors(t *testing.T) {
	renderer := Renderer{cube: &Mesh{}, quad: &Mesh{}}
	cube, quad := renderer.CubeMesh(), renderer.QuadMesh()
	if cube == nil || quad == nil {
		t.Fatal("built-in meshes are nil")
	}
	renderer.Submit(cube, &Texture{}, IdentityTransform())
	renderer.Submit(quad, &Texture{}, IdentityTransform())
	if renderer.CubeMesh() != cube || renderer.QuadMesh() != quad {
		t.Fatal("built-in mesh accessors returned different pointers")
	}
}

func TestLightDirectionsFlatten(t *testing.T) {
	var queue LightQueue
	if err := queue.Push(DirectionalLight{Direction: glm.Vec3{1, 2, 3}}); err != nil {
		t.Fatal(err.Error())
	}
	if err := queue.Push(DirectionalLight{Direction: glm.Vec3{4, 5, 6}}); err != nil {
		t.Fatal(err.Error())
	}

	flat := queue.directions()
	want := []float32{1, 2, 3, 4, 5, 6}
	if len(flat) != len(want) {
		t.Fatalf("expected %d floats, got %d", len(want), len(flat))
	}
	for i := range want {
		if flat[i] != want[i] {
			t.Errorf("direction float %d: got %f, want %f", i, flat[i], want[i])
		}
	}
}
