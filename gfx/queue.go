// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	glm "github.com/go-gl/mathgl/mgl32"
)

// RenderCommand is a single queued draw: a mesh with its diffuse
// texture, placed by a transform. The mesh and texture are borrowed
// for the duration of the frame, the queue never releases them.
type RenderCommand struct {
	Transform Transform
	Mesh      *Mesh
	Diffuse   *Texture
}

// DirectionalLight shines along Direction from infinitely far away.
type DirectionalLight struct {
	Direction glm.Vec3
}

// CommandQueue accumulates the draws of one frame in submission
// order. The zero value is an empty queue.
type CommandQueue struct {
	commands [MaxRenderCommands]RenderCommand
	count    int
}

// Push appends a command. Returns ErrQueueFull when the queue
// is at capacity.
func (q *CommandQueue) Push(cmd RenderCommand) error {
	if q.count == len(q.commands) {
		return ErrQueueFull
	}
	q.commands[q.count] = cmd
	q.count++
	return nil
}

// Len returns the number of queued commands.
func (q *CommandQueue) Len() int {
	return q.count
}

// At returns the i-th queued command.
func (q *CommandQueue) At(i int) RenderCommand {
	return q.commands[i]
}

// Reset empties the queue for the next frame.
func (q *CommandQueue) Reset() {
	q.count = 0
}

// LightQueue accumulates the directional lights of one frame.
// The zero value is an empty queue.
type LightQueue struct {
	lights [MaxLights]DirectionalLight
	count  int
}

// Push appends a light. Returns ErrQueueFull when the queue
// is at capacity.
func (q *LightQueue) Push(light DirectionalLight) error {
	if q.count == len(q.lights) {
		return ErrQueueFull
	}
	q.lights[q.count] = light
	q.count++
	return nil
}

// Len returns the number of queued lights.
func (q *LightQueue) Len() int {
	return q.count
}

// At returns the i-th queued light.
func (q *LightQueue) At(i int) DirectionalLight {
	return q.lights[i]
}

// Reset empties the queue for the next frame.
func (q *LightQueue) Reset() {
	q.count = 0
}

// directions flattens the queued light directions for upload
// with a single glUniform3fv call.
func (q *LightQueue) directions() []float32 {
	flat := make([]float32, 0, q.count*3)
	for i := 0; i < q.count; i++ {
		dir := q.lights[i].Direction
		flat = append(flat, dir.X(), dir.Y(), dir.Z())
	}
	return flat
}
