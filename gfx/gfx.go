// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package gfx implements a forward OpenGL renderer with fixed
// per-frame command capacity. Draw and light submissions accumulate in
// queues owned by the Renderer and are flushed by Render in two passes:
// the scene is drawn into an offscreen target first, then composited
// onto whatever framebuffer the caller had bound.
//
// All calls that touch GPU state must happen on the thread that owns
// the GL context. The package never spawns goroutines of its own.
package gfx

import (
	"errors"
)

// Queue capacities. A frame that submits more than this many commands
// is considered a bug in the caller and escalated, see Submit.
const (
	// MaxRenderCommands is the draw queue capacity of a single frame.
	MaxRenderCommands = 1024

	// MaxLights is the light queue capacity of a single frame.
	MaxLights = 64
)

// ErrQueueFull is returned by queue Push when a frame exceeds
// the queue capacity.
var ErrQueueFull = errors.New("per-frame submission queue is full")

// AttribSlot is a vertex attribute location. Slots are global to the
// package: every program binds the attributes it consumes to these
// fixed locations, so a mesh can be drawn by any of them without
// relinking.
type AttribSlot uint32

// The complete set of vertex attributes understood by the shaders.
const (
	PositionSlot AttribSlot = iota
	NormalSlot
	TexCoordSlot
)

// Name returns the attribute name the shaders declare for the slot.
func (s AttribSlot) Name() string {
	switch s {
	case PositionSlot:
		return "Position"
	case NormalSlot:
		return "Normal"
	case TexCoordSlot:
		return "TexCoord"
	default:
		return ""
	}
}

// Releasable defines any GPU-memory-occupying item that can be freed.
type Releasable interface {

	// Release releases memory occupied by the implementing structure.
	// The item must not be used or released again afterwards.
	Release()
}
