// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"
	log "github.com/sirupsen/logrus"
)

// Context wraps the ambient state of the GL context the renderer was
// created on: framebuffer binding, viewport and clears go through it
// so that state changes stay explicit and restorable. The renderer
// owns exactly one.
type Context struct {
	width  int32
	height int32
}

func newContext(width, height int32) *Context {
	return &Context{
		width:  width,
		height: height,
	}
}

// BoundFramebuffer returns the framebuffer currently bound to the
// context. Used to save the caller's binding before a pass redirects
// output, so it can be restored afterwards.
func (c *Context) BoundFramebuffer() uint32 {
	var fbo int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &fbo)
	return uint32(fbo)
}

// BindFramebuffer redirects draw output to the given framebuffer.
// Zero binds the default one.
func (c *Context) BindFramebuffer(fbo uint32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
}

// Viewport covers the full configured screen size.
func (c *Context) Viewport() {
	gl.Viewport(0, 0, c.width, c.height)
}

// Clear wipes the bound framebuffer's color and depth with the
// given color.
func (c *Context) Clear(color [4]float32) {
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// CheckError drains the GL error queue, logging every code found
// under the given tag. Diagnostics only, the frame goes on.
func (c *Context) CheckError(tag string) {
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		log.Warnf("%s: GL error: %s", tag, glErrorName(code))
	}
}

func glErrorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("0x%04x", code)
	}
}
