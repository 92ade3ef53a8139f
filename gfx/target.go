// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	"github.com/go-gl/gl/v3.2-core/gl"
	log "github.com/sirupsen/logrus"
)

// renderTarget is the offscreen destination of the scene pass: a
// framebuffer with a color and a depth texture attached. The color
// texture is later sampled by the composite pass.
type renderTarget struct {
	fbo    uint32
	color  uint32
	depth  uint32
	width  int32
	height int32
}

// newRenderTarget creates the offscreen textures and framebuffer.
// The caller's framebuffer binding is restored before returning.
// An incomplete framebuffer is reported but not fatal, the scene
// pass will then draw into the void while the composite pass still
// produces its clear color.
func newRenderTarget(ctx *Context, width, height int32) renderTarget {
	target := renderTarget{
		width:  width,
		height: height,
	}

	gl.GenTextures(1, &target.color)
	gl.BindTexture(gl.TEXTURE_2D, target.color)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, width, height,
		0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	gl.GenTextures(1, &target.depth)
	gl.BindTexture(gl.TEXTURE_2D, target.depth)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT24, width, height,
		0, gl.DEPTH_COMPONENT, gl.UNSIGNED_INT, nil)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	saved := ctx.BoundFramebuffer()
	gl.GenFramebuffers(1, &target.fbo)
	ctx.BindFramebuffer(target.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, target.color, 0)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, target.depth, 0)
	checkFramebufferStatus()
	ctx.BindFramebuffer(saved)

	return target
}

// checkFramebufferStatus reports why the bound framebuffer is not
// ready for rendering, if it isn't.
func checkFramebufferStatus() {
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	switch status {
	case gl.FRAMEBUFFER_COMPLETE:
	case gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT:
		log.Warnf("gfx: framebuffer incomplete: attachment not renderable")
	case gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT:
		log.Warnf("gfx: framebuffer incomplete: no attachments")
	case gl.FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER:
		log.Warnf("gfx: framebuffer incomplete: missing draw buffer attachment")
	case gl.FRAMEBUFFER_INCOMPLETE_READ_BUFFER:
		log.Warnf("gfx: framebuffer incomplete: missing read buffer attachment")
	case gl.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE:
		log.Warnf("gfx: framebuffer incomplete: inconsistent multisampling")
	case gl.FRAMEBUFFER_UNSUPPORTED:
		log.Warnf("gfx: framebuffer incomplete: attachment combination unsupported")
	case gl.FRAMEBUFFER_UNDEFINED:
		log.Warnf("gfx: framebuffer incomplete: target undefined")
	default:
		log.Warnf("gfx: framebuffer incomplete: status 0x%04x", status)
	}
}

func (t *renderTarget) release() {
	gl.DeleteFramebuffers(1, &t.fbo)
	gl.DeleteTextures(1, &t.color)
	gl.DeleteTextures(1, &t.depth)
	t.fbo = 0
	t.color = 0
	t.depth = 0
}
