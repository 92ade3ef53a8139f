// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	"github.com/go-gl/gl/v3.2-core/gl"
)

// Texture owns a 2D RGBA texture on the GPU. Create one with
// NewTexture and free it with Release on the context thread.
type Texture struct {
	id     uint32
	width  int32
	height int32
}

// NewTexture uploads tightly packed RGBA pixels into a fresh GPU
// texture. Row zero of pix is the bottom row of the image.
func NewTexture(pix []uint8, width, height int) *Texture {
	texture := &Texture{
		width:  int32(width),
		height: int32(height),
	}

	gl.GenTextures(1, &texture.id)
	gl.BindTexture(gl.TEXTURE_2D, texture.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, texture.width, texture.height,
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return texture
}

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (width, height int32) {
	return t.width, t.height
}

// Release implements Releasable.
func (t *Texture) Release() {
	gl.DeleteTextures(1, &t.id)
	t.id = 0
}
