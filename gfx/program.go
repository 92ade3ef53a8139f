// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	"errors"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/gobuffalo/packr"
	log "github.com/sirupsen/logrus"
)

// shaderBox holds the GLSL sources compiled into the binary.
var shaderBox = packr.NewBox("./shaders")

// loadShaderSource resolves a shader source by file name, from the
// override directory when one is configured, from the built-in box
// otherwise.
func loadShaderSource(dir, name string) (string, error) {
	if dir != "" {
		src, err := ioutil.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return "", errors.New("gfx.loadShaderSource(): " + err.Error())
		}
		return string(src), nil
	}
	src, err := shaderBox.FindString(name)
	if err != nil {
		return "", errors.New("gfx.loadShaderSource(): " + err.Error())
	}
	return src, nil
}

// program is a linked shader pair together with the attribute slots
// it consumes.
type program struct {
	handle  uint32
	attribs []AttribSlot
}

// newProgram compiles and links a vertex and fragment shader,
// binding the given attributes to their fixed slots before linking.
// A shader that does not compile or link is a defect in the binary
// or the override directory, not a runtime condition, so failures
// panic with the driver's info log.
func newProgram(name, vertSrc, fragSrc string, attribs []AttribSlot) program {
	vert := compileShader(name, vertSrc, gl.VERTEX_SHADER)
	frag := compileShader(name, fragSrc, gl.FRAGMENT_SHADER)

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vert)
	gl.AttachShader(handle, frag)
	for _, slot := range attribs {
		gl.BindAttribLocation(handle, uint32(slot), gl.Str(slot.Name()+"\x00"))
	}
	gl.LinkProgram(handle)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(handle, logLength, nil, gl.Str(infoLog))
		log.Panicf("gfx: %s failed to link: %s", name, infoLog)
	}

	gl.DeleteShader(frag)
	gl.DeleteShader(vert)

	return program{
		handle:  handle,
		attribs: attribs,
	}
}

func compileShader(name, src string, stage uint32) uint32 {
	handle := gl.CreateShader(stage)
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(infoLog))
		log.Panicf("gfx: %s failed to compile: %s", name, infoLog)
	}
	return handle
}

// use makes the program current and enables its attribute arrays.
func (p *program) use() {
	gl.UseProgram(p.handle)
	for _, slot := range p.attribs {
		gl.EnableVertexAttribArray(uint32(slot))
	}
}

func (p *program) release() {
	gl.DeleteProgram(p.handle)
	p.handle = 0
}

func uniformLocation(handle uint32, name string) int32 {
	return gl.GetUniformLocation(handle, gl.Str(name+"\x00"))
}

// sceneProgram lights and textures the meshes of the scene pass.
type sceneProgram struct {
	program
	projection int32
	view       int32
	world      int32
	diffuse    int32
	lights     int32
	lightCount int32
}

func newSceneProgram(vertSrc, fragSrc string) sceneProgram {
	p := newProgram("scene program", vertSrc, fragSrc,
		[]AttribSlot{PositionSlot, NormalSlot, TexCoordSlot})
	return sceneProgram{
		program:    p,
		projection: uniformLocation(p.handle, "Projection"),
		view:       uniformLocation(p.handle, "View"),
		world:      uniformLocation(p.handle, "World"),
		diffuse:    uniformLocation(p.handle, "Diffuse"),
		lights:     uniformLocation(p.handle, "LightDirections[0]"),
		lightCount: uniformLocation(p.handle, "LightCount"),
	}
}

// compositeProgram copies the offscreen color texture onto the
// caller's framebuffer through a fullscreen quad.
type compositeProgram struct {
	program
	diffuse int32
}

func newCompositeProgram(vertSrc, fragSrc string) compositeProgram {
	p := newProgram("composite program", vertSrc, fragSrc,
		[]AttribSlot{PositionSlot, TexCoordSlot})
	return compositeProgram{
		program: p,
		diffuse: uniformLocation(p.handle, "Diffuse"),
	}
}
