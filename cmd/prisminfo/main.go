package main

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/prism/gfx"
)

func init() {
	runtime.LockOSThread()
}

// A GL context must exist before the driver can be queried, so a
// hidden window is created just for the introspection.
func main() {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		panic(err)
	}
	defer sdl.Quit()

	if err := sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3); err != nil {
		panic(err)
	}
	if err := sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2); err != nil {
		panic(err)
	}
	if err := sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE); err != nil {
		panic(err)
	}
	if err := sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG); err != nil {
		panic(err)
	}

	window, err := sdl.CreateWindow("prisminfo",
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		64, 64,
		sdl.WINDOW_OPENGL|sdl.WINDOW_HIDDEN)
	if err != nil {
		panic(err)
	}
	defer window.Destroy()

	glContext, err := window.GLCreateContext()
	if err != nil {
		panic(err)
	}
	defer sdl.GLDeleteContext(glContext)
	if err := window.GLMakeCurrent(glContext); err != nil {
		panic(err)
	}

	renderer, err := gfx.New(gfx.Configuration{
		ScreenWidth:  64,
		ScreenHeight: 64,
	})
	if err != nil {
		panic(err)
	}

	if bytes, err := json.MarshalIndent(renderer.DriverInfo(), "", "  "); err == nil {
		fmt.Printf("%s\n", bytes)
	} else {
		panic(err)
	}

	renderer.Destroy()
}
